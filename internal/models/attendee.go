package models

// Attendee is a registration for an event. Event is a free-text reference,
// not a key into the events collection.
type Attendee struct {
	ID               string `json:"_id" bson:"_id"`
	Name             string `json:"name" bson:"name"`
	MailID           string `json:"mailId" bson:"mailId"`
	PasswordHash     string `json:"-" bson:"passwordHash"`
	PhoneNo          string `json:"phoneNo" bson:"phoneNo"`
	AddressLine1     string `json:"addressLine1" bson:"addressLine1"`
	AddressLine2     string `json:"addressLine2" bson:"addressLine2"`
	City             string `json:"city" bson:"city"`
	Pincode          string `json:"pincode" bson:"pincode"`
	State            string `json:"state" bson:"state"`
	Country          string `json:"country" bson:"country"`
	Event            string `json:"event" bson:"event"`
	RegistrationID   string `json:"registrationId" bson:"registrationId"`
	RegistrationDate string `json:"registrationDate" bson:"registrationDate"`
}
