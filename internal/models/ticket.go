package models

import "time"

type Ticket struct {
	ID             string     `json:"_id" bson:"_id"`
	RegistrationID string     `json:"registrationId" bson:"registrationId"`
	Name           string     `json:"name" bson:"name"`
	PhoneNo        string     `json:"phoneNo" bson:"phoneNo"`
	EventName      string     `json:"eventName" bson:"eventName"`
	TicketCategory string     `json:"ticketCategory" bson:"ticketCategory"`
	TicketPrice    float64    `json:"ticketPrice" bson:"ticketPrice"`
	TicketDate     *time.Time `json:"ticketDate,omitempty" bson:"ticketDate,omitempty"`
}
