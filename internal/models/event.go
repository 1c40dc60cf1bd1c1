package models

import "time"

type Event struct {
	ID          string     `json:"_id" bson:"_id"`
	EventName   string     `json:"eventName" bson:"eventName"`
	Venue       string     `json:"venue" bson:"venue"`
	EventDate   *time.Time `json:"eventDate,omitempty" bson:"eventDate,omitempty"`
	StartTime   string     `json:"startTime" bson:"startTime"`
	EndTime     string     `json:"endTime" bson:"endTime"`
	ChiefGuest  string     `json:"chiefGuest" bson:"chiefGuest"`
	ConductedBy string     `json:"conductedBy" bson:"conductedBy"`
}
