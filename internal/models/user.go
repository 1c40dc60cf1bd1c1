package models

type User struct {
	ID           string `json:"_id" bson:"_id"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"-" bson:"password"`
}
