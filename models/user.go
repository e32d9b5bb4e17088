package models

import "time"

// User represents a platform account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Password     string    `bson:"-" json:"password,omitempty"` // plaintext, registration input only
	TokenHash    string    `bson:"tokenHash" json:"-"`          // hash of the active session token
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
