package models

import "time"

// Medication is a tracked medication entry for a user.
type Medication struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Name      string    `bson:"name" json:"name"`
	Dosage    string    `bson:"dosage" json:"dosage"`     // e.g. "500mg"
	Schedule  string    `bson:"schedule" json:"schedule"` // free text, e.g. "twice daily with meals"
	Notes     string    `bson:"notes" json:"notes"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
