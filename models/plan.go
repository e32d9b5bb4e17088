package models

import "time"

// Plan is a persisted assistant output (serialized TriageResult).
type Plan struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Kind      string    `bson:"kind" json:"kind"` // e.g. "assistant"
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
