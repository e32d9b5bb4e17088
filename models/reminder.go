package models

import "time"

// Reminder is a scheduled medication/appointment reminder.
// DueAt is stored in UTC. SentAt is nil until the dispatch loop stamps it;
// once set the reminder is terminal and never re-evaluated.
type Reminder struct {
	ID           string     `bson:"id" json:"id"`
	UserID       string     `bson:"userId" json:"userId"`
	Title        string     `bson:"title" json:"title"`
	Kind         string     `bson:"kind" json:"kind"` // free-form category, e.g. "medication", "appointment"
	DueAt        time.Time  `bson:"dueAt" json:"dueAt"`
	PreNotifyMin int        `bson:"preNotifyMin" json:"preNotifyMin"` // minutes before DueAt to notify
	Notes        string     `bson:"notes" json:"notes"`
	SentAt       *time.Time `bson:"sentAt,omitempty" json:"sentAt,omitempty"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
}

// NotifyAt is the instant the notify window opens.
func (r *Reminder) NotifyAt() time.Time {
	return r.DueAt.Add(-time.Duration(r.PreNotifyMin) * time.Minute)
}

// IsDue reports whether the reminder's notify window has opened at now
// and it has not yet been dispatched.
func (r *Reminder) IsDue(now time.Time) bool {
	return !r.IsSent() && !now.Before(r.NotifyAt())
}

// IsSent reports whether the reminder has already been dispatched.
func (r *Reminder) IsSent() bool {
	return r.SentAt != nil
}
