package reminder

import (
	"vitalguard/models"
)

// CreateReminderInput is the payload accepted when scheduling a reminder.
// DueAtLocal is a civil "YYYY-MM-DD HH:MM" string interpreted in the owner's
// profile timezone.
type CreateReminderInput struct {
	Title        string `json:"title"`
	Kind         string `json:"kind"`
	DueAtLocal   string `json:"dueAtLocal"`
	PreNotifyMin int    `json:"preNotifyMin"`
	Notes        string `json:"notes"`
}

// ReminderView is a reminder decorated with its due time rendered in the
// owner's timezone.
type ReminderView struct {
	models.Reminder
	DueAtLocal string `json:"dueAtLocal"`
}

// ReminderService manages reminder scheduling.
type ReminderService interface {
	// Create validates and schedules a new reminder for the user.
	Create(userID string, input CreateReminderInput) (*models.Reminder, error)
	// List returns the user's reminders, soonest first, with localized
	// due times.
	List(userID string) ([]ReminderView, error)
	// Delete removes a reminder owned by the user.
	Delete(id, userID string) error
}
