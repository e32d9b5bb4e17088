package reminderRepo

import (
	"time"

	"vitalguard/models"
)

// ReminderRepository defines methods for reminder data access.
//
// Reminders are append-only apart from the single sent-stamp applied by the
// dispatch loop, and explicit owner deletes.
type ReminderRepository interface {
	// Create inserts a new reminder record.
	Create(reminder *models.Reminder) error
	// GetByID retrieves a reminder by its unique ID.
	GetByID(id string) (*models.Reminder, error)
	// GetByUserID retrieves all reminders owned by a user, soonest first.
	GetByUserID(userID string) ([]models.Reminder, error)
	// GetUnsent retrieves all reminders with no sent-stamp, across users.
	GetUnsent() ([]models.Reminder, error)
	// MarkSent stamps the reminder as dispatched at the given instant.
	// The stamp is applied at most once; marking an already-sent reminder
	// is a no-op.
	MarkSent(id string, sentAt time.Time) error
	// Delete removes a reminder owned by the given user.
	Delete(id, userID string) error
}
