package medicationRepo

import (
	"go.mongodb.org/mongo-driver/bson"

	"vitalguard/models"
)

// MedicationRepository defines methods for medication data access.
type MedicationRepository interface {
	// Create inserts a new medication record.
	Create(med *models.Medication) error
	// GetByID retrieves a medication by its unique ID.
	GetByID(id string) (*models.Medication, error)
	// GetByUserID retrieves all medications owned by a user.
	GetByUserID(userID string) ([]models.Medication, error)
	// UpdateSetDocument applies a partial $set update to a medication owned
	// by the given user.
	UpdateSetDocument(id, userID string, updateDoc bson.M) error
	// Delete removes a medication owned by the given user.
	Delete(id, userID string) error
}
