package profileRepo

import (
	"go.mongodb.org/mongo-driver/bson"

	"vitalguard/models"
)

// ProfileRepository defines methods for health profile data access.
type ProfileRepository interface {
	// GetByUserID retrieves the profile owned by a user, or nil when absent.
	GetByUserID(userID string) (*models.Profile, error)
	// Create inserts a new profile record.
	Create(profile *models.Profile) error
	// UpdateSetDocument applies a partial $set update to the user's profile.
	UpdateSetDocument(userID string, updateDoc bson.M) error
	// DeleteByUserID removes the profile owned by a user.
	DeleteByUserID(userID string) error
}
