package planRepo

import (
	"vitalguard/models"
)

// PlanRepository defines methods for saved care-plan data access.
type PlanRepository interface {
	// Create inserts a new plan record.
	Create(plan *models.Plan) error
	// GetByUserID retrieves all plans owned by a user, newest first.
	GetByUserID(userID string) ([]models.Plan, error)
	// Delete removes a plan owned by the given user.
	Delete(id, userID string) error
}
