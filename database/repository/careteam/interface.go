package careTeamRepo

import (
	"vitalguard/models"
)

// CareTeamRepository defines methods for care-team membership data access.
type CareTeamRepository interface {
	// Create inserts a new care-team membership.
	Create(member *models.CareTeamMember) error
	// GetByPatientID retrieves all members with access to a patient's data.
	GetByPatientID(patientID string) ([]models.CareTeamMember, error)
	// GetByCaregiverID retrieves all patients a caregiver has access to.
	GetByCaregiverID(caregiverID string) ([]models.CareTeamMember, error)
	// Delete removes a membership owned by the given patient.
	Delete(id, patientID string) error
}
