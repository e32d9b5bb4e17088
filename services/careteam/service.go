package careteam

import (
	"fmt"
	"strings"

	careTeamRepo "vitalguard/database/repository/careteam"
	userRepo "vitalguard/database/repository/user"
	"vitalguard/models"
	"vitalguard/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AddMemberInput invites a caregiver to a patient's care team by email.
type AddMemberInput struct {
	CaregiverEmail string `json:"caregiverEmail"`
	Role           string `json:"role"`
}

// CareTeamService manages who can view a patient's health data.
type CareTeamService interface {
	// AddMember grants an existing account access to the patient's data.
	AddMember(patientID string, input AddMemberInput) (*models.CareTeamMember, error)
	// ListMembers returns the patient's care team.
	ListMembers(patientID string) ([]models.CareTeamMember, error)
	// ListPatients returns the memberships where the caller is the caregiver.
	ListPatients(caregiverID string) ([]models.CareTeamMember, error)
	// RemoveMember revokes a membership owned by the patient.
	RemoveMember(id, patientID string) error
	// CanView reports whether the caregiver may read the patient's data.
	CanView(caregiverID, patientID string) bool
}

// DefaultCareTeamService is the production implementation.
type DefaultCareTeamService struct {
	Repo     careTeamRepo.CareTeamRepository
	UserRepo userRepo.UserRepository
}

func (s *DefaultCareTeamService) AddMember(patientID string, input AddMemberInput) (*models.CareTeamMember, error) {
	email := strings.ToLower(strings.TrimSpace(input.CaregiverEmail))
	if email == "" {
		return nil, fmt.Errorf("caregiver email is required")
	}

	role := input.Role
	switch role {
	case "":
		role = models.CareTeamViewer
	case models.CareTeamViewer, models.CareTeamEditor:
	default:
		return nil, fmt.Errorf("role must be %q or %q", models.CareTeamViewer, models.CareTeamEditor)
	}

	caregiver, err := s.UserRepo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Failed to look up caregiver", zap.Error(err))
		return nil, fmt.Errorf("failed to add member, please try again")
	}
	if caregiver == nil {
		return nil, fmt.Errorf("no account found for %s", email)
	}
	if caregiver.ID == patientID {
		return nil, fmt.Errorf("you cannot add yourself to your own care team")
	}

	member := &models.CareTeamMember{
		ID:          uuid.New().String(),
		PatientID:   patientID,
		CaregiverID: caregiver.ID,
		Role:        role,
	}
	if err := s.Repo.Create(member); err != nil {
		// The unique patient/caregiver index rejects duplicates.
		return nil, fmt.Errorf("%s is already on your care team", email)
	}
	return member, nil
}

func (s *DefaultCareTeamService) ListMembers(patientID string) ([]models.CareTeamMember, error) {
	members, err := s.Repo.GetByPatientID(patientID)
	if err != nil {
		utils.GetLogger().Error("Failed to list care team",
			zap.String("patientID", patientID), zap.Error(err))
		return nil, fmt.Errorf("failed to list care team, please try again")
	}
	return members, nil
}

func (s *DefaultCareTeamService) ListPatients(caregiverID string) ([]models.CareTeamMember, error) {
	members, err := s.Repo.GetByCaregiverID(caregiverID)
	if err != nil {
		utils.GetLogger().Error("Failed to list caregiver memberships",
			zap.String("caregiverID", caregiverID), zap.Error(err))
		return nil, fmt.Errorf("failed to list patients, please try again")
	}
	return members, nil
}

func (s *DefaultCareTeamService) RemoveMember(id, patientID string) error {
	if err := s.Repo.Delete(id, patientID); err != nil {
		return fmt.Errorf("care team member not found")
	}
	return nil
}

// CanView checks membership. Patients can always view their own data.
func (s *DefaultCareTeamService) CanView(caregiverID, patientID string) bool {
	if caregiverID == patientID {
		return true
	}
	members, err := s.Repo.GetByPatientID(patientID)
	if err != nil {
		return false
	}
	for _, m := range members {
		if m.CaregiverID == caregiverID {
			return true
		}
	}
	return false
}
