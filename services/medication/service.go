package medication

import (
	"fmt"
	"strings"

	medicationRepo "vitalguard/database/repository/medication"
	"vitalguard/models"
	"vitalguard/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// MedicationInput is the create/update payload for a tracked medication.
type MedicationInput struct {
	Name     string `json:"name"`
	Dosage   string `json:"dosage"`
	Schedule string `json:"schedule"`
	Notes    string `json:"notes"`
}

// MedicationService manages a user's tracked medications.
type MedicationService interface {
	Create(userID string, input MedicationInput) (*models.Medication, error)
	List(userID string) ([]models.Medication, error)
	Update(id, userID string, input MedicationInput) (*models.Medication, error)
	Delete(id, userID string) error
}

// DefaultMedicationService is the production implementation.
type DefaultMedicationService struct {
	Repo medicationRepo.MedicationRepository
}

func (s *DefaultMedicationService) Create(userID string, input MedicationInput) (*models.Medication, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	med := &models.Medication{
		ID:       uuid.New().String(),
		UserID:   userID,
		Name:     name,
		Dosage:   strings.TrimSpace(input.Dosage),
		Schedule: strings.TrimSpace(input.Schedule),
		Notes:    strings.TrimSpace(input.Notes),
	}
	if err := s.Repo.Create(med); err != nil {
		utils.GetLogger().Error("Failed to create medication",
			zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to save medication, please try again")
	}
	return med, nil
}

func (s *DefaultMedicationService) List(userID string) ([]models.Medication, error) {
	meds, err := s.Repo.GetByUserID(userID)
	if err != nil {
		utils.GetLogger().Error("Failed to list medications",
			zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to list medications, please try again")
	}
	return meds, nil
}

func (s *DefaultMedicationService) Update(id, userID string, input MedicationInput) (*models.Medication, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	updateDoc := bson.M{
		"name":     name,
		"dosage":   strings.TrimSpace(input.Dosage),
		"schedule": strings.TrimSpace(input.Schedule),
		"notes":    strings.TrimSpace(input.Notes),
	}
	if err := s.Repo.UpdateSetDocument(id, userID, updateDoc); err != nil {
		return nil, fmt.Errorf("medication not found")
	}
	return s.Repo.GetByID(id)
}

func (s *DefaultMedicationService) Delete(id, userID string) error {
	if err := s.Repo.Delete(id, userID); err != nil {
		return fmt.Errorf("medication not found")
	}
	return nil
}
