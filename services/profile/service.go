package profile

import (
	"fmt"
	"strings"
	"time"

	medicationRepo "vitalguard/database/repository/medication"
	planRepo "vitalguard/database/repository/plan"
	profileRepo "vitalguard/database/repository/profile"
	reminderRepo "vitalguard/database/repository/reminder"
	userRepo "vitalguard/database/repository/user"
	"vitalguard/models"
	"vitalguard/services/billing"
	"vitalguard/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// UpdateProfileInput is the full profile form. Updates replace the stored
// profile fields wholesale, mirroring the settings page.
type UpdateProfileInput struct {
	Name             string  `json:"name"`
	Gender           string  `json:"gender"`
	Age              int     `json:"age"`
	WeightKg         float64 `json:"weightKg"`
	HeightCm         float64 `json:"heightCm"`
	Conditions       string  `json:"conditions"`
	Allergies        string  `json:"allergies"`
	Medications      string  `json:"medications"`
	EmergencyContact string  `json:"emergencyContact"`
	Phone            string  `json:"phone"`
	NotifyEmail      bool    `json:"notifyEmail"`
	NotifySMS        bool    `json:"notifySms"`
	Timezone         string  `json:"timezone"`
	Goals            string  `json:"goals"`
	DietPrefs        string  `json:"dietPrefs"`
	ActivityLimits   string  `json:"activityLimits"`
	Notes            string  `json:"notes"`
}

// ProfileService manages health profiles and the full data export.
type ProfileService interface {
	// Get returns the user's profile, or nil when none exists yet.
	Get(userID string) (*models.Profile, error)
	// Update replaces the user's profile fields, creating the profile when
	// it does not exist yet.
	Update(userID string, input UpdateProfileInput) (*models.Profile, error)
	// Export assembles the full JSON dump of the user's data.
	Export(userID string, now time.Time) (*models.ExportBundle, error)
}

// DefaultProfileService is the production implementation.
type DefaultProfileService struct {
	Repo           profileRepo.ProfileRepository
	UserRepo       userRepo.UserRepository
	ReminderRepo   reminderRepo.ReminderRepository
	MedicationRepo medicationRepo.MedicationRepository
	PlanRepo       planRepo.PlanRepository
	Billing        billing.BillingService
}

// Get returns the user's profile.
func (s *DefaultProfileService) Get(userID string) (*models.Profile, error) {
	profile, err := s.Repo.GetByUserID(userID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch profile",
			zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch profile, please try again")
	}
	return profile, nil
}

// Update replaces the user's profile fields. An unknown timezone is rejected
// rather than silently stored.
func (s *DefaultProfileService) Update(userID string, input UpdateProfileInput) (*models.Profile, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if input.Timezone != "" {
		if _, err := time.LoadLocation(input.Timezone); err != nil {
			return nil, fmt.Errorf("unknown timezone %q", input.Timezone)
		}
	}
	if input.NotifySMS && strings.TrimSpace(input.Phone) == "" {
		return nil, fmt.Errorf("a phone number is required for SMS notifications")
	}

	existing, err := s.Repo.GetByUserID(userID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch profile for update",
			zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to update profile, please try again")
	}

	if existing == nil {
		profile := profileFromInput(userID, input)
		profile.ID = uuid.New().String()
		if err := s.Repo.Create(profile); err != nil {
			utils.GetLogger().Error("Failed to create profile",
				zap.String("userID", userID), zap.Error(err))
			return nil, fmt.Errorf("failed to update profile, please try again")
		}
		return profile, nil
	}

	updateDoc := bson.M{
		"name":             strings.TrimSpace(input.Name),
		"gender":           input.Gender,
		"age":              input.Age,
		"weightKg":         input.WeightKg,
		"heightCm":         input.HeightCm,
		"conditions":       input.Conditions,
		"allergies":        input.Allergies,
		"medications":      input.Medications,
		"emergencyContact": input.EmergencyContact,
		"phone":            strings.TrimSpace(input.Phone),
		"notifyEmail":      input.NotifyEmail,
		"notifySms":        input.NotifySMS,
		"timezone":         input.Timezone,
		"goals":            input.Goals,
		"dietPrefs":        input.DietPrefs,
		"activityLimits":   input.ActivityLimits,
		"notes":            input.Notes,
	}
	if err := s.Repo.UpdateSetDocument(userID, updateDoc); err != nil {
		utils.GetLogger().Error("Failed to update profile",
			zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to update profile, please try again")
	}
	return s.Repo.GetByUserID(userID)
}

func profileFromInput(userID string, input UpdateProfileInput) *models.Profile {
	return &models.Profile{
		UserID:           userID,
		Name:             strings.TrimSpace(input.Name),
		Gender:           input.Gender,
		Age:              input.Age,
		WeightKg:         input.WeightKg,
		HeightCm:         input.HeightCm,
		Conditions:       input.Conditions,
		Allergies:        input.Allergies,
		Medications:      input.Medications,
		EmergencyContact: input.EmergencyContact,
		Phone:            strings.TrimSpace(input.Phone),
		NotifyEmail:      input.NotifyEmail,
		NotifySMS:        input.NotifySMS,
		Timezone:         input.Timezone,
		Goals:            input.Goals,
		DietPrefs:        input.DietPrefs,
		ActivityLimits:   input.ActivityLimits,
		Notes:            input.Notes,
	}
}

// Export assembles the full dump of the user's stored data: account view,
// profile, reminders, medications, and saved plans.
func (s *DefaultProfileService) Export(userID string, now time.Time) (*models.ExportBundle, error) {
	user, err := s.UserRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}

	profile, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to export data, please try again")
	}
	reminders, err := s.ReminderRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to export data, please try again")
	}
	medications, err := s.MedicationRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to export data, please try again")
	}
	plans, err := s.PlanRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to export data, please try again")
	}

	return &models.ExportBundle{
		User: models.ExportUser{
			Email: user.Email,
			Pro:   s.Billing.IsEntitled(userID, now),
		},
		Profile:     profile,
		Reminders:   reminders,
		Medications: medications,
		Plans:       plans,
	}, nil
}
