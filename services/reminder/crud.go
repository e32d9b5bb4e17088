package reminder

import (
	"fmt"
	"strings"
	"time"

	profileRepo "vitalguard/database/repository/profile"
	reminderRepo "vitalguard/database/repository/reminder"
	"vitalguard/models"
	"vitalguard/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultReminderService is the production implementation.
type DefaultReminderService struct {
	Repo        reminderRepo.ReminderRepository
	ProfileRepo profileRepo.ProfileRepository
}

// userLocation resolves the user's display timezone from their profile,
// falling back to the configured default zone.
func (s *DefaultReminderService) userLocation(userID string) *time.Location {
	profile, err := s.ProfileRepo.GetByUserID(userID)
	if err != nil {
		utils.GetLogger().Warn("Failed to load profile for timezone lookup",
			zap.String("userID", userID), zap.Error(err))
		return utils.LoadLocation("")
	}
	if profile == nil {
		return utils.LoadLocation("")
	}
	return utils.LoadLocation(profile.Timezone)
}

// Create validates and schedules a new reminder. The civil due time is
// interpreted in the owner's profile timezone and stored as UTC.
func (s *DefaultReminderService) Create(userID string, input CreateReminderInput) (*models.Reminder, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if input.PreNotifyMin < 0 {
		return nil, fmt.Errorf("preNotifyMin must not be negative")
	}

	dueAt, err := utils.ParseLocalDateTime(input.DueAtLocal, s.userLocation(userID))
	if err != nil {
		return nil, err
	}

	kind := strings.TrimSpace(input.Kind)
	if kind == "" {
		kind = "general"
	}

	rem := &models.Reminder{
		ID:           uuid.New().String(),
		UserID:       userID,
		Title:        title,
		Kind:         kind,
		DueAt:        dueAt,
		PreNotifyMin: input.PreNotifyMin,
		Notes:        strings.TrimSpace(input.Notes),
	}
	if err := s.Repo.Create(rem); err != nil {
		utils.GetLogger().Error("Failed to create reminder",
			zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to create reminder, please try again")
	}
	return rem, nil
}

// List returns the user's reminders, soonest first, with due times rendered
// in the owner's timezone.
func (s *DefaultReminderService) List(userID string) ([]ReminderView, error) {
	reminders, err := s.Repo.GetByUserID(userID)
	if err != nil {
		utils.GetLogger().Error("Failed to list reminders",
			zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to list reminders, please try again")
	}

	loc := s.userLocation(userID)
	views := make([]ReminderView, 0, len(reminders))
	for _, r := range reminders {
		views = append(views, ReminderView{
			Reminder:   r,
			DueAtLocal: utils.FormatLocal(r.DueAt, loc),
		})
	}
	return views, nil
}

// Delete removes a reminder owned by the user.
func (s *DefaultReminderService) Delete(id, userID string) error {
	if err := s.Repo.Delete(id, userID); err != nil {
		return fmt.Errorf("reminder not found")
	}
	return nil
}
