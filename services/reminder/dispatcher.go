package reminder

import (
	"context"
	"fmt"
	"time"

	profileRepo "vitalguard/database/repository/profile"
	reminderRepo "vitalguard/database/repository/reminder"
	userRepo "vitalguard/database/repository/user"
	"vitalguard/models"
	"vitalguard/services/notification"
	"vitalguard/utils"

	"go.uber.org/zap"
)

// Clock abstracts the dispatch loop's time source.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Dispatcher scans unsent reminders and fires notifications for the ones
// whose notify window has opened. Delivery is fire-and-forget: whatever the
// transports report, a dispatched reminder is stamped sent exactly once and
// never revisited.
type Dispatcher struct {
	Repo        reminderRepo.ReminderRepository
	UserRepo    userRepo.UserRepository
	ProfileRepo profileRepo.ProfileRepository
	Notifier    notification.NotificationService
	Clock       Clock
}

// ProcessDueReminders runs one dispatch tick. Failures are isolated per
// reminder so one bad record cannot stop the rest of the scan or any
// future tick.
func (d *Dispatcher) ProcessDueReminders(ctx context.Context) {
	now := d.Clock.Now().UTC()

	pending, err := d.Repo.GetUnsent()
	if err != nil {
		utils.GetLogger().Error("Dispatch tick failed to load reminders", zap.Error(err))
		return
	}

	for i := range pending {
		r := &pending[i]
		if !r.IsDue(now) {
			continue
		}
		d.dispatch(ctx, r, now)
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, r *models.Reminder, now time.Time) {
	profile, err := d.ProfileRepo.GetByUserID(r.UserID)
	if err != nil {
		utils.GetLogger().Error("Failed to load profile for reminder dispatch",
			zap.String("reminderID", r.ID), zap.Error(err))
		profile = nil
	}

	loc := utils.LoadLocation("")
	if profile != nil {
		loc = utils.LoadLocation(profile.Timezone)
	}
	localDue := utils.FormatLocal(r.DueAt, loc)

	emailed, smsed := false, false

	// Email defaults on when no profile exists yet.
	if profile == nil || profile.NotifyEmail {
		if user, err := d.UserRepo.GetByID(r.UserID); err != nil {
			utils.GetLogger().Error("Failed to load user for reminder dispatch",
				zap.String("reminderID", r.ID), zap.Error(err))
		} else {
			subject := "Vital Guard Reminder: " + r.Title
			emailed = d.Notifier.SendEmail(ctx, user.Email, subject, emailBody(r, localDue))
		}
	}

	if profile != nil && profile.NotifySMS && profile.Phone != "" {
		shortDue := utils.ToLocal(r.DueAt, loc).Format("Jan 02 15:04")
		smsed = d.Notifier.SendSMS(ctx, profile.Phone, smsBody(r, shortDue))
	}

	// Stamp regardless of delivery outcome. At-most-one dispatch attempt.
	if err := d.Repo.MarkSent(r.ID, now); err != nil {
		utils.GetLogger().Error("Failed to mark reminder sent",
			zap.String("reminderID", r.ID), zap.Error(err))
		return
	}

	utils.GetLogger().Info("Dispatched reminder",
		zap.String("reminderID", r.ID),
		zap.String("userID", r.UserID),
		zap.Bool("email", emailed),
		zap.Bool("sms", smsed))
}

func emailBody(r *models.Reminder, localDue string) string {
	notes := r.Notes
	if notes == "" {
		notes = "-"
	}
	return fmt.Sprintf("%s\nType: %s\nWhen: %s\nNotes: %s\n", r.Title, r.Kind, localDue, notes)
}

func smsBody(r *models.Reminder, shortDue string) string {
	return fmt.Sprintf("%s at %s - %s", r.Title, shortDue, r.Notes)
}
