package reminder

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"vitalguard/models"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type fakeReminderRepo struct {
	reminders map[string]*models.Reminder
	markCalls int
}

func newFakeReminderRepo(reminders ...*models.Reminder) *fakeReminderRepo {
	m := make(map[string]*models.Reminder)
	for _, r := range reminders {
		m[r.ID] = r
	}
	return &fakeReminderRepo{reminders: m}
}

func (f *fakeReminderRepo) Create(r *models.Reminder) error { f.reminders[r.ID] = r; return nil }
func (f *fakeReminderRepo) GetByID(id string) (*models.Reminder, error) {
	r, ok := f.reminders[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return r, nil
}
func (f *fakeReminderRepo) GetByUserID(userID string) ([]models.Reminder, error) { return nil, nil }
func (f *fakeReminderRepo) GetUnsent() ([]models.Reminder, error) {
	var out []models.Reminder
	for _, r := range f.reminders {
		if !r.IsSent() {
			out = append(out, *r)
		}
	}
	return out, nil
}
func (f *fakeReminderRepo) MarkSent(id string, sentAt time.Time) error {
	f.markCalls++
	if r, ok := f.reminders[id]; ok && r.SentAt == nil {
		t := sentAt
		r.SentAt = &t
	}
	return nil
}
func (f *fakeReminderRepo) Delete(id, userID string) error { delete(f.reminders, id); return nil }

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return u, nil
}
func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error)       { return nil, nil }
func (f *fakeUserRepo) Create(u *models.User) error                         { return nil }
func (f *fakeUserRepo) Update(u *models.User) error                         { return nil }
func (f *fakeUserRepo) UpdateSetDocument(id string, doc bson.M) error       { return nil }
func (f *fakeUserRepo) Delete(id string) error                              { return nil }

type fakeDispatchProfileRepo struct {
	profiles map[string]*models.Profile
}

func (f *fakeDispatchProfileRepo) GetByUserID(userID string) (*models.Profile, error) {
	return f.profiles[userID], nil
}
func (f *fakeDispatchProfileRepo) Create(p *models.Profile) error                  { return nil }
func (f *fakeDispatchProfileRepo) UpdateSetDocument(id string, doc bson.M) error   { return nil }
func (f *fakeDispatchProfileRepo) DeleteByUserID(userID string) error              { return nil }

type sentEmail struct {
	to, subject, body string
}

type fakeNotifier struct {
	emails []sentEmail
	sms    []string
}

func (f *fakeNotifier) SendEmail(ctx context.Context, to, subject, body string) bool {
	f.emails = append(f.emails, sentEmail{to, subject, body})
	return true
}
func (f *fakeNotifier) SendSMS(ctx context.Context, to, body string) bool {
	f.sms = append(f.sms, body)
	return true
}

func newDispatcher(repo *fakeReminderRepo, profiles map[string]*models.Profile, now time.Time) (*Dispatcher, *fakeNotifier) {
	notifier := &fakeNotifier{}
	return &Dispatcher{
		Repo:        repo,
		UserRepo:    &fakeUserRepo{users: map[string]*models.User{"u1": {ID: "u1", Email: "u1@example.com"}}},
		ProfileRepo: &fakeDispatchProfileRepo{profiles: profiles},
		Notifier:    notifier,
		Clock:       &fakeClock{now: now},
	}, notifier
}

func TestProcessDueRemindersBoundary(t *testing.T) {
	dueAt := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		now          time.Time
		preNotifyMin int
		wantSent     bool
	}{
		{"one second before window", dueAt.Add(-time.Second), 0, false},
		{"exactly at due time", dueAt, 0, true},
		{"after due time", dueAt.Add(time.Minute), 0, true},
		{"pre-notify opens window early", dueAt.Add(-30 * time.Minute), 30, true},
		{"one second before pre-notify window", dueAt.Add(-30*time.Minute - time.Second), 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeReminderRepo(&models.Reminder{
				ID: "r1", UserID: "u1", Title: "Take meds", Kind: "medication",
				DueAt: dueAt, PreNotifyMin: tt.preNotifyMin,
			})
			d, notifier := newDispatcher(repo, nil, tt.now)

			d.ProcessDueReminders(context.Background())

			r := repo.reminders["r1"]
			if r.IsSent() != tt.wantSent {
				t.Errorf("IsSent() = %v, want %v", r.IsSent(), tt.wantSent)
			}
			if tt.wantSent && len(notifier.emails) != 1 {
				t.Errorf("emails sent = %d, want 1", len(notifier.emails))
			}
			if !tt.wantSent && len(notifier.emails) != 0 {
				t.Errorf("emails sent = %d, want 0", len(notifier.emails))
			}
		})
	}
}

func TestProcessDueRemindersStampsWithTickTime(t *testing.T) {
	dueAt := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	now := dueAt.Add(5 * time.Minute)
	repo := newFakeReminderRepo(&models.Reminder{ID: "r1", UserID: "u1", Title: "x", DueAt: dueAt})
	d, _ := newDispatcher(repo, nil, now)

	d.ProcessDueReminders(context.Background())

	if got := repo.reminders["r1"].SentAt; got == nil || !got.Equal(now) {
		t.Errorf("SentAt = %v, want tick time %v", got, now)
	}
}

func TestProcessDueRemindersIdempotent(t *testing.T) {
	dueAt := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	repo := newFakeReminderRepo(&models.Reminder{ID: "r1", UserID: "u1", Title: "x", DueAt: dueAt})
	d, notifier := newDispatcher(repo, nil, dueAt)

	d.ProcessDueReminders(context.Background())
	d.ProcessDueReminders(context.Background())
	d.ProcessDueReminders(context.Background())

	if len(notifier.emails) != 1 {
		t.Errorf("emails sent = %d, want exactly 1 across repeated ticks", len(notifier.emails))
	}
	if repo.markCalls != 1 {
		t.Errorf("MarkSent calls = %d, want 1", repo.markCalls)
	}
}

func TestProcessDueRemindersChannelFlags(t *testing.T) {
	dueAt := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		profile    *models.Profile
		wantEmails int
		wantSMS    int
	}{
		{
			name:       "no profile defaults to email only",
			profile:    nil,
			wantEmails: 1,
			wantSMS:    0,
		},
		{
			name:       "email disabled",
			profile:    &models.Profile{UserID: "u1", NotifyEmail: false},
			wantEmails: 0,
			wantSMS:    0,
		},
		{
			name:       "sms enabled with phone",
			profile:    &models.Profile{UserID: "u1", NotifyEmail: true, NotifySMS: true, Phone: "+15550100"},
			wantEmails: 1,
			wantSMS:    1,
		},
		{
			name:       "sms enabled without phone is skipped",
			profile:    &models.Profile{UserID: "u1", NotifyEmail: true, NotifySMS: true},
			wantEmails: 1,
			wantSMS:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeReminderRepo(&models.Reminder{ID: "r1", UserID: "u1", Title: "x", DueAt: dueAt})
			profiles := map[string]*models.Profile{}
			if tt.profile != nil {
				profiles["u1"] = tt.profile
			}
			d, notifier := newDispatcher(repo, profiles, dueAt)

			d.ProcessDueReminders(context.Background())

			if len(notifier.emails) != tt.wantEmails {
				t.Errorf("emails = %d, want %d", len(notifier.emails), tt.wantEmails)
			}
			if len(notifier.sms) != tt.wantSMS {
				t.Errorf("sms = %d, want %d", len(notifier.sms), tt.wantSMS)
			}
			// Delivery outcome never blocks the sent stamp.
			if !repo.reminders["r1"].IsSent() {
				t.Error("reminder not stamped sent")
			}
		})
	}
}

func TestProcessDueRemindersMessageFormat(t *testing.T) {
	dueAt := time.Date(2026, 8, 28, 14, 45, 0, 0, time.UTC)
	repo := newFakeReminderRepo(&models.Reminder{
		ID: "r1", UserID: "u1", Title: "Metformin", Kind: "medication",
		DueAt: dueAt, Notes: "with food",
	})
	d, notifier := newDispatcher(repo, nil, dueAt)

	d.ProcessDueReminders(context.Background())

	if len(notifier.emails) != 1 {
		t.Fatalf("emails = %d, want 1", len(notifier.emails))
	}
	got := notifier.emails[0]
	if got.subject != "Vital Guard Reminder: Metformin" {
		t.Errorf("subject = %q", got.subject)
	}
	want := "Metformin\nType: medication\nWhen: Aug 28, 2026 14:45\nNotes: with food\n"
	if got.body != want {
		t.Errorf("body = %q, want %q", got.body, want)
	}
}
