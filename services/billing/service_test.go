package billing

import (
	"encoding/json"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/stripe/stripe-go/v76"

	"vitalguard/models"
)

type fakeSubscriptionRepo struct {
	byUser     map[string]*models.Subscription
	upsertCalls int
}

func newFakeSubscriptionRepo(subs ...*models.Subscription) *fakeSubscriptionRepo {
	m := make(map[string]*models.Subscription)
	for _, s := range subs {
		m[s.UserID] = s
	}
	return &fakeSubscriptionRepo{byUser: m}
}

func (f *fakeSubscriptionRepo) GetByUserID(userID string) (*models.Subscription, error) {
	return f.byUser[userID], nil
}
func (f *fakeSubscriptionRepo) GetByCustomerID(customerID string) (*models.Subscription, error) {
	for _, s := range f.byUser {
		if s.StripeCustomerID == customerID {
			return s, nil
		}
	}
	return nil, nil
}
func (f *fakeSubscriptionRepo) Upsert(sub *models.Subscription) error {
	f.upsertCalls++
	copied := *sub
	f.byUser[sub.UserID] = &copied
	return nil
}
func (f *fakeSubscriptionRepo) DeleteByUserID(userID string) error {
	delete(f.byUser, userID)
	return nil
}

type fakeBillingUserRepo struct {
	byEmail map[string]*models.User
}

func (f *fakeBillingUserRepo) GetByID(id string) (*models.User, error) { return nil, nil }
func (f *fakeBillingUserRepo) GetByEmail(email string) (*models.User, error) {
	return f.byEmail[email], nil
}
func (f *fakeBillingUserRepo) Create(u *models.User) error                   { return nil }
func (f *fakeBillingUserRepo) Update(u *models.User) error                   { return nil }
func (f *fakeBillingUserRepo) UpdateSetDocument(id string, doc bson.M) error { return nil }
func (f *fakeBillingUserRepo) Delete(id string) error                        { return nil }

func TestIsEntitled(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		sub  *models.Subscription
		want bool
	}{
		{"no subscription", nil, false},
		{"active without period end", &models.Subscription{UserID: "u1", Status: models.SubscriptionActive}, true},
		{"active with future period end", &models.Subscription{UserID: "u1", Status: models.SubscriptionActive, CurrentPeriodEnd: now.Add(time.Hour)}, true},
		{"active with lapsed period end", &models.Subscription{UserID: "u1", Status: models.SubscriptionActive, CurrentPeriodEnd: now.Add(-time.Second)}, false},
		{"canceled", &models.Subscription{UserID: "u1", Status: models.SubscriptionCanceled, CurrentPeriodEnd: now.Add(time.Hour)}, false},
		{"past due", &models.Subscription{UserID: "u1", Status: models.SubscriptionPastDue}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeSubscriptionRepo()
			if tt.sub != nil {
				repo.byUser["u1"] = tt.sub
			}
			svc := &DefaultBillingService{Repo: repo, UserRepo: &fakeBillingUserRepo{}}
			if got := svc.IsEntitled("u1", now); got != tt.want {
				t.Errorf("IsEntitled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func checkoutEvent(t *testing.T, sess stripe.CheckoutSession) stripe.Event {
	t.Helper()
	raw, err := json.Marshal(sess)
	if err != nil {
		t.Fatal(err)
	}
	return stripe.Event{
		Type: "checkout.session.completed",
		Data: &stripe.EventData{Raw: raw},
	}
}

func subscriptionEvent(t *testing.T, eventType string, sub stripe.Subscription) stripe.Event {
	t.Helper()
	raw, err := json.Marshal(sub)
	if err != nil {
		t.Fatal(err)
	}
	return stripe.Event{
		Type: stripe.EventType(eventType),
		Data: &stripe.EventData{Raw: raw},
	}
}

func TestApplyCheckoutCompleted(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	svc := &DefaultBillingService{Repo: repo, UserRepo: &fakeBillingUserRepo{}}

	event := checkoutEvent(t, stripe.CheckoutSession{
		ClientReferenceID: "u1",
		Customer:          &stripe.Customer{ID: "cus_123"},
		Subscription:      &stripe.Subscription{ID: "sub_123"},
	})
	if err := svc.applyEvent(event); err != nil {
		t.Fatalf("applyEvent() error = %v", err)
	}

	got := repo.byUser["u1"]
	if got == nil {
		t.Fatal("subscription not created")
	}
	if got.Status != models.SubscriptionActive {
		t.Errorf("status = %q, want active", got.Status)
	}
	if got.StripeCustomerID != "cus_123" || got.StripeSubscriptionID != "sub_123" {
		t.Errorf("stripe ids = %q/%q", got.StripeCustomerID, got.StripeSubscriptionID)
	}
}

func TestApplyCheckoutCompletedByEmailFallback(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	users := &fakeBillingUserRepo{byEmail: map[string]*models.User{
		"pat@example.com": {ID: "u9", Email: "pat@example.com"},
	}}
	svc := &DefaultBillingService{Repo: repo, UserRepo: users}

	event := checkoutEvent(t, stripe.CheckoutSession{CustomerEmail: "pat@example.com"})
	if err := svc.applyEvent(event); err != nil {
		t.Fatalf("applyEvent() error = %v", err)
	}
	if repo.byUser["u9"] == nil || repo.byUser["u9"].Status != models.SubscriptionActive {
		t.Error("subscription not activated for email-resolved user")
	}
}

func TestApplyCheckoutCompletedIdempotent(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	svc := &DefaultBillingService{Repo: repo, UserRepo: &fakeBillingUserRepo{}}

	event := checkoutEvent(t, stripe.CheckoutSession{
		ClientReferenceID: "u1",
		Customer:          &stripe.Customer{ID: "cus_123"},
	})
	for i := 0; i < 3; i++ {
		if err := svc.applyEvent(event); err != nil {
			t.Fatalf("applyEvent() replay %d error = %v", i, err)
		}
	}

	if len(repo.byUser) != 1 {
		t.Errorf("subscriptions stored = %d, want 1", len(repo.byUser))
	}
	got := repo.byUser["u1"]
	if got.Status != models.SubscriptionActive || got.StripeCustomerID != "cus_123" {
		t.Errorf("replayed state diverged: %+v", got)
	}
}

func TestApplySubscriptionLifecycle(t *testing.T) {
	periodEnd := time.Date(2026, 9, 28, 0, 0, 0, 0, time.UTC)
	repo := newFakeSubscriptionRepo(&models.Subscription{
		ID: "s1", UserID: "u1", StripeCustomerID: "cus_123", Status: models.SubscriptionActive,
	})
	svc := &DefaultBillingService{Repo: repo, UserRepo: &fakeBillingUserRepo{}}

	update := subscriptionEvent(t, "customer.subscription.updated", stripe.Subscription{
		ID:               "sub_123",
		Customer:         &stripe.Customer{ID: "cus_123"},
		Status:           stripe.SubscriptionStatusPastDue,
		CurrentPeriodEnd: periodEnd.Unix(),
	})
	if err := svc.applyEvent(update); err != nil {
		t.Fatalf("applyEvent(updated) error = %v", err)
	}
	got := repo.byUser["u1"]
	if got.Status != models.SubscriptionPastDue {
		t.Errorf("status = %q, want past_due", got.Status)
	}
	if !got.CurrentPeriodEnd.Equal(periodEnd) {
		t.Errorf("period end = %v, want %v", got.CurrentPeriodEnd, periodEnd)
	}

	deleted := subscriptionEvent(t, "customer.subscription.deleted", stripe.Subscription{
		ID:       "sub_123",
		Customer: &stripe.Customer{ID: "cus_123"},
	})
	if err := svc.applyEvent(deleted); err != nil {
		t.Fatalf("applyEvent(deleted) error = %v", err)
	}
	if repo.byUser["u1"].Status != models.SubscriptionCanceled {
		t.Errorf("status = %q, want canceled", repo.byUser["u1"].Status)
	}
}

func TestApplyEventUnknownTypeIgnored(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	svc := &DefaultBillingService{Repo: repo, UserRepo: &fakeBillingUserRepo{}}

	event := stripe.Event{Type: "invoice.paid", Data: &stripe.EventData{Raw: []byte("{}")}}
	if err := svc.applyEvent(event); err != nil {
		t.Fatalf("applyEvent() error = %v", err)
	}
	if repo.upsertCalls != 0 {
		t.Errorf("upserts = %d, want 0 for ignored event", repo.upsertCalls)
	}
}

func TestApplySubscriptionChangeUnknownCustomer(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	svc := &DefaultBillingService{Repo: repo, UserRepo: &fakeBillingUserRepo{}}

	event := subscriptionEvent(t, "customer.subscription.updated", stripe.Subscription{
		ID:       "sub_999",
		Customer: &stripe.Customer{ID: "cus_unknown"},
		Status:   stripe.SubscriptionStatusActive,
	})
	if err := svc.applyEvent(event); err != nil {
		t.Fatalf("applyEvent() error = %v", err)
	}
	if repo.upsertCalls != 0 {
		t.Errorf("upserts = %d, want 0 for unknown customer", repo.upsertCalls)
	}
}
