package models

import "time"

// Subscription status values mirrored from the billing provider.
const (
	SubscriptionActive   = "active"
	SubscriptionInactive = "inactive"
	SubscriptionCanceled = "canceled"
	SubscriptionPastDue  = "past_due"
)

// Subscription tracks a user's billing state. Status and period fields are
// updated only by verified billing webhook events.
type Subscription struct {
	ID                   string    `bson:"id" json:"id"`
	UserID               string    `bson:"userId" json:"userId"`
	StripeCustomerID     string    `bson:"stripeCustomerId" json:"stripeCustomerId"`
	StripeSubscriptionID string    `bson:"stripeSubscriptionId" json:"stripeSubscriptionId"`
	Status               string    `bson:"status" json:"status"`
	CurrentPeriodEnd     time.Time `bson:"currentPeriodEnd,omitempty" json:"currentPeriodEnd,omitempty"`
	CreatedAt            time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsEntitled reports whether the subscription grants access to paid features
// at the given instant: status is active and the period has not lapsed.
func (s *Subscription) IsEntitled(now time.Time) bool {
	if s == nil || s.Status != SubscriptionActive {
		return false
	}
	return s.CurrentPeriodEnd.IsZero() || s.CurrentPeriodEnd.After(now)
}
