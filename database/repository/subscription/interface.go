package subscriptionRepo

import (
	"vitalguard/models"
)

// SubscriptionRepository defines methods for subscription data access.
type SubscriptionRepository interface {
	// GetByUserID retrieves the subscription owned by a user, or nil when
	// the user has never subscribed.
	GetByUserID(userID string) (*models.Subscription, error)
	// GetByCustomerID retrieves the subscription linked to a Stripe customer,
	// or nil when unknown.
	GetByCustomerID(customerID string) (*models.Subscription, error)
	// Upsert inserts or replaces the subscription keyed by user ID.
	Upsert(sub *models.Subscription) error
	// DeleteByUserID removes the subscription owned by a user.
	DeleteByUserID(userID string) error
}
