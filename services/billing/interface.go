package billing

import (
	"time"

	"vitalguard/models"
)

// BillingService manages subscription state and the Stripe integration.
type BillingService interface {
	// IsEntitled evaluates the subscription gate for a user at the given
	// instant. Evaluated fresh on every call; never cached.
	IsEntitled(userID string, now time.Time) bool
	// GetSubscription returns the user's subscription, or nil when the user
	// has never subscribed.
	GetSubscription(userID string) (*models.Subscription, error)
	// CreateCheckoutSession starts a Stripe subscription checkout and
	// returns the session ID for the client to redirect with.
	CreateCheckoutSession(userID, email string) (string, error)
	// HandleWebhook verifies and applies a Stripe webhook event. A bad
	// signature or malformed payload returns an error with no state change.
	HandleWebhook(payload []byte, sigHeader string) error
}
