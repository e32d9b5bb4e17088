package billing

import (
	"fmt"
	"time"

	"vitalguard/config"
	subscriptionRepo "vitalguard/database/repository/subscription"
	userRepo "vitalguard/database/repository/user"
	"vitalguard/models"
	"vitalguard/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
)

// DefaultBillingService is the production implementation.
type DefaultBillingService struct {
	Repo     subscriptionRepo.SubscriptionRepository
	UserRepo userRepo.UserRepository
}

// NewDefaultBillingService wires the Stripe API key and returns the service.
func NewDefaultBillingService(repo subscriptionRepo.SubscriptionRepository, users userRepo.UserRepository) *DefaultBillingService {
	stripe.Key = config.AppConfig.StripeSecretKey
	return &DefaultBillingService{Repo: repo, UserRepo: users}
}

// IsEntitled evaluates the subscription gate: an active subscription whose
// period has not lapsed. Unknown users and lookup failures deny.
func (s *DefaultBillingService) IsEntitled(userID string, now time.Time) bool {
	sub, err := s.Repo.GetByUserID(userID)
	if err != nil {
		utils.GetLogger().Error("Failed to load subscription for entitlement check",
			zap.String("userID", userID), zap.Error(err))
		return false
	}
	return sub.IsEntitled(now)
}

// GetSubscription returns the user's subscription, or nil when absent.
func (s *DefaultBillingService) GetSubscription(userID string) (*models.Subscription, error) {
	return s.Repo.GetByUserID(userID)
}

// CreateCheckoutSession starts a Stripe subscription checkout. The user ID
// rides along as the client reference so the webhook can attribute the
// completed session.
func (s *DefaultBillingService) CreateCheckoutSession(userID, email string) (string, error) {
	cfg := config.AppConfig
	if cfg.StripeSecretKey == "" || cfg.StripePriceID == "" {
		return "", fmt.Errorf("billing is not configured")
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(cfg.StripePriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:          stripe.String(cfg.AppBaseURL + "/billing?success=1"),
		CancelURL:           stripe.String(cfg.AppBaseURL + "/billing?canceled=1"),
		CustomerEmail:       stripe.String(email),
		ClientReferenceID:   stripe.String(userID),
		AllowPromotionCodes: stripe.Bool(true),
	}

	sess, err := session.New(params)
	if err != nil {
		utils.GetLogger().Error("Failed to create checkout session",
			zap.String("userID", userID), zap.Error(err))
		return "", fmt.Errorf("failed to start checkout, please try again")
	}
	return sess.ID, nil
}
