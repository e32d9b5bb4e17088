package billing

import (
	"encoding/json"
	"fmt"
	"time"

	"vitalguard/config"
	"vitalguard/models"
	"vitalguard/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// HandleWebhook verifies the event signature and applies the event. An
// invalid signature or unparseable payload returns an error and changes
// nothing; unrecognized event types are acknowledged and ignored.
func (s *DefaultBillingService) HandleWebhook(payload []byte, sigHeader string) error {
	secret := config.AppConfig.StripeWebhookSecret
	if secret == "" {
		utils.GetLogger().Warn("Stripe webhook received but no webhook secret configured")
		return nil
	}

	event, err := webhook.ConstructEvent(payload, sigHeader, secret)
	if err != nil {
		return fmt.Errorf("webhook signature verification failed: %w", err)
	}

	return s.applyEvent(event)
}

// applyEvent updates subscription state from a verified event. Replays of
// the same event converge on the same stored state.
func (s *DefaultBillingService) applyEvent(event stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return fmt.Errorf("failed to parse checkout session: %w", err)
		}
		return s.applyCheckoutCompleted(&sess)

	case "customer.subscription.created", "customer.subscription.updated", "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return fmt.Errorf("failed to parse subscription: %w", err)
		}
		return s.applySubscriptionChange(&sub, event.Type == "customer.subscription.deleted")

	default:
		utils.GetLogger().Debug("Ignoring Stripe event", zap.String("type", string(event.Type)))
		return nil
	}
}

// applyCheckoutCompleted activates the subscription for the user who
// completed checkout. The user is resolved from the client reference ID,
// falling back to the checkout email.
func (s *DefaultBillingService) applyCheckoutCompleted(sess *stripe.CheckoutSession) error {
	userID := sess.ClientReferenceID
	if userID == "" {
		email := sess.CustomerEmail
		if email == "" && sess.CustomerDetails != nil {
			email = sess.CustomerDetails.Email
		}
		if email == "" {
			utils.GetLogger().Warn("Checkout session carries no user reference or email",
				zap.String("sessionID", sess.ID))
			return nil
		}
		user, err := s.UserRepo.GetByEmail(email)
		if err != nil {
			return fmt.Errorf("failed to resolve checkout user: %w", err)
		}
		if user == nil {
			utils.GetLogger().Warn("Checkout completed for unknown email", zap.String("email", email))
			return nil
		}
		userID = user.ID
	}

	sub, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return fmt.Errorf("failed to load subscription: %w", err)
	}
	if sub == nil {
		sub = &models.Subscription{ID: uuid.New().String(), UserID: userID}
	}

	if sess.Customer != nil {
		sub.StripeCustomerID = sess.Customer.ID
	}
	if sess.Subscription != nil {
		sub.StripeSubscriptionID = sess.Subscription.ID
	}
	sub.Status = models.SubscriptionActive

	if err := s.Repo.Upsert(sub); err != nil {
		return fmt.Errorf("failed to store subscription: %w", err)
	}
	utils.GetLogger().Info("Subscription activated via checkout", zap.String("userID", userID))
	return nil
}

// applySubscriptionChange mirrors a provider-side subscription lifecycle
// event onto the stored record, matched by Stripe customer ID.
func (s *DefaultBillingService) applySubscriptionChange(stripeSub *stripe.Subscription, deleted bool) error {
	if stripeSub.Customer == nil {
		return nil
	}
	sub, err := s.Repo.GetByCustomerID(stripeSub.Customer.ID)
	if err != nil {
		return fmt.Errorf("failed to load subscription: %w", err)
	}
	if sub == nil {
		// Subscription events can arrive before checkout.session.completed;
		// nothing to update yet.
		utils.GetLogger().Debug("Subscription event for unknown customer",
			zap.String("customerID", stripeSub.Customer.ID))
		return nil
	}

	sub.StripeSubscriptionID = stripeSub.ID
	if deleted {
		sub.Status = models.SubscriptionCanceled
	} else {
		sub.Status = mapStripeStatus(stripeSub.Status)
	}
	if stripeSub.CurrentPeriodEnd > 0 {
		sub.CurrentPeriodEnd = time.Unix(stripeSub.CurrentPeriodEnd, 0).UTC()
	}

	if err := s.Repo.Upsert(sub); err != nil {
		return fmt.Errorf("failed to store subscription: %w", err)
	}
	return nil
}

func mapStripeStatus(status stripe.SubscriptionStatus) string {
	switch status {
	case stripe.SubscriptionStatusActive, stripe.SubscriptionStatusTrialing:
		return models.SubscriptionActive
	case stripe.SubscriptionStatusPastDue:
		return models.SubscriptionPastDue
	case stripe.SubscriptionStatusCanceled:
		return models.SubscriptionCanceled
	default:
		return models.SubscriptionInactive
	}
}
