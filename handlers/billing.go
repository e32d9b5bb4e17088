package handlers

import (
	"io"
	"net/http"
	"time"

	"vitalguard/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateCheckoutSessionHandler handles POST /api/billing/checkout.
func (h *HandlerBundle) CreateCheckoutSessionHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	usr, err := h.UserService.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	sessionID, err := h.BillingService.CreateCheckoutSession(userID, usr.Email)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": sessionID})
}

// GetSubscriptionHandler handles GET /api/billing/subscription.
func (h *HandlerBundle) GetSubscriptionHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	sub, err := h.BillingService.GetSubscription(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load subscription"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"subscription": sub,
		"entitled":     h.BillingService.IsEntitled(userID, time.Now()),
	})
}

// StripeWebhookHandler handles POST /stripe/webhook. The route is
// unauthenticated; authenticity comes from the Stripe signature.
func (h *HandlerBundle) StripeWebhookHandler(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<16))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	sigHeader := c.GetHeader("Stripe-Signature")
	if err := h.BillingService.HandleWebhook(payload, sigHeader); err != nil {
		utils.GetLogger().Warn("Rejected Stripe webhook", zap.Error(err))
		c.Status(http.StatusBadRequest)
		return
	}
	c.Status(http.StatusOK)
}
