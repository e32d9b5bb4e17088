package notification

import (
	"context"

	"vitalguard/config"
)

// NotificationService sends reminder notifications over the channels a user
// has enabled. Sends are best-effort: a failed or unconfigured channel
// reports false and is never retried.
type NotificationService interface {
	SendEmail(ctx context.Context, to, subject, body string) bool
	SendSMS(ctx context.Context, to, body string) bool
}

// DefaultNotificationService is the production implementation. Each channel
// is backed by a sender picked at startup from configuration; channels with
// no transport configured get an explicit disabled sender.
type DefaultNotificationService struct {
	Email EmailSender
	SMS   SMSSender
}

// NewDefaultNotificationService builds the service from AppConfig.
func NewDefaultNotificationService() *DefaultNotificationService {
	return &DefaultNotificationService{
		Email: NewEmailSender(config.AppConfig),
		SMS:   NewSMSSender(config.AppConfig),
	}
}

func (s *DefaultNotificationService) SendEmail(ctx context.Context, to, subject, body string) bool {
	return s.Email.Send(ctx, to, subject, body)
}

func (s *DefaultNotificationService) SendSMS(ctx context.Context, to, body string) bool {
	return s.SMS.Send(ctx, to, body)
}
