package notification

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vitalguard/config"
	"vitalguard/utils"

	"go.uber.org/zap"
)

// SMSSender delivers a single SMS. Send reports whether the message was
// accepted by the transport.
type SMSSender interface {
	Send(ctx context.Context, to, body string) bool
}

// NewSMSSender returns a Twilio sender when Twilio is configured, otherwise
// a disabled sender that reports false for every message.
func NewSMSSender(cfg config.Config) SMSSender {
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.TwilioFrom == "" {
		utils.GetLogger().Warn("Twilio not configured, SMS notifications disabled")
		return disabledSMSSender{}
	}
	return &twilioSMSSender{
		accountSID: cfg.TwilioAccountSID,
		authToken:  cfg.TwilioAuthToken,
		from:       cfg.TwilioFrom,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

type disabledSMSSender struct{}

func (disabledSMSSender) Send(ctx context.Context, to, body string) bool {
	return false
}

// twilioSMSSender posts to the Twilio Messages REST API.
type twilioSMSSender struct {
	accountSID string
	authToken  string
	from       string
	client     *http.Client
}

func (t *twilioSMSSender) Send(ctx context.Context, to, body string) bool {
	endpoint := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", t.accountSID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", t.from)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		utils.GetLogger().Error("Failed to build Twilio request", zap.Error(err))
		return false
	}
	req.SetBasicAuth(t.accountSID, t.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		utils.GetLogger().Error("Failed to send SMS", zap.String("to", to), zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		utils.GetLogger().Error("Twilio rejected SMS",
			zap.String("to", to),
			zap.Int("status", resp.StatusCode),
			zap.String("response", string(respBody)))
		return false
	}
	return true
}
