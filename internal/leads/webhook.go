package leads

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/bildo/landing/internal/config"
	"github.com/bildo/landing/pkg/logger"
)

// SignatureHeader carries the hex HMAC-SHA256 of the request body when a
// webhook secret is configured.
const SignatureHeader = "X-Bildo-Signature"

// WebhookDeliverer posts each lead as JSON to a CRM webhook. 5xx answers and
// transport errors are retried; 4xx answers are final rejections.
type WebhookDeliverer struct {
	url    string
	secret string
	client *resty.Client
	log    *slog.Logger
}

// NewWebhookDeliverer returns nil when no webhook URL is configured.
func NewWebhookDeliverer(cfg config.WebhookConfig, log *slog.Logger) *WebhookDeliverer {
	if !cfg.IsConfigured() {
		return nil
	}

	client := resty.New().
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(cfg.RetryWait).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "bildo-landing/1").
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() >= http.StatusInternalServerError
		})

	return &WebhookDeliverer{
		url:    cfg.URL,
		secret: cfg.Secret,
		client: client,
		log:    log.With(logger.Scope("leads.webhook")),
	}
}

// Sign returns the hex HMAC-SHA256 of body under secret.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func (d *WebhookDeliverer) Deliver(ctx context.Context, lead Lead) error {
	body, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("encode lead: %w", err)
	}

	req := d.client.R().SetContext(ctx).SetBody(body)
	if d.secret != "" {
		req.SetHeader(SignatureHeader, Sign(d.secret, body))
	}

	resp, err := req.Post(d.url)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("webhook: %w", ctx.Err())
		}
		return &RejectedError{Collaborator: "webhook", Reason: err.Error()}
	}
	if resp.IsError() {
		d.log.Warn("webhook rejected lead",
			slog.String("lead_id", lead.ID),
			slog.Int("status", resp.StatusCode()))
		return &RejectedError{Collaborator: "webhook", StatusCode: resp.StatusCode(), Reason: resp.Status()}
	}

	d.log.Debug("lead posted to webhook",
		slog.String("lead_id", lead.ID),
		slog.Int("status", resp.StatusCode()))
	return nil
}
