package leads

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/bildo/landing/internal/config"
	"github.com/bildo/landing/pkg/logger"
)

const notificationTemplate = "lead_notification"

// messageSender is the slice of the Mailgun client the deliverer needs.
type messageSender interface {
	NewMessage(from, subject, text string, to ...string) *mailgun.Message
	Send(ctx context.Context, m *mailgun.Message) (string, string, error)
}

// MailgunDeliverer emails every lead to the sales inbox via Mailgun.
type MailgunDeliverer struct {
	email     config.EmailConfig
	inbox     string
	templates *TemplateService
	log       *slog.Logger
	client    messageSender
}

// NewMailgunDeliverer creates a Mailgun-backed deliverer.
// Returns nil if Mailgun is not configured.
func NewMailgunDeliverer(email config.EmailConfig, inbox string, templates *TemplateService, log *slog.Logger) *MailgunDeliverer {
	if !email.IsConfigured() {
		return nil
	}

	mg := mailgun.NewMailgun(email.MailgunDomain, email.MailgunAPIKey)
	if email.MailgunAPIBase != "" {
		mg.SetAPIBase(email.MailgunAPIBase)
	}

	return &MailgunDeliverer{
		email:     email,
		inbox:     inbox,
		templates: templates,
		log:       log.With(logger.Scope("leads.mailgun")),
		client:    mg,
	}
}

// validate checks that the configuration is valid
func (d *MailgunDeliverer) validate() error {
	if d.email.MailgunDomain == "" {
		return fmt.Errorf("MAILGUN_DOMAIN is required")
	}
	if d.email.MailgunAPIKey == "" {
		return fmt.Errorf("MAILGUN_API_KEY is required")
	}
	if d.email.FromEmail == "" {
		return fmt.Errorf("EMAIL_FROM_ADDRESS is required")
	}
	if d.inbox == "" {
		return fmt.Errorf("LEADS_SALES_INBOX is required")
	}
	return nil
}

func (d *MailgunDeliverer) Deliver(ctx context.Context, lead Lead) error {
	if err := d.validate(); err != nil {
		return &RejectedError{Collaborator: "mailgun", Reason: err.Error()}
	}

	subject := fmt.Sprintf("Nueva solicitud de demo: %s (%s)", lead.Company, lead.Name)
	rendered, err := d.templates.Render(notificationTemplate, TemplateContext{
		"title":       subject,
		"lead":        lead,
		"submittedAt": lead.SubmittedAt.Format(time.RFC1123),
	}, "base")
	if err != nil {
		return fmt.Errorf("render notification: %w", err)
	}

	from := fmt.Sprintf("%s <%s>", d.email.FromName, d.email.FromEmail)
	message := d.client.NewMessage(from, subject, rendered.Text, d.inbox)
	message.SetHtml(rendered.HTML)
	message.SetReplyTo(fmt.Sprintf("%s <%s>", lead.Name, lead.Email))
	message.AddTag("lead")

	_, messageID, err := d.client.Send(ctx, message)
	if err != nil {
		d.log.Error("failed to send lead notification",
			slog.String("lead_id", lead.ID),
			logger.Error(err))
		if ctx.Err() != nil {
			return fmt.Errorf("mailgun: %w", ctx.Err())
		}
		return &RejectedError{Collaborator: "mailgun", Reason: err.Error()}
	}

	d.log.Info("lead notification sent",
		slog.String("lead_id", lead.ID),
		slog.String("message_id", messageID))
	return nil
}
