package leads

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/bildo/landing/internal/config"
)

// Module provides the lead delivery collaborators and the submission limiter.
var Module = fx.Module("leads",
	fx.Provide(
		NewTemplateService,
		NewDeliverer,
		NewRateLimiter,
		func(f *Fanout) Deliverer { return f },
	),
)

// NewDeliverer fans out to Mailgun and the CRM webhook when configured,
// otherwise falls back to logging the lead.
func NewDeliverer(cfg *config.Config, templates *TemplateService, log *slog.Logger) *Fanout {
	fanout := NewFanout(log)

	if cfg.Email.Enabled {
		if mg := NewMailgunDeliverer(cfg.Email, cfg.Leads.SalesInbox, templates, log); mg != nil {
			log.Info("lead delivery: mailgun",
				slog.String("domain", cfg.Email.MailgunDomain),
				slog.String("inbox", cfg.Leads.SalesInbox))
			fanout.Add("mailgun", mg)
		}
	}

	if wh := NewWebhookDeliverer(cfg.Webhook, log); wh != nil {
		log.Info("lead delivery: webhook", slog.String("url", cfg.Webhook.URL))
		fanout.Add("webhook", wh)
	}

	if len(fanout.Names()) == 0 {
		log.Info("lead delivery: log only (mailgun and webhook not configured)")
		fanout.Add("log", NewLogDeliverer(log))
	}

	return fanout
}
