package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"WEBSITE_PORT" envDefault:"4002"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`

	Site    SiteConfig
	Leads   LeadsConfig
	Email   EmailConfig
	Webhook WebhookConfig
	Otel    OtelConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}

// IsProduction reports whether the site runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SiteConfig holds page metadata
type SiteConfig struct {
	PublicURL   string `env:"SITE_PUBLIC_URL" envDefault:"http://localhost:4002"`
	Title       string `env:"SITE_TITLE" envDefault:"BILDO - Análisis Normativo con IA"`
	Description string `env:"SITE_DESCRIPTION" envDefault:"BILDO analiza automáticamente la normativa urbana con IA, calcula edificabilidad e identifica el potencial de desarrollo de cada lote en segundos."`
	OGImage     string `env:"SITE_OG_IMAGE" envDefault:"/static/images/og-image.svg"`
	Lang        string `env:"SITE_LANG" envDefault:"es"`
}

// LeadsConfig controls lead capture behaviour
type LeadsConfig struct {
	// DeliveryTimeout bounds a single hand-off to the delivery collaborators
	DeliveryTimeout time.Duration `env:"LEADS_DELIVERY_TIMEOUT" envDefault:"10s"`
	// RevertDelay is how long the success panel stays before the form returns
	RevertDelay time.Duration `env:"LEADS_REVERT_DELAY" envDefault:"3s"`
	// RequestsPerMinute and Burst limit submissions per client IP
	RequestsPerMinute int `env:"LEADS_RATE_PER_MINUTE" envDefault:"6"`
	Burst             int `env:"LEADS_RATE_BURST" envDefault:"3"`
	// SalesInbox receives the lead notification email
	SalesInbox string `env:"LEADS_SALES_INBOX" envDefault:"contacto@bildo.ai"`
}

// EmailConfig holds Mailgun settings for lead notifications
type EmailConfig struct {
	Enabled       bool   `env:"EMAIL_ENABLED" envDefault:"false"`
	MailgunDomain string `env:"MAILGUN_DOMAIN" envDefault:""`
	MailgunAPIKey string `env:"MAILGUN_API_KEY" envDefault:""`
	// MailgunAPIBase overrides the API endpoint (EU region, tests)
	MailgunAPIBase string `env:"MAILGUN_API_BASE" envDefault:""`
	FromEmail      string `env:"EMAIL_FROM_ADDRESS" envDefault:"noreply@bildo.ai"`
	FromName       string `env:"EMAIL_FROM_NAME" envDefault:"BILDO"`
}

// IsConfigured returns true if Mailgun is configured
func (e *EmailConfig) IsConfigured() bool {
	return e.MailgunDomain != "" && e.MailgunAPIKey != ""
}

// WebhookConfig holds the CRM webhook the lead record is posted to
type WebhookConfig struct {
	URL        string        `env:"LEADS_WEBHOOK_URL" envDefault:""`
	Secret     string        `env:"LEADS_WEBHOOK_SECRET" envDefault:""`
	MaxRetries int           `env:"LEADS_WEBHOOK_MAX_RETRIES" envDefault:"2"`
	RetryWait  time.Duration `env:"LEADS_WEBHOOK_RETRY_WAIT" envDefault:"500ms"`
}

// IsConfigured returns true if a webhook URL is set
func (w *WebhookConfig) IsConfigured() bool {
	return w.URL != ""
}

// NewConfig parses the environment into a Config
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.Bool("email_enabled", cfg.Email.Enabled && cfg.Email.IsConfigured()),
		slog.Bool("webhook_enabled", cfg.Webhook.IsConfigured()),
	)

	return cfg, nil
}
