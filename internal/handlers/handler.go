// Package handlers serves the landing page and the two lead submission
// endpoints (the HTML form post and the JSON API).
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	g "maragu.dev/gomponents"

	"github.com/bildo/landing/internal/components"
	"github.com/bildo/landing/internal/config"
	"github.com/bildo/landing/internal/content"
	"github.com/bildo/landing/internal/leads"
	"github.com/bildo/landing/internal/theme"
	"github.com/bildo/landing/internal/ui"
	"github.com/bildo/landing/pkg/apperror"
	"github.com/bildo/landing/pkg/logger"
	"github.com/bildo/landing/pkg/tracing"
)

type Handler struct {
	cfg      *config.Config
	page     components.PageConfig
	delivery leads.Deliverer
	limiter  *leads.RateLimiter
	log      *slog.Logger
	now      func() time.Time
	formOpts []ui.LeadFormOption
}

func NewHandler(cfg *config.Config, tokens *theme.Tokens, delivery leads.Deliverer, limiter *leads.RateLimiter, log *slog.Logger) (*Handler, error) {
	tailwind, err := tokens.TailwindConfig()
	if err != nil {
		return nil, err
	}

	return &Handler{
		cfg: cfg,
		page: components.PageConfig{
			Title:          cfg.Site.Title,
			Description:    cfg.Site.Description,
			OGImage:        cfg.Site.OGImage,
			URL:            cfg.Site.PublicURL,
			Lang:           cfg.Site.Lang,
			TailwindConfig: tailwind,
			ThemeCSS:       tokens.CSSVariables(),
		},
		delivery: delivery,
		limiter:  limiter,
		log:      log.With(logger.Scope("handlers")),
		now:      time.Now,
		formOpts: []ui.LeadFormOption{
			ui.WithRevertDelay(cfg.Leads.RevertDelay),
			ui.WithDeliveryTimeout(cfg.Leads.DeliveryTimeout),
			ui.WithLogger(log),
		},
	}, nil
}

// Landing renders the page. ?y=<offset> seeds the navigation bar's scroll
// state and ?menu=open opens the mobile menu, so both work without scripts.
func (h *Handler) Landing(c echo.Context) error {
	return h.renderPage(c, http.StatusOK, navState(c), components.LeadFormView{})
}

// ContactRedirect sends a reload of the form result back to the form.
func (h *Handler) ContactRedirect(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/"+content.AnchorContact.Href())
}

// SubmitForm handles the HTML form post and re-renders the page with the
// result in the contact section.
func (h *Handler) SubmitForm(c echo.Context) error {
	form := h.newForm()
	defer form.Unmount()

	for _, name := range ui.Fields() {
		if err := form.SetField(name, c.FormValue(name)); err != nil {
			return err
		}
	}

	view := components.LeadFormView{RevertAfter: form.RevertDelay()}
	status := http.StatusOK

	if _, err := h.submit(c, form, leads.ChannelForm); err != nil {
		appErr := toAppError(err)
		status = appErr.HTTPStatus
		view.Message = appErr.Message
		view.FieldErrors = ui.FieldErrors(appErr)
	}
	view.State = form.State()

	return h.renderPage(c, status, ui.NavState{}, view)
}

type leadResponse struct {
	ID            string `json:"id"`
	Submitted     bool   `json:"submitted"`
	RevertAfterMs int64  `json:"revertAfterMs"`
}

// SubmitAPI accepts a flat JSON object of form fields.
func (h *Handler) SubmitAPI(c echo.Context) error {
	var payload map[string]string
	if err := c.Bind(&payload); err != nil {
		return apperror.NewBadRequest("El cuerpo debe ser un objeto JSON con campos de texto").WithInternal(err)
	}

	form := h.newForm()
	defer form.Unmount()

	for name, value := range payload {
		if err := form.SetField(name, value); err != nil {
			leads.ObserveSubmission(leads.ChannelAPI, apperror.ErrUnknownField.Code)
			return err
		}
	}

	lead, err := h.submit(c, form, leads.ChannelAPI)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, leadResponse{
		ID:            lead.ID,
		Submitted:     true,
		RevertAfterMs: form.RevertDelay().Milliseconds(),
	})
}

func (h *Handler) submit(c echo.Context, form *ui.LeadForm, channel string) (leads.Lead, error) {
	ctx, span := tracing.Start(c.Request().Context(), "leads.submit",
		attribute.String("bildo.lead.channel", channel),
	)
	defer span.End()

	ip := c.RealIP()
	if !h.limiter.Allow(ip) {
		h.log.Warn("lead submission rate limited", slog.String("remote_ip", ip))
		leads.ObserveSubmission(channel, apperror.ErrRateLimited.Code)
		return leads.Lead{}, apperror.ErrRateLimited
	}

	lead, err := form.Submit(ctx, leads.Origin{
		Channel:   channel,
		RemoteIP:  ip,
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		outcome := toAppError(err).Code
		span.SetAttributes(attribute.String("bildo.lead.outcome", outcome))
		leads.ObserveSubmission(channel, outcome)
		return leads.Lead{}, err
	}

	span.SetAttributes(attribute.String("bildo.lead.id", lead.ID))
	leads.ObserveSubmission(channel, "accepted")
	return lead, nil
}

func (h *Handler) newForm() *ui.LeadForm {
	return ui.NewLeadForm(h.delivery, h.formOpts...)
}

func (h *Handler) renderPage(c echo.Context, status int, nav ui.NavState, form components.LeadFormView) error {
	page := components.LandingPage(components.PageData{
		Config: h.page,
		Nav:    nav,
		Form:   form,
		Year:   h.now().Year(),
	})
	return render(c, status, page)
}

func render(c echo.Context, status int, n g.Node) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return n.Render(c.Response())
}

// navState mounts a navigation bar on a one-shot scroll feed, replays the
// requested offset and menu state, and returns what it settled on.
func navState(c echo.Context) ui.NavState {
	feed := ui.NewScrollFeed()
	nav := ui.NewNavigationBar()
	nav.Mount(feed)
	defer nav.Unmount()

	if y, err := strconv.Atoi(c.QueryParam("y")); err == nil {
		feed.Publish(y)
	}
	if c.QueryParam("menu") == "open" {
		nav.ToggleMenu()
	}
	return nav.State()
}

func toAppError(err error) *apperror.Error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.ErrInternal.WithInternal(err)
}
