package health

import (
	"net/http"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bildo/landing/internal/config"
	"github.com/bildo/landing/internal/leads"
	"github.com/bildo/landing/internal/version"
)

// Handler handles health check requests
type Handler struct {
	cfg       *config.Config
	templates *leads.TemplateService
	delivery  *leads.Fanout
	startAt   time.Time
	draining  atomic.Bool
}

func NewHandler(cfg *config.Config, templates *leads.TemplateService, delivery *leads.Fanout) *Handler {
	return &Handler{
		cfg:       cfg,
		templates: templates,
		delivery:  delivery,
		startAt:   time.Now(),
	}
}

type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Drain marks the service as shutting down; Ready answers 503 from then on.
func (h *Handler) Drain() {
	h.draining.Store(true)
}

func (h *Handler) checks() map[string]Check {
	checks := map[string]Check{}

	if h.templates != nil && h.templates.HasTemplate("lead_notification") {
		checks["templates"] = Check{Status: "healthy"}
	} else {
		checks["templates"] = Check{Status: "unhealthy", Message: "lead notification template missing"}
	}

	names := h.delivery.Names()
	if len(names) == 0 {
		checks["delivery"] = Check{Status: "unhealthy", Message: "no delivery collaborator configured"}
	} else {
		checks["delivery"] = Check{Status: "healthy", Message: strings.Join(names, ",")}
	}
	return checks
}

// Health returns the overall service health
func (h *Handler) Health(c echo.Context) error {
	checks := h.checks()

	status := "healthy"
	for _, ch := range checks {
		if ch.Status != "healthy" {
			status = "unhealthy"
		}
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).String(),
		Version:   version.Version,
		Checks:    checks,
	}

	code := http.StatusOK
	if status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, response)
}

// Healthz returns a simple health check (for k8s liveness probe)
func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Ready returns readiness status (for k8s readiness probe)
func (h *Handler) Ready(c echo.Context) error {
	if h.draining.Load() {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status":  "not_ready",
			"message": "shutting down",
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ready",
	})
}

// Debug returns runtime information outside production.
func (h *Handler) Debug(c echo.Context) error {
	if h.cfg.IsProduction() {
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return c.JSON(http.StatusOK, map[string]any{
		"environment": h.cfg.Environment,
		"debug":       h.cfg.Debug,
		"version":     version.Info(),
		"go_version":  runtime.Version(),
		"goroutines":  runtime.NumGoroutine(),
		"memory": map[string]any{
			"alloc_mb":       mem.Alloc / 1024 / 1024,
			"total_alloc_mb": mem.TotalAlloc / 1024 / 1024,
			"sys_mb":         mem.Sys / 1024 / 1024,
			"num_gc":         mem.NumGC,
		},
		"delivery": h.delivery.Names(),
	})
}
