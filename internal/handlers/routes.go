package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/bildo/landing/internal/static"
)

var Module = fx.Module("handlers",
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)

// RegisterRoutes registers the page, the lead endpoints and the asset router.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/", h.Landing)
	e.GET("/contacto", h.ContactRedirect)
	e.POST("/contacto", h.SubmitForm)
	e.POST("/api/leads", h.SubmitAPI)

	assets := echo.WrapHandler(static.Handler())
	e.GET(static.Prefix+"/*", assets)
	e.HEAD(static.Prefix+"/*", assets)
}
