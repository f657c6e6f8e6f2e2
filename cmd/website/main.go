// Package main runs the BILDO landing site: the server-rendered page, its
// static assets and the lead capture endpoints.
package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/bildo/landing/internal/config"
	"github.com/bildo/landing/internal/handlers"
	"github.com/bildo/landing/internal/health"
	"github.com/bildo/landing/internal/leads"
	"github.com/bildo/landing/internal/server"
	"github.com/bildo/landing/internal/theme"
	"github.com/bildo/landing/internal/tracing"
	"github.com/bildo/landing/pkg/logger"
)

func main() {
	// .env.local overrides .env; Load never overwrites variables already set.
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure
		logger.Module,
		config.Module,
		server.Module,
		tracing.Module,

		// Site
		theme.Module,
		leads.Module,
		handlers.Module,
		health.Module,
	).Run()
}
