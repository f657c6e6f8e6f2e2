package tracing

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/bildo/landing/internal/config"
)

func TestNewTracerProvider_Disabled(t *testing.T) {
	res, err := NewTracerProvider(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.Nil(t, res.SDKProvider)
	assert.NotNil(t, otel.GetTracerProvider())
}

func TestSampler(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), sampler(1).Description())
	assert.Equal(t, sdktrace.NeverSample().Description(), sampler(0).Description())
	assert.Contains(t, sampler(0.25).Description(), "TraceIDRatioBased")
}

func TestSkipTracing(t *testing.T) {
	e := echo.New()
	tests := []struct {
		path string
		skip bool
	}{
		{"/health", true},
		{"/ready", true},
		{"/metrics", true},
		{"/static/styles.css", true},
		{"/", false},
		{"/contacto", false},
		{"/api/leads", false},
	}
	for _, tt := range tests {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, tt.path, nil), httptest.NewRecorder())
		assert.Equal(t, tt.skip, skipTracing(c), tt.path)
	}
}
