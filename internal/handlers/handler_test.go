package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bildo/landing/internal/config"
	"github.com/bildo/landing/internal/leads"
	"github.com/bildo/landing/internal/theme"
	"github.com/bildo/landing/pkg/apperror"
)

type captured struct {
	mu    sync.Mutex
	leads []leads.Lead
	err   error
	wait  bool
}

func (c *captured) Deliver(ctx context.Context, lead leads.Lead) error {
	c.mu.Lock()
	c.leads = append(c.leads, lead)
	err, wait := c.err, c.wait
	c.mu.Unlock()
	if wait {
		<-ctx.Done()
		return ctx.Err()
	}
	return err
}

func (c *captured) all() []leads.Lead {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]leads.Lead(nil), c.leads...)
}

func testConfig() *config.Config {
	return &config.Config{
		Site: config.SiteConfig{
			Title:       "BILDO - Análisis Normativo con IA",
			Description: "Análisis normativo",
			Lang:        "es",
		},
		Leads: config.LeadsConfig{
			DeliveryTimeout:   50 * time.Millisecond,
			RevertDelay:       3 * time.Second,
			RequestsPerMinute: 60,
			Burst:             2,
		},
	}
}

func setup(t *testing.T, d *captured) *echo.Echo {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens, err := theme.Default()
	require.NoError(t, err)

	cfg := testConfig()
	h, err := NewHandler(cfg, tokens, d, leads.NewRateLimiter(cfg), log)
	require.NoError(t, err)
	h.now = func() time.Time { return time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC) }

	e := echo.New()
	e.HTTPErrorHandler = apperror.HTTPErrorHandler(log)
	RegisterRoutes(e, h)
	return e
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func postForm(values url.Values, ip string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/contacto", strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.Header.Set(echo.HeaderXRealIP, ip)
	return req
}

func postJSON(body, ip string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderXRealIP, ip)
	return req
}

var juan = url.Values{
	"name":    {"Juan Pérez"},
	"email":   {"juan@constructora.com"},
	"company": {"Constructora ABC"},
}

func TestLanding(t *testing.T) {
	e := setup(t, &captured{})

	tests := []struct {
		name     string
		query    string
		scrolled bool
		menuOpen bool
	}{
		{"top of page", "", false, false},
		{"at threshold", "?y=20", false, false},
		{"past threshold", "?y=21", true, false},
		{"menu open", "?menu=open", false, true},
		{"garbage offset", "?y=abc", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, httptest.NewRequest(http.MethodGet, "/"+tt.query, nil))
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))

			body := rec.Body.String()
			if tt.scrolled {
				assert.Contains(t, body, `data-scrolled="true"`)
			} else {
				assert.Contains(t, body, `data-scrolled="false"`)
			}
			if tt.menuOpen {
				assert.Contains(t, body, `aria-expanded="true"`)
			} else {
				assert.Contains(t, body, `aria-expanded="false"`)
			}
			assert.Contains(t, body, `id="contacto"`)
			assert.Contains(t, body, "© 2026 BILDO.")
		})
	}
}

func TestSubmitForm_Success(t *testing.T) {
	d := &captured{}
	e := setup(t, d)

	rec := serve(e, postForm(juan, "203.0.113.5"))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "¡Solicitud Recibida!")
	assert.Contains(t, body, `data-revert-after="3000"`)
	assert.Contains(t, body, `value="Juan Pérez"`)

	got := d.all()
	require.Len(t, got, 1)
	assert.Equal(t, "Juan Pérez", got[0].Name)
	assert.Equal(t, leads.ChannelForm, got[0].Origin.Channel)
	assert.Equal(t, "203.0.113.5", got[0].Origin.RemoteIP)
}

func TestSubmitForm_ValidationError(t *testing.T) {
	d := &captured{}
	e := setup(t, d)

	values := url.Values{"email": {"juan@constructora.com"}, "company": {"ABC"}}
	rec := serve(e, postForm(values, "203.0.113.6"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, apperror.ErrRequiredField.Message)
	assert.Contains(t, body, `id="name-error"`)
	assert.NotContains(t, body, "¡Solicitud Recibida!")
	assert.Contains(t, body, `value="juan@constructora.com"`)
	assert.Empty(t, d.all())
}

func TestSubmitForm_DeliveryTimeout(t *testing.T) {
	e := setup(t, &captured{wait: true})

	rec := serve(e, postForm(juan, "203.0.113.7"))
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Contains(t, rec.Body.String(), apperror.ErrDeliveryTimeout.Message)
}

func TestContactRedirect(t *testing.T) {
	e := setup(t, &captured{})
	rec := serve(e, httptest.NewRequest(http.MethodGet, "/contacto", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/#contacto", rec.Header().Get(echo.HeaderLocation))
}

func TestSubmitAPI(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		d := &captured{}
		e := setup(t, d)

		rec := serve(e, postJSON(`{"name":"Juan Pérez","email":"juan@constructora.com","company":"Constructora ABC","phone":"+57 300 123 4567"}`, "198.51.100.1"))
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp leadResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Submitted)
		assert.Equal(t, int64(3000), resp.RevertAfterMs)

		got := d.all()
		require.Len(t, got, 1)
		assert.Equal(t, resp.ID, got[0].ID)
		assert.Equal(t, "+57 300 123 4567", got[0].Phone)
		assert.Equal(t, leads.ChannelAPI, got[0].Origin.Channel)
	})

	t.Run("unknown field", func(t *testing.T) {
		d := &captured{}
		e := setup(t, d)

		rec := serve(e, postJSON(`{"name":"Juan","website":"x"}`, "198.51.100.2"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"unknown_field"`)
		assert.Empty(t, d.all())
	})

	t.Run("invalid email lists fields", func(t *testing.T) {
		e := setup(t, &captured{})

		rec := serve(e, postJSON(`{"name":"Juan","email":"juan@","company":"ABC"}`, "198.51.100.3"))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var resp struct {
			Error struct {
				Code    string `json:"code"`
				Details struct {
					Fields map[string]string `json:"fields"`
				} `json:"details"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "invalid_email", resp.Error.Code)
		assert.Equal(t, map[string]string{"email": "invalid"}, resp.Error.Details.Fields)
	})

	t.Run("malformed body", func(t *testing.T) {
		e := setup(t, &captured{})
		rec := serve(e, postJSON(`[1,2`, "198.51.100.4"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"bad_request"`)
	})

	t.Run("rejected delivery", func(t *testing.T) {
		e := setup(t, &captured{err: &leads.RejectedError{Collaborator: "webhook", StatusCode: 500, Reason: "down"}})
		rec := serve(e, postJSON(`{"name":"Juan","email":"juan@bildo.ai","company":"ABC"}`, "198.51.100.5"))
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"delivery_rejected"`)
	})

	t.Run("rate limited per ip", func(t *testing.T) {
		d := &captured{}
		e := setup(t, d)
		body := `{"name":"Juan","email":"juan@bildo.ai","company":"ABC"}`

		for i := 0; i < 2; i++ {
			require.Equal(t, http.StatusCreated, serve(e, postJSON(body, "198.51.100.6")).Code)
		}
		rec := serve(e, postJSON(body, "198.51.100.6"))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"rate_limited"`)
		assert.Len(t, d.all(), 2)

		assert.Equal(t, http.StatusCreated, serve(e, postJSON(body, "198.51.100.7")).Code)
	})
}

func TestStaticAssetsMounted(t *testing.T) {
	e := setup(t, &captured{})
	rec := serve(e, httptest.NewRequest(http.MethodGet, "/static/js/leadform.js", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "lead-success")
}
