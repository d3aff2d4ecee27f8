package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"rubbishday/config"
	deliverycontext "rubbishday/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.POST("/skill", func(c echo.Context) error {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside handler")

		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
	})

	return e
}

func TestRequestIDMiddleware_PropagatesInboundID(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false)

	req := httptest.NewRequest(http.MethodPost, "/skill", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-42", rec.Body.String())
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	assert.NotContains(t, buf.String(), "HTTP Request")
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/skill", nil))

	id := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, rec.Body.String())
}

func TestLoggerMiddleware_DebugLogsSkillButNotHealth(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, true)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotContains(t, buf.String(), "HTTP Request")

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/skill", nil))
	assert.Contains(t, buf.String(), `"msg":"HTTP Request"`)
	assert.Contains(t, buf.String(), `"uri":"/skill"`)
}
