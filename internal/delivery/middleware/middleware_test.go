package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"matchdeportivo/config"
	deliverycontext "matchdeportivo/internal/delivery/context"
	domainerrors "matchdeportivo/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		keepsSent bool
	}{
		{name: "client id kept", header: "req-123", keepsSent: true},
		{name: "missing id generated", header: ""},
		{name: "id with spaces replaced", header: "bad id"},
		{name: "oversized id replaced", header: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenInContext string
			mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
			err := mw.Process(func(c echo.Context) error {
				seenInContext = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})(c)
			require.NoError(t, err)

			sent := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, sent)
			assert.Equal(t, sent, seenInContext)
			if tt.keepsSent {
				assert.Equal(t, tt.header, sent)
			} else {
				assert.NotEqual(t, tt.header, sent)
			}
		})
	}
}

func TestLoggerMiddleware_OnlyServerErrorsWithoutDebug(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		err     error
		wantLog bool
	}{
		{name: "debug logs success", debug: true, wantLog: true},
		{name: "success silent", debug: false},
		{name: "client error silent", debug: false, err: domainerrors.ErrActivityFull},
		{name: "echo client error silent", debug: false, err: echo.NewHTTPError(http.StatusNotFound)},
		{name: "server error logged", debug: false, err: domainerrors.ErrInternalError, wantLog: true},
		{name: "plain error logged", debug: false, err: errors.New("boom"), wantLog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			mw := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/activities", nil), httptest.NewRecorder())

			_ = mw.Handle(func(c echo.Context) error {
				if tt.err == nil {
					return c.NoContent(http.StatusOK)
				}

				return tt.err
			})(c)

			assert.Equal(t, tt.wantLog, strings.Contains(buf.String(), "HTTP Request"))
		})
	}
}

func TestResponseStatus(t *testing.T) {
	assert.Equal(t, http.StatusCreated, responseStatus(nil, http.StatusCreated))
	assert.Equal(t, http.StatusConflict, responseStatus(errors.Wrap(domainerrors.ErrActivityFull, "join"), http.StatusOK))
	assert.Equal(t, http.StatusRequestEntityTooLarge, responseStatus(echo.ErrStatusRequestEntityTooLarge, http.StatusOK))
	assert.Equal(t, http.StatusInternalServerError, responseStatus(errors.New("boom"), http.StatusOK))
}
