package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestContentSecurityPolicy(t *testing.T) {
	csp := ContentSecurityPolicy("https://docs.google.com")
	assert.Contains(t, csp, "frame-src https://docs.google.com")
	assert.Contains(t, csp, "script-src 'none'")
	assert.Contains(t, csp, "font-src 'self' https://fonts.gstatic.com")
}

func TestCSP(t *testing.T) {
	e := echo.New()

	t.Run("SetsHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := CSP("https://docs.google.com")(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		err := handler(c)
		assert.NoError(t, err)

		csp := rec.Header().Get("Content-Security-Policy")
		assert.Equal(t, ContentSecurityPolicy("https://docs.google.com"), csp)
	})

	t.Run("SetsHeaderOnErrors", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := CSP("https://docs.google.com")(func(c echo.Context) error {
			return echo.ErrNotFound
		})

		err := handler(c)
		assert.ErrorIs(t, err, echo.ErrNotFound)
		assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))
	})
}
