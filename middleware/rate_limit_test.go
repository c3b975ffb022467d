package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestNewRateLimiter(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Requests: 10,
		Window:   time.Minute,
	})
	defer rl.Stop()

	assert.NotNil(t, rl)
	assert.Equal(t, 10, rl.config.Requests)
	assert.Equal(t, time.Minute, rl.config.Window)
	assert.Equal(t, time.Minute, rl.config.CleanupInterval)
	assert.NotNil(t, rl.config.KeyFunc)
	assert.Equal(t, "Too many requests. Please try again later.", rl.config.Message)
}

func TestRateLimiterMiddleware(t *testing.T) {
	e := echo.New()

	serve := func(handler echo.HandlerFunc, path string) (*httptest.ResponseRecorder, error) {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		return rec, handler(c)
	}

	t.Run("WithinLimit", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{
			Requests: 2,
			Window:   time.Second,
		})
		defer rl.Stop()

		handler := rl.Middleware()(func(c echo.Context) error {
			return c.String(http.StatusOK, "success")
		})

		for i := 0; i < 2; i++ {
			rec, err := serve(handler, "/")
			assert.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("ExceededLimit", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{
			Requests: 1,
			Window:   30 * time.Second,
		})
		defer rl.Stop()

		handler := rl.Middleware()(func(c echo.Context) error {
			return c.String(http.StatusOK, "success")
		})

		_, err := serve(handler, "/")
		assert.NoError(t, err)

		rec, err := serve(handler, "/")
		require.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusTooManyRequests, he.Code)
		assert.Equal(t, "30", rec.Header().Get("Retry-After"))
	})

	t.Run("SkipperBypassesLimit", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{
			Requests: 1,
			Window:   time.Minute,
			Skipper: func(c echo.Context) bool {
				return strings.HasPrefix(c.Request().URL.Path, "/static/")
			},
		})
		defer rl.Stop()

		handler := rl.Middleware()(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		for i := 0; i < 3; i++ {
			_, err := serve(handler, "/static/css/site.css")
			assert.NoError(t, err)
		}
	})
}

func TestRateLimiterWindowReset(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Requests: 1,
		Window:   time.Minute,
	})
	defer rl.Stop()

	now := time.Now()
	allowed, _ := rl.allow("10.0.0.1", now)
	assert.True(t, allowed)

	allowed, retryAfter := rl.allow("10.0.0.1", now.Add(20*time.Second))
	assert.False(t, allowed)
	assert.Equal(t, 40*time.Second, retryAfter, "retry after is the time left in the window")

	allowed, _ = rl.allow("10.0.0.2", now)
	assert.True(t, allowed, "keys are limited independently")

	allowed, _ = rl.allow("10.0.0.1", now.Add(2*time.Minute))
	assert.True(t, allowed, "expired window resets")
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, "40", retryAfterSeconds(40*time.Second))
	assert.Equal(t, "3", retryAfterSeconds(2100*time.Millisecond))
	assert.Equal(t, "1", retryAfterSeconds(0))
}

func TestRateLimiterEvictExpired(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Requests: 5,
		Window:   time.Second,
	})
	defer rl.Stop()

	now := time.Now()
	rl.allow("a", now)
	rl.allow("b", now)
	assert.Equal(t, 2, rl.size())

	rl.evictExpired(now.Add(2 * time.Second))
	assert.Equal(t, 0, rl.size())
}

func TestRateLimiterStopDoesNotLeak(t *testing.T) {
	defer goleak.VerifyNone(t)

	rl := NewRateLimiter(RateLimitConfig{
		Requests:        1,
		Window:          time.Second,
		CleanupInterval: 10 * time.Millisecond,
	})
	rl.Stop()
	// Stop is idempotent
	rl.Stop()
}
