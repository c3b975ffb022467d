package main

import (
	"fmt"
	"net/http"
	"strings"

	"leibfried_clan_go/config"
	"leibfried_clan_go/handlers"
	"leibfried_clan_go/middleware"
	"leibfried_clan_go/models"
	"leibfried_clan_go/services"
	"leibfried_clan_go/static"
	"leibfried_clan_go/templates/pages"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// newServer builds the echo instance with every route and middleware.
// The returned cleanup func releases background resources.
func newServer(cfg *config.Config) (*echo.Echo, func(), error) {
	content, err := services.LoadLandingContent(models.LandingVariant(cfg.LandingVariant), cfg.ContentFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load landing content: %w", err)
	}

	var metrics *middleware.Metrics
	if cfg.MetricsEnabled {
		metrics, err = middleware.NewMetrics()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}

	// Compute asset hashes for cache busting
	middleware.InitAssetVersions()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Debug = !cfg.IsProduction()
	e.HTTPErrorHandler = handlers.HTTPErrorHandler(metrics)

	// Middleware
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.SecureWithConfig(secureConfig(cfg)))
	e.Use(echomiddleware.Gzip())
	e.Use(middleware.CSP(services.RecipeFormOrigin))
	if metrics != nil {
		e.Use(metrics.Middleware())
	}

	limiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Requests: cfg.RateLimitRequests,
		Window:   cfg.RateLimitWindow,
		Skipper:  skipRateLimit,
	})
	e.Use(limiter.Middleware())

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static files
	e.StaticFS("/static", static.FS)

	// Public routes
	pageMethods := []string{http.MethodGet, http.MethodHead}
	e.Match(pageMethods, pages.LandingPath, handlers.LandingHandler(content, metrics))
	submitRecipe := handlers.SubmitRecipeHandler(content, metrics)
	e.Match(pageMethods, pages.SubmitRecipePath, submitRecipe)
	e.Match(pageMethods, strings.TrimSuffix(pages.SubmitRecipePath, "/"), submitRecipe)
	e.GET("/healthz", handlers.HealthHandler)
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	}

	return e, limiter.Stop, nil
}

// secureConfig enables HSTS in production only
func secureConfig(cfg *config.Config) echomiddleware.SecureConfig {
	secure := echomiddleware.DefaultSecureConfig
	if cfg.IsProduction() {
		secure.HSTSMaxAge = hstsMaxAge
	}
	return secure
}

const hstsMaxAge = 365 * 24 * 60 * 60

func skipRateLimit(c echo.Context) bool {
	path := c.Request().URL.Path
	return strings.HasPrefix(path, "/static/") || path == "/healthz" || path == "/metrics"
}
