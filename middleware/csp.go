package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// ContentSecurityPolicy builds the policy for the site. The page ships no
// scripts; frames are limited to the hosted recipe form.
func ContentSecurityPolicy(frameOrigin string) string {
	return fmt.Sprintf("default-src 'self'; script-src 'none'; style-src 'self' https://fonts.googleapis.com; img-src 'self' data:; font-src 'self' https://fonts.gstatic.com; frame-src %s; frame-ancestors 'none'; base-uri 'self'; form-action 'self'", frameOrigin)
}

// CSP middleware sets the Content-Security-Policy header on every response
func CSP(frameOrigin string) echo.MiddlewareFunc {
	policy := ContentSecurityPolicy(frameOrigin)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("Content-Security-Policy", policy)
			return next(c)
		}
	}
}
