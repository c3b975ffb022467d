package handlers

import (
	"errors"
	"net/http"

	"leibfried_clan_go/middleware"
	"leibfried_clan_go/templates/pages"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler renders the not-found page for unmatched routes and
// defers every other error to echo's default handler
func HTTPErrorHandler(metrics *middleware.Metrics) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code == http.StatusNotFound {
			if renderErr := NotFoundHandler(metrics)(c); renderErr != nil {
				c.Logger().Errorf("Failed to render not-found page: %v", renderErr)
			}
			return
		}

		c.Echo().DefaultHTTPErrorHandler(err, c)
	}
}

// NotFoundHandler answers with the static not-found page and a 404 status
func NotFoundHandler(metrics *middleware.Metrics) echo.HandlerFunc {
	return func(c echo.Context) error {
		metrics.RecordPageView("not_found")

		seo := GetSEO("not_found", appURL(c))
		component := pages.NotFound(seo)
		if c.Request().Method == http.MethodHead {
			return c.NoContent(http.StatusNotFound)
		}
		templ.Handler(component, templ.WithStatus(http.StatusNotFound)).ServeHTTP(c.Response(), c.Request())
		return nil
	}
}
