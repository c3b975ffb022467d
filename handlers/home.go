package handlers

import (
	"net/http"

	"leibfried_clan_go/config"
	"leibfried_clan_go/middleware"
	"leibfried_clan_go/models"
	"leibfried_clan_go/services"
	"leibfried_clan_go/templates/pages"

	"github.com/labstack/echo/v4"
)

// LandingHandler renders the landing page. A request carrying
// ?dialog=submit-recipe renders the page with the recipe submission dialog
// open, same as SubmitRecipeHandler.
func LandingHandler(content models.LandingContent, metrics *middleware.Metrics) echo.HandlerFunc {
	return func(c echo.Context) error {
		openDialog := c.QueryParam(pages.DialogQueryParam) == pages.SubmitRecipeQuery
		return renderLanding(c, content, metrics, openDialog)
	}
}

// SubmitRecipeHandler renders the landing page with the recipe submission
// dialog open. It serves the call-to-action target path.
func SubmitRecipeHandler(content models.LandingContent, metrics *middleware.Metrics) echo.HandlerFunc {
	return func(c echo.Context) error {
		return renderLanding(c, content, metrics, true)
	}
}

func renderLanding(c echo.Context, content models.LandingContent, metrics *middleware.Metrics, openDialog bool) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	if c.Request().Method == http.MethodHead {
		return c.NoContent(http.StatusOK)
	}

	ctx := c.Request().Context()

	doc := services.NewDocument()
	view := services.NewLandingView(doc, content)
	// Unmount after rendering so the scroll-lock never outlives the page view
	defer view.Unmount()

	if openDialog {
		if err := view.Dispatch(services.EventSubmitRecipe); err != nil {
			return err
		}
		metrics.RecordDialogOpen()
	}
	metrics.RecordPageView("landing")

	seo := GetSEO("landing", appURL(c))
	component := pages.Landing(seo, doc, view)
	return component.Render(ctx, c.Response().Writer)
}

// appURL returns the configured public base URL, empty when no config is set
func appURL(c echo.Context) string {
	if cfg, ok := c.Get("config").(*config.Config); ok && cfg != nil {
		return cfg.AppURL
	}
	return ""
}
