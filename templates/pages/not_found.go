package pages

import (
	"context"

	"leibfried_clan_go/models"
	"leibfried_clan_go/templates"
	"leibfried_clan_go/templates/layouts"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// NotFound renders the fallback page for unmatched routes
func NotFound(seo *models.SEO) templ.Component {
	return templates.Lazy(func(ctx context.Context) g.Node {
		return layouts.Base(ctx, seo, nil,
			h.Div(
				h.Class("not-found"),
				h.Data("page", "not-found"),
				h.H1(h.Class("not-found__code"), g.Text("404")),
				h.P(h.Class("not-found__title"), g.Text("Page Not Found")),
				h.P(h.Class("not-found__text"), g.Text("The page you're looking for doesn't exist.")),
				h.A(h.Class("not-found__home"), h.Href(LandingPath), g.Text("Go Home")),
			),
		)
	})
}
