package pages

import (
	"context"

	"leibfried_clan_go/models"
	"leibfried_clan_go/services"
	"leibfried_clan_go/templates"
	"leibfried_clan_go/templates/components"
	"leibfried_clan_go/templates/layouts"
	"leibfried_clan_go/templates/partials"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Landing link targets. The call-to-action leads to a path of its own so a
// static host can serve the open dialog; closing returns to the bare page.
const (
	LandingPath      = "/"
	SubmitRecipePath = "/submit-recipe/"
	SubmitRecipeHref = SubmitRecipePath

	// The server also opens the dialog for /?dialog=submit-recipe
	DialogQueryParam  = "dialog"
	SubmitRecipeQuery = "submit-recipe"
)

// Landing renders the landing page for view mounted into doc
func Landing(seo *models.SEO, doc *services.Document, view *services.LandingView) templ.Component {
	return templates.Lazy(func(ctx context.Context) g.Node {
		return layouts.Base(ctx, seo, doc,
			hero(view.Content()),
			components.SubmissionDialog(view.Dialog(), LandingPath),
		)
	})
}

func hero(content models.LandingContent) g.Node {
	return h.Main(
		h.Class("hero"),
		h.Data("variant", string(content.Variant)),
		h.Div(
			h.Class("hero__inner"),

			h.Div(
				h.Class("brand"),
				h.H1(h.Class("brand__script"), g.Text(content.Brand)),
				partials.Swoosh(),
				h.H2(h.Class("brand__mark"), g.Text(content.BrandMark)),
			),

			h.Div(
				h.Class("intro"),
				h.P(h.Class("intro__tagline"), g.Text(content.Tagline)),
				g.If(content.IntroHTML != "",
					// IntroHTML is sanitized when content is loaded
					h.P(h.Class("intro__text"), g.Raw(content.IntroHTML)),
				),
			),

			h.Div(
				h.Class("hero__cta"),
				h.A(
					h.Class("cta"),
					h.Href(SubmitRecipeHref),
					h.Data("cta", "submit-recipe"),
					h.Aria("haspopup", "dialog"),
					h.Aria("controls", "recipe-dialog"),
					g.Text(content.CTALabel),
				),
			),

			g.If(content.ShowFeatures(), featureGrid(content.Features)),
		),
	)
}

func featureGrid(features []models.FeatureCard) g.Node {
	return h.Div(
		h.Class("features"),
		g.Map(features, func(f models.FeatureCard) g.Node {
			return h.Div(
				h.Class("feature"),
				h.Div(h.Class("feature__icon"), h.Aria("hidden", "true"), g.Text(f.Icon)),
				h.H3(h.Class("feature__title"), g.Text(f.Title)),
				h.P(h.Class("feature__text"), g.Text(f.Description)),
			)
		}),
	)
}
