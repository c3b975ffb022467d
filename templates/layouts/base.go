package layouts

import (
	"context"

	"leibfried_clan_go/middleware"
	"leibfried_clan_go/models"
	"leibfried_clan_go/services"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Base renders the document shell around the page body. The <body> element
// reflects the scroll-lock state of doc.
func Base(ctx context.Context, seo *models.SEO, doc *services.Document, children ...g.Node) g.Node {
	if seo == nil {
		seo = models.DefaultSEO("Leibfried Clan", "")
	}
	if doc == nil {
		doc = services.NewDocument()
	}

	return h.Doctype(
		h.HTML(
			h.Lang(seo.GetLocale()),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(seo.Title)),
				g.If(seo.Description != "", h.Meta(h.Name("description"), h.Content(seo.Description))),
				g.If(seo.NoIndex, h.Meta(h.Name("robots"), h.Content("noindex"))),
				g.If(seo.Canonical != "", h.Link(h.Rel("canonical"), h.Href(seo.Canonical))),
				h.Meta(g.Attr("property", "og:title"), h.Content(seo.GetOGTitle())),
				g.If(seo.GetOGDesc() != "", h.Meta(g.Attr("property", "og:description"), h.Content(seo.GetOGDesc()))),
				h.Meta(g.Attr("property", "og:type"), h.Content(seo.OGType)),
				h.Meta(h.Name("twitter:card"), h.Content(seo.TwitterCard)),
				h.Link(h.Rel("preconnect"), h.Href("https://fonts.googleapis.com")),
				h.Link(h.Rel("stylesheet"), h.Href(middleware.StylesheetURL(ctx))),
			),
			h.Body(
				g.If(doc.ScrollLocked(), h.Class("scroll-locked")),
				h.Data("scroll-lock", scrollLockState(doc)),
				g.Group(children),
			),
		),
	)
}

func scrollLockState(doc *services.Document) string {
	if doc.ScrollLocked() {
		return "locked"
	}
	return "unlocked"
}
