package partials

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// classes joins the non-empty class names
func classes(names ...string) string {
	kept := names[:0:0]
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			kept = append(kept, name)
		}
	}
	return strings.Join(kept, " ")
}

// Swoosh renders the curved stroke under the brand name
func Swoosh() g.Node {
	return h.SVG(
		h.Class("brand__swoosh"),
		g.Attr("viewBox", "0 0 400 50"),
		g.Attr("fill", "none"),
		g.Attr("preserveAspectRatio", "none"),
		g.Attr("aria-hidden", "true"),
		g.El("path",
			g.Attr("d", "M0 25 Q200 5, 400 25"),
			g.Attr("stroke", "white"),
			g.Attr("stroke-width", "4"),
			g.Attr("stroke-linecap", "round"),
			g.Attr("fill", "none"),
		),
	)
}

// CloseIcon renders the X glyph used by close controls
func CloseIcon(extraClass string) g.Node {
	return h.SVG(
		h.Class(classes("icon", extraClass)),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("aria-hidden", "true"),
		g.El("path",
			g.Attr("stroke-linecap", "round"),
			g.Attr("stroke-linejoin", "round"),
			g.Attr("stroke-width", "2"),
			g.Attr("d", "M6 18L18 6M6 6l12 12"),
		),
	)
}
