package components

import (
	"leibfried_clan_go/services"
	"leibfried_clan_go/templates/partials"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// SubmissionDialog renders the recipe submission overlay. A hidden dialog
// renders nothing.
//
// The backdrop and the panel are siblings: activating the panel never
// reaches the backdrop, while activating the backdrop follows closeHref.
func SubmissionDialog(dialog *services.SubmissionDialog, closeHref string) g.Node {
	if dialog == nil || !dialog.Visible() {
		return nil
	}

	return h.Div(
		h.Class("dialog"),
		h.ID("recipe-dialog"),
		h.Role("dialog"),
		h.Aria("modal", "true"),
		h.Aria("labelledby", "recipe-dialog-title"),
		h.Data("dialog", "submission"),

		h.A(
			h.Class("dialog__backdrop"),
			h.Href(closeHref),
			h.Data("dialog-backdrop", ""),
			h.Aria("label", "Close dialog"),
			h.TabIndex("-1"),
		),

		h.Div(
			h.Class("dialog__panel"),
			h.Data("dialog-panel", ""),

			h.Div(
				h.Class("dialog__header"),
				h.H2(
					h.Class("dialog__title"),
					h.ID("recipe-dialog-title"),
					g.Text(dialog.Title()),
				),
				h.A(
					h.Class("dialog__close"),
					h.Href(closeHref),
					h.Data("dialog-close", ""),
					h.Aria("label", "Close modal"),
					partials.CloseIcon("dialog__icon"),
				),
			),

			h.Div(
				h.Class("dialog__body"),
				h.IFrame(
					h.Class("dialog__frame"),
					h.Src(dialog.FormURL()),
					h.Title("Recipe Submission Form"),
					g.Attr("allow", "fullscreen"),
					g.Attr("loading", "lazy"),
				),
			),
		),
	)
}
