// Package templates adapts gomponents markup to templ components so handlers
// can render every page through the same templ.Component contract.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Lazy wraps a gomponents node as a templ component. The node is built at
// render time so the builder sees the request context.
func Lazy(build func(ctx context.Context) g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return build(ctx).Render(w)
	})
}
