package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type ctxKey struct{}

func TestLazyEscapesText(t *testing.T) {
	var b strings.Builder
	err := Lazy(func(context.Context) g.Node {
		return h.P(h.Class("note"), g.Text("<b>escaped</b>"))
	}).Render(context.Background(), &b)
	require.NoError(t, err)
	assert.Equal(t, `<p class="note">&lt;b&gt;escaped&lt;/b&gt;</p>`, b.String())
}

func TestLazyReceivesRenderContext(t *testing.T) {
	component := Lazy(func(ctx context.Context) g.Node {
		name, _ := ctx.Value(ctxKey{}).(string)
		return h.Span(g.Text(name))
	})

	var b strings.Builder
	ctx := context.WithValue(context.Background(), ctxKey{}, "Leibfried")
	require.NoError(t, component.Render(ctx, &b))
	assert.Equal(t, "<span>Leibfried</span>", b.String())
}
