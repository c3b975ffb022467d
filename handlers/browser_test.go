package handlers

import (
	"context"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScrollLockInBrowser checks the computed body overflow in a real browser
// while the visitor opens and dismisses the dialog.
func TestScrollLockInBrowser(t *testing.T) {
	chromePath := os.Getenv("CHROME_PATH")
	if chromePath == "" {
		t.Skip("Skipping browser test: CHROME_PATH not set")
	}
	if _, err := os.Stat(chromePath); err != nil {
		t.Skipf("Skipping: Chrome not found at %s", chromePath)
	}

	srv := httptest.NewServer(setupTestServer(t, nil))
	defer srv.Close()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.ExecPath(chromePath),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	defer allocCancel()

	ctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()
	ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	const overflowJS = `getComputedStyle(document.body).overflow`
	var initial, opened, afterPanel, dismissed string
	var dialogAfterPanel bool

	err := chromedp.Run(ctx,
		chromedp.EmulateViewport(1280, 800),
		chromedp.Navigate(srv.URL+"/"),
		chromedp.WaitVisible(`a[data-cta]`, chromedp.ByQuery),
		chromedp.Evaluate(overflowJS, &initial),

		chromedp.Click(`a[data-cta]`, chromedp.ByQuery),
		chromedp.WaitVisible(`[data-dialog-panel]`, chromedp.ByQuery),
		chromedp.Evaluate(overflowJS, &opened),

		// Activating the panel header must leave the dialog open
		chromedp.Click(`#recipe-dialog-title`, chromedp.ByQuery),
		chromedp.Sleep(200*time.Millisecond),
		chromedp.Evaluate(`document.querySelector('[data-dialog]') !== null`, &dialogAfterPanel),
		chromedp.Evaluate(overflowJS, &afterPanel),

		// The corner of the viewport is backdrop, outside the panel
		chromedp.MouseClickXY(4, 4),
		chromedp.WaitNotPresent(`[data-dialog]`, chromedp.ByQuery),
		chromedp.WaitVisible(`a[data-cta]`, chromedp.ByQuery),
		chromedp.Evaluate(overflowJS, &dismissed),
	)
	require.NoError(t, err)

	assert.Equal(t, "visible", initial)
	assert.Equal(t, "hidden", opened)
	assert.True(t, dialogAfterPanel)
	assert.Equal(t, "hidden", afterPanel)
	assert.Equal(t, "visible", dismissed)
}
