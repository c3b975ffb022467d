package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"leibfried_clan_go/config"
	"leibfried_clan_go/services"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readExported(t *testing.T, path string) *goquery.Document {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	dom, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)
	return dom
}

// resolveHref maps a site link to the file a static host serves for it
func resolveHref(outDir, href string) string {
	href = strings.SplitN(href, "?", 2)[0]
	target := filepath.Join(outDir, filepath.FromSlash(strings.TrimPrefix(href, "/")))
	if strings.HasSuffix(href, "/") {
		target = filepath.Join(target, "index.html")
	}
	return target
}

func TestExportSite(t *testing.T) {
	outDir := t.TempDir()
	cfg := &config.Config{
		AppURL:         "https://recipes.example.org",
		LandingVariant: "branded",
	}

	files, err := exportSite(cfg, outDir)
	require.NoError(t, err)

	assert.Contains(t, files, filepath.Join(outDir, "index.html"))
	assert.Contains(t, files, filepath.Join(outDir, "submit-recipe", "index.html"))
	assert.Contains(t, files, filepath.Join(outDir, "404.html"))
	assert.Contains(t, files, filepath.Join(outDir, "static", "css", "site.css"))

	t.Run("Index", func(t *testing.T) {
		dom := readExported(t, filepath.Join(outDir, "index.html"))
		assert.Equal(t, 0, dom.Find("[data-dialog]").Length())
		assert.Equal(t, "unlocked", dom.Find("body").AttrOr("data-scroll-lock", ""))
		assert.Equal(t, "https://recipes.example.org/", dom.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	})

	t.Run("CallToActionOpensDialog", func(t *testing.T) {
		index := readExported(t, filepath.Join(outDir, "index.html"))
		href, ok := index.Find("a[data-cta]").Attr("href")
		require.True(t, ok)

		target := resolveHref(outDir, href)
		require.FileExists(t, target)

		dom := readExported(t, target)
		require.Equal(t, 1, dom.Find("[data-dialog]").Length())
		assert.Equal(t, services.RecipeFormURL, dom.Find("[data-dialog] iframe").AttrOr("src", ""))
		assert.Equal(t, "locked", dom.Find("body").AttrOr("data-scroll-lock", ""))

		// Closing leads back to the exported landing page
		closeTarget := resolveHref(outDir, dom.Find("[data-dialog-close]").AttrOr("href", ""))
		assert.Equal(t, filepath.Join(outDir, "index.html"), closeTarget)
		backdropTarget := resolveHref(outDir, dom.Find("[data-dialog-backdrop]").AttrOr("href", ""))
		assert.Equal(t, filepath.Join(outDir, "index.html"), backdropTarget)
	})

	t.Run("NotFound", func(t *testing.T) {
		dom := readExported(t, filepath.Join(outDir, "404.html"))
		assert.Equal(t, "/", dom.Find("a.not-found__home").AttrOr("href", ""))
	})
}

func TestExportSiteWithoutPublicURL(t *testing.T) {
	for _, appURL := range []string{"", config.DefaultAppURL} {
		outDir := t.TempDir()
		_, err := exportSite(&config.Config{AppURL: appURL, LandingVariant: "branded"}, outDir)
		require.NoError(t, err)

		for _, page := range []string{"index.html", filepath.Join("submit-recipe", "index.html")} {
			dom := readExported(t, filepath.Join(outDir, page))
			assert.Equal(t, 0, dom.Find(`link[rel="canonical"]`).Length(), "%q %s", appURL, page)
		}
	}
}

func TestPagePath(t *testing.T) {
	assert.Equal(t, "submit-recipe/index.html", pagePath("/submit-recipe/"))
	assert.Equal(t, "index.html", pagePath("/"))
}

func TestExportSiteUnknownVariant(t *testing.T) {
	_, err := exportSite(&config.Config{LandingVariant: "holiday"}, t.TempDir())
	assert.ErrorIs(t, err, services.ErrUnknownVariant)
}
