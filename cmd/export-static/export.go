package main

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"leibfried_clan_go/config"
	"leibfried_clan_go/handlers"
	"leibfried_clan_go/middleware"
	"leibfried_clan_go/models"
	"leibfried_clan_go/services"
	"leibfried_clan_go/static"
	"leibfried_clan_go/templates/pages"

	"github.com/a-h/templ"
)

// exportSite renders the landing page, its open-dialog twin, the not-found
// page and the embedded assets into outDir and returns the written paths.
// The call-to-action path resolves to submit-recipe/index.html, so a static
// host serves the open dialog without the server.
func exportSite(cfg *config.Config, outDir string) ([]string, error) {
	content, err := services.LoadLandingContent(models.LandingVariant(cfg.LandingVariant), cfg.ContentFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load landing content: %w", err)
	}

	middleware.InitAssetVersions()
	ctx := context.Background()
	baseURL := publicURL(cfg)

	closedDoc := services.NewDocument()
	closedView := services.NewLandingView(closedDoc, content)
	defer closedView.Unmount()

	openDoc := services.NewDocument()
	openView := services.NewLandingView(openDoc, content)
	defer openView.Unmount()
	openView.SubmitRecipe()

	rendered := []struct {
		name      string
		component templ.Component
	}{
		{"index.html", pages.Landing(exportSEO("landing", baseURL), closedDoc, closedView)},
		{pagePath(pages.SubmitRecipePath), pages.Landing(exportSEO("landing", baseURL), openDoc, openView)},
		{"404.html", pages.NotFound(exportSEO("not_found", baseURL))},
	}

	var written []string
	for _, r := range rendered {
		var buf bytes.Buffer
		if err := r.component.Render(ctx, &buf); err != nil {
			return written, fmt.Errorf("failed to render %s: %w", r.name, err)
		}
		dst := filepath.Join(outDir, filepath.FromSlash(r.name))
		if err := writeFile(dst, buf.Bytes()); err != nil {
			return written, err
		}
		written = append(written, dst)
	}

	assets, err := copyAssets(filepath.Join(outDir, "static"))
	written = append(written, assets...)
	return written, err
}

// publicURL returns the base URL for canonical links, empty when APP_URL
// still points at the development server
func publicURL(cfg *config.Config) string {
	if cfg.AppURL == "" || cfg.AppURL == config.DefaultAppURL {
		log.Printf("[WARNING] APP_URL is not a public URL (%q), canonical links are omitted", cfg.AppURL)
		return ""
	}
	return cfg.AppURL
}

func exportSEO(page, baseURL string) *models.SEO {
	seo := handlers.GetSEO(page, baseURL)
	if baseURL == "" {
		seo.Canonical = ""
	}
	return seo
}

// pagePath maps a site path such as /submit-recipe/ to its index file
func pagePath(sitePath string) string {
	return strings.TrimPrefix(path.Join(sitePath, "index.html"), "/")
}

// copyAssets writes the embedded static files below dir
func copyAssets(dir string) ([]string, error) {
	var written []string
	err := fs.WalkDir(static.FS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(static.FS, path)
		if err != nil {
			return fmt.Errorf("failed to read asset %s: %w", path, err)
		}
		dst := filepath.Join(dir, filepath.FromSlash(path))
		if err := writeFile(dst, data); err != nil {
			return err
		}
		written = append(written, dst)
		return nil
	})
	return written, err
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
