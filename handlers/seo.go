package handlers

import (
	"strings"

	"leibfried_clan_go/models"
)

// SEO configurations for public pages, keyed by page name
var pageSEO = map[string]*models.SEO{
	"landing": {
		Title:       "Leibfried Clan - Family Recipe Collection",
		Description: "Welcome to the Leibfried Clan family recipe collection. Share and discover our favorite family recipes.",
		Canonical:   "/",
		OGType:      "website",
		TwitterCard: "summary",
		Locale:      "en",
	},
	"not_found": {
		Title:       "Page Not Found | Leibfried Clan",
		Description: "The page you're looking for doesn't exist.",
		OGType:      "website",
		TwitterCard: "summary",
		NoIndex:     true,
		Locale:      "en",
	},
}

// GetSEO returns the SEO configuration for a page with the canonical URL
// resolved against baseURL
func GetSEO(page, baseURL string) *models.SEO {
	seo, ok := pageSEO[page]
	if !ok {
		return nil
	}
	// Return a copy to avoid mutations
	copy := *seo
	if copy.Canonical != "" && baseURL != "" {
		copy.Canonical = strings.TrimRight(baseURL, "/") + copy.Canonical
	}
	return &copy
}
