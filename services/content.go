package services

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"leibfried_clan_go/models"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"
)

// ErrUnknownVariant is returned for a landing variant that has no content
var ErrUnknownVariant = errors.New("unknown landing variant")

// introPolicy allows the inline formatting used in the welcome paragraph
var introPolicy = newIntroPolicy()

func newIntroPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("em", "strong", "br")
	p.AllowStandardURLs()
	p.AllowAttrs("href").OnElements("a")
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// DefaultLandingContent returns the built-in copy for a variant
func DefaultLandingContent(variant models.LandingVariant) (models.LandingContent, error) {
	switch variant {
	case models.LandingVariantBranded:
		return models.LandingContent{
			Variant:   variant,
			Brand:     "Leibfried",
			BrandMark: "CLAN",
			Tagline:   "Our Family Recipe Collection",
			IntroHTML: "Welcome to our family kitchen! Share your favorite recipes, discover " +
				"treasured family traditions, and keep our culinary heritage alive for " +
				"generations to come.",
			CTALabel: "Submit a Recipe",
			Features: []models.FeatureCard{
				{Icon: "👨‍👩‍👧‍👦", Title: "Family Recipes", Description: "Recipes passed down through generations"},
				{Icon: "🍳", Title: "Share & Discover", Description: "Add your favorites and explore new dishes"},
				{Icon: "❤️", Title: "Family Traditions", Description: "Keep our culinary heritage alive"},
			},
		}, nil
	case models.LandingVariantComingSoon:
		return models.LandingContent{
			Variant:   variant,
			Brand:     "Leibfried",
			BrandMark: "CLAN",
			Tagline:   "Coming Soon",
			IntroHTML: "Our family recipe collection is on its way. In the meantime, send us your favorites!",
			CTALabel:  "Submit a Recipe",
		}, nil
	default:
		return models.LandingContent{}, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
}

// LoadLandingContent returns the copy for variant, overridden by the YAML
// file at path when path is not empty. Empty fields in the file keep their
// defaults.
func LoadLandingContent(variant models.LandingVariant, path string) (models.LandingContent, error) {
	content, err := DefaultLandingContent(variant)
	if err != nil {
		return models.LandingContent{}, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return models.LandingContent{}, fmt.Errorf("failed to read content file: %w", err)
		}
		var override models.LandingContent
		if err := yaml.Unmarshal(data, &override); err != nil {
			return models.LandingContent{}, fmt.Errorf("failed to parse content file %s: %w", path, err)
		}
		mergeLandingContent(&content, override)
	}

	content.IntroHTML = SanitizeIntro(content.IntroHTML)
	return content, nil
}

// SanitizeIntro strips any markup the welcome paragraph is not allowed to carry
func SanitizeIntro(raw string) string {
	return strings.TrimSpace(introPolicy.Sanitize(raw))
}

func mergeLandingContent(dst *models.LandingContent, src models.LandingContent) {
	if src.Brand != "" {
		dst.Brand = src.Brand
	}
	if src.BrandMark != "" {
		dst.BrandMark = src.BrandMark
	}
	if src.Tagline != "" {
		dst.Tagline = src.Tagline
	}
	if src.IntroHTML != "" {
		dst.IntroHTML = src.IntroHTML
	}
	if src.CTALabel != "" {
		dst.CTALabel = src.CTALabel
	}
	if len(src.Features) > 0 {
		dst.Features = src.Features
	}
}
