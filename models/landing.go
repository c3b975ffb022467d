package models

// LandingVariant selects which hero the landing page renders
type LandingVariant string

const (
	LandingVariantBranded    LandingVariant = "branded"
	LandingVariantComingSoon LandingVariant = "coming-soon"
)

// FeatureCard is one of the decorative cards below the call-to-action
type FeatureCard struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// LandingContent is the copy rendered by the landing page
type LandingContent struct {
	Variant   LandingVariant `yaml:"-"`
	Brand     string         `yaml:"brand"`      // Script headline (e.g. family name)
	BrandMark string         `yaml:"brand_mark"` // Block lettering under the swoosh
	Tagline   string         `yaml:"tagline"`
	// IntroHTML may contain limited inline markup; it is sanitized before use
	IntroHTML string        `yaml:"intro_html"`
	CTALabel  string        `yaml:"cta_label"`
	Features  []FeatureCard `yaml:"features"`
}

// ShowFeatures reports whether the feature card grid is rendered
func (c LandingContent) ShowFeatures() bool {
	return c.Variant != LandingVariantComingSoon && len(c.Features) > 0
}
