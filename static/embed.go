// Package static holds the stylesheet and other assets served under /static.
package static

import "embed"

//go:embed css/*.css
var FS embed.FS

// StylesheetPath is the stylesheet location inside FS
const StylesheetPath = "css/site.css"
