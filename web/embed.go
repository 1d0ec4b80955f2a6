// Package web holds the embedded assets for the rendered dashboard.
package web

import "embed"

// TemplatesFS embeds the HTML templates for server-side rendering.
//go:embed templates/*.html
var TemplatesFS embed.FS
