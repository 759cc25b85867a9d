// Package static embeds the API documentation assets served under /docs
// and /static.
package static

import "embed"

// FS holds openapi.html (the docs UI) and openapi.json (the API document).
//
//go:embed openapi.html openapi.json
var FS embed.FS
