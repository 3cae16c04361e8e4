// Package web provides the embedded templates and static assets of the site.
package web

import "embed"

// Files holds templates/ and static/.
//
//go:embed templates static
var Files embed.FS
