// Package static embeds the API documentation assets served on /docs,
// /openapi.json and /static.
package static

import "embed"

//go:embed openapi.json openapi.html
var FS embed.FS

const (
	OpenAPIDocument = "openapi.json"
	OpenAPIUI       = "openapi.html"
)
