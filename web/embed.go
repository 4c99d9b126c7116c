package web

import (
	"embed"
	"io/fs"
)

// Root holds the top-level assets served from fixed routes.
//
//go:embed style.css htmx.min.js
var Root embed.FS

// Templates holds the HTML page templates.
//
//go:embed templates/*.html
var Templates embed.FS

//go:embed static
var static embed.FS

// Static returns the static directory with the "static/" prefix stripped,
// so keys match the remainder of the /static/* route.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// fs.Sub only fails on an invalid path, "static" is always valid.
		panic(err)
	}
	return sub
}
