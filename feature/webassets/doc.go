// Package webassets serves the embedded stylesheet, script and static files.
//
// # HTTP Endpoints
//
//   - GET /style.css   : the stylesheet, text/css
//   - GET /htmx.min.js : the htmx script, text/javascript; charset=utf-8
//   - GET /static/*    : any file of the static bundle, 404 when absent
//
// The static route uses the remainder of the path after /static/ as the Asset
// Store key, unmodified. The content type is the one inferred when the store was
// built.
package webassets
