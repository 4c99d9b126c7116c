// Package web bundles the browser-facing files into the binary.
//
// # Layout
//
//   - style.css, htmx.min.js: served from their own fixed routes.
//   - templates/: html/template sources for the pages.
//   - static/: everything under /static/*, keyed by the path below static/.
//
// Nothing here is read from disk at runtime. Changing a file requires a rebuild.
package web
