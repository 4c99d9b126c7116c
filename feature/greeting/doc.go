// Package greeting implements the greeting page.
//
// # HTTP Endpoints
//
//   - GET / : renders templates/hello.html for the `name` query parameter.
//
// A missing or empty `name` greets DefaultName. With repeated parameters the
// last value wins. Names are HTML-escaped by html/template.
//
// Templates are parsed once by NewRenderer; a malformed template fails startup.
package greeting
