// Package assets provides the in-memory Asset Store.
//
// A Store maps relative paths to their bytes and MIME type. It is built once
// at startup, usually from an embedded filesystem, and never mutated after.
//
// # Lookup Rules
//
// Keys are the exact file paths of the source tree ("favicon.svg",
// "img/logo.svg"). Lookups are case-sensitive and exact:
//   - no "." or ".." resolution
//   - no leading or trailing slash equivalence
//   - directories are not keys
//
// A miss is a normal outcome, not an error. HTTP callers answer it with 404.
//
// # MIME Types
//
// The MIME type is inferred from the file extension when the store is built,
// using Fiber's MIME table. Files without a known extension are served as
// application/octet-stream.
//
// # Usage
//
//	store, err := assets.New(web.Static())
//	if a, ok := store.Lookup("img/logo.svg"); ok {
//	    c.Set(fiber.HeaderContentType, a.MIME)
//	    return c.Send(a.Data)
//	}
package assets
