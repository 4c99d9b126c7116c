// Package router holds the fixed Route Table of the application.
//
// Features record their routes on a Table during startup. Mount then registers
// every route on a Fiber router, in order, followed by a catch-all that
// answers 404 for anything left unmatched (including other methods on known
// paths).
//
// # Matched Route Metadata
//
// Each mounted handler stores its route pattern in the request locals before
// the responder runs. Middleware reads it back with MatchedRoute after calling
// c.Next(), which keeps log and span labels bounded to the set of patterns
// instead of raw request paths.
//
// # Matching
//
// Matching itself is Fiber's. Apps built with server.NewApp are case-sensitive
// and use strict routing, so "/style.css/" and "/Style.css" do not match
// "/style.css".
package router
