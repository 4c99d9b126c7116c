// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - Trace: Opens a structured span per request, tagged with the method and the
//     matched route pattern, and closes it once the response is produced.
//
// Both are registered globally, RayID first, before the route table is mounted.
package middleware
