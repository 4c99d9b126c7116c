// Package server holds the HTTP server configuration and the Fiber app factory.
//
// # Configuration
//
// The Config struct defines the listening port. The port is kept as a string so
// that a bad value reaches ListenPort and fails startup with ErrInvalidPort
// instead of being silently coerced by the config decoder.
//
// # App
//
// NewApp builds the Fiber application with case-sensitive, strict routing.
// The caller registers middleware and mounts the route table.
package server
