// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production)
// and integrates with the Fiber web framework.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID from a Fiber context and attaches it to the
// log entry, so all logs related to a specific request can be correlated.
//
// # Spans
//
// StartSpan opens a timed scope with structured fields. The request trace
// middleware opens one per request and closes it once the response is produced.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error (debug switches to the development preset)
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	span := logger.StartSpan(log, "http_request", zap.String("method", "GET"))
//	defer span.End()
package logger
