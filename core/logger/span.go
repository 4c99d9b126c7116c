package logger

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LocalsSpan is the Fiber locals key holding the request's span.
const LocalsSpan = "span"

// Span is a timed, structured scope around a unit of work.
//
// Opening a span logs at debug level. End logs one entry carrying every field
// set during the span plus its duration: at info level, or at error level
// when an error was recorded.
type Span struct {
	logger *zap.Logger
	name   string
	start  time.Time
	fields []zap.Field
	err    error
	ended  bool
}

// StartSpan opens a span named name. fields are attached to every entry the
// span logs, including those written through Span.Logger.
func StartSpan(l *zap.Logger, name string, fields ...zap.Field) *Span {
	s := &Span{
		logger: l.With(fields...),
		name:   name,
		start:  time.Now(),
	}
	s.logger.Debug(name + " started")
	return s
}

// Tag attaches fields to the span scope: every entry logged after the call,
// including the closing one, carries them.
func (s *Span) Tag(fields ...zap.Field) {
	s.logger = s.logger.With(fields...)
}

// SetField adds fields reported when the span ends.
func (s *Span) SetField(fields ...zap.Field) {
	s.fields = append(s.fields, fields...)
}

// RecordError marks the span as failed.
func (s *Span) RecordError(err error) {
	s.err = err
}

// Logger returns the span-scoped logger.
func (s *Span) Logger() *zap.Logger {
	return s.logger
}

// End closes the span. Only the first call logs.
func (s *Span) End() {
	if s.ended {
		return
	}
	s.ended = true

	fields := append(s.fields, zap.Duration("duration", time.Since(s.start)))
	if s.err != nil {
		s.logger.Error(s.name, append(fields, zap.Error(s.err))...)
		return
	}
	s.logger.Info(s.name, fields...)
}

// WithSpan stores s in the request locals.
func WithSpan(c *fiber.Ctx, s *Span) {
	c.Locals(LocalsSpan, s)
}

// SpanFromContext returns the request's span, or nil when none was opened.
func SpanFromContext(c *fiber.Ctx) *Span {
	s, _ := c.Locals(LocalsSpan).(*Span)
	return s
}
