// Package diag provides the injectable warning sink used by the gesture
// normalization path.
//
// Warnings are rare (only misconfigured staggering gestures produce one) and
// callers in tests need them to be silent and observable, so the sink is an
// interface rather than a direct dependency on the log package.
package diag

import (
	"fmt"
	"log"
)

// Sink receives diagnostic warnings.
type Sink interface {
	// Warnf reports a non-fatal condition worth surfacing to the user.
	Warnf(format string, args ...any)
}

// NewLogSink returns a Sink that writes warnings to the given logger.
// A nil logger uses the standard logger.
func NewLogSink(l *log.Logger) Sink {
	if l == nil {
		l = log.Default()
	}
	return &logSink{l: l}
}

type logSink struct {
	l *log.Logger
}

func (s *logSink) Warnf(format string, args ...any) {
	s.l.Printf("warning: "+format, args...)
}

// Nop returns a Sink that discards all warnings.
func Nop() Sink {
	return nopSink{}
}

type nopSink struct{}

func (nopSink) Warnf(string, ...any) {}

// Recorder is a Sink that captures warnings for inspection in tests.
type Recorder struct {
	// Warnings holds the formatted messages in arrival order.
	Warnings []string
}

// Warnf implements Sink.
func (r *Recorder) Warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}
