package reqlog

import (
	"fmt"
	"io"
	"sync"
	"time"
)

/*
DIAGNOSTIC LOGGING DESIGN

plain timestamped lines.
 Human readable
 No external dependencies
 Easy to reason about failure modes

serialized writes.
 One mutex guards the stream
 The spinner and the handlers share the same stream safely

fail open.
 Logging failure must never block or fail request handling
*/

type Logger struct {
	mu  sync.Mutex
	out io.Writer
}

// NewLogger wraps a diagnostic stream (stdout in production).
func NewLogger(out io.Writer) *Logger {
	return &Logger{out: out}
}

// Request records one handled request with its final status.
func (l *Logger) Request(method, path string, status int) {
	l.line(fmt.Sprintf("%s %s -> %d", method, path, status))
}

// Error records a failure detail. The detail stays local; it is never
// part of any HTTP response.
func (l *Logger) Error(context string, err error) {
	l.line(fmt.Sprintf("ERROR %s: %v", context, err))
}

// Printf records an arbitrary formatted line.
func (l *Logger) Printf(format string, args ...any) {
	l.line(fmt.Sprintf(format, args...))
}

func (l *Logger) line(msg string) {
	// Fail open never panic outward
	defer func() {
		_ = recover()
	}()

	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.out, "[%s] %s\n", time.Now().UTC().Format(time.RFC3339), msg)
}
