package logger

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/pkg/errors"
)

// clockLayout renders local wall-clock time truncated to the second.
const clockLayout = "15:04:05"

// timeErrorMessage is written to stderr instead of a line whose timestamp
// could not be rendered.
const timeErrorMessage = "Error formatting time\n"

// ErrClockUnavailable reports a timestamp that cannot be rendered.
var ErrClockUnavailable = errors.New("clock unavailable")

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = colorable.NewColorableStdout()
	outStderr io.Writer = colorable.NewColorableStderr()
)

// Logger writes one line per call to its stdout writer.
// Thread-safe for concurrent use; lines are never interleaved.
type Logger struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time
	styles *styles
}

// Option configures a Logger built by New.
type Option func(*Logger)

// WithOutput sets the writers for log lines and for the time formatting
// diagnostic.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(l *Logger) {
		l.stdout = stdout
		l.stderr = stderr
	}
}

// WithClock replaces time.Now as the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		l.now = now
	}
}

// New returns a Logger writing to the process stdout and stderr.
func New(opts ...Option) *Logger {
	l := &Logger{
		stdout: outStdout,
		stderr: outStderr,
		now:    time.Now,
		styles: levelStyles,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

// Default returns the process-wide Logger used by the package-level functions.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = New()
	})
	return defaultLogger
}

// Log formats a message and writes it as a single line:
//
//	HH:MM:SS.mmm LEVEL file:line: message
//
// The timestamp is taken before the lock is acquired. If the time cannot be
// rendered, nothing is written to stdout and a fixed diagnostic goes to
// stderr instead.
func (l *Logger) Log(level Level, file string, line int, format string, args ...any) {
	now := l.now()
	msg := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()

	clock, err := formatClock(now)
	if err != nil {
		_, _ = io.WriteString(l.stderr, timeErrorMessage)
		return
	}

	buf := make([]byte, 0, len(clock)+len(file)+len(msg)+48)
	buf = append(buf, clock...)
	buf = append(buf, '.')
	buf = appendMillis(buf, now)
	buf = append(buf, ' ')
	buf = append(buf, l.styles.label(level)...)
	buf = append(buf, ' ')
	buf = append(buf, file...)
	buf = append(buf, ':')
	buf = strconv.AppendInt(buf, int64(line), 10)
	buf = append(buf, ": "...)
	buf = append(buf, msg...)
	buf = append(buf, '\n')
	_, _ = l.stdout.Write(buf)
}

// Output logs with the source location of the caller calldepth frames up the
// stack; calldepth 1 is the caller of Output.
func (l *Logger) Output(calldepth int, level Level, format string, args ...any) {
	file, line := callerLocation(calldepth)
	l.Log(level, file, line, format, args...)
}

// formatClock renders the local wall-clock part of t. The zero instant is
// what an unavailable clock yields and cannot be rendered.
func formatClock(t time.Time) (string, error) {
	if t.IsZero() {
		return "", errors.WithStack(ErrClockUnavailable)
	}
	return t.Local().Format(clockLayout), nil
}

// appendMillis appends the millisecond-of-second of t, zero padded to three
// digits. It is derived from the instant itself, not from the local rendering.
func appendMillis(buf []byte, t time.Time) []byte {
	ms := t.UnixMilli() % 1000
	if ms < 0 {
		ms += 1000
	}
	return append(buf, byte('0'+ms/100), byte('0'+ms/10%10), byte('0'+ms%10))
}

// callerLocation returns the base file name and line depth frames above the
// function calling callerLocation.
func callerLocation(depth int) (string, int) {
	_, file, line, ok := runtime.Caller(depth + 1)
	if !ok {
		return "???", 0
	}
	return filepath.Base(file), line
}

// --- Formatted logging methods (fmt.Sprintf style) ---

// Tracef logs a trace message with the caller's file and line.
func (l *Logger) Tracef(format string, args ...any) {
	l.Output(2, TraceLevel, format, args...)
}

// Debugf logs a debug message with the caller's file and line.
func (l *Logger) Debugf(format string, args ...any) {
	l.Output(2, DebugLevel, format, args...)
}

// Infof logs an informational message with the caller's file and line.
func (l *Logger) Infof(format string, args ...any) {
	l.Output(2, InfoLevel, format, args...)
}

// Warnf logs a warning with the caller's file and line.
func (l *Logger) Warnf(format string, args ...any) {
	l.Output(2, WarnLevel, format, args...)
}

// Errorf logs an error message with the caller's file and line.
func (l *Logger) Errorf(format string, args ...any) {
	l.Output(2, ErrorLevel, format, args...)
}

// Fatalf logs a fatal message with the caller's file and line.
// Unlike log.Fatalf it does not exit.
func (l *Logger) Fatalf(format string, args ...any) {
	l.Output(2, FatalLevel, format, args...)
}

// --- Package-level functions, routed to Default ---

// Tracef logs a trace message through the default logger.
func Tracef(format string, args ...any) {
	Default().Output(2, TraceLevel, format, args...)
}

// Debugf logs a debug message through the default logger.
func Debugf(format string, args ...any) {
	Default().Output(2, DebugLevel, format, args...)
}

// Infof logs an informational message through the default logger.
func Infof(format string, args ...any) {
	Default().Output(2, InfoLevel, format, args...)
}

// Warnf logs a warning through the default logger.
func Warnf(format string, args ...any) {
	Default().Output(2, WarnLevel, format, args...)
}

// Errorf logs an error message through the default logger.
func Errorf(format string, args ...any) {
	Default().Output(2, ErrorLevel, format, args...)
}

// Fatalf logs a fatal message through the default logger. It does not exit.
func Fatalf(format string, args ...any) {
	Default().Output(2, FatalLevel, format, args...)
}
