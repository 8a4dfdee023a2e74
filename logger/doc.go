// Package logger provides a leveled, timestamped, color-coded console logger.
//
// # Output
//
// Every call writes exactly one line to stdout:
//
//	14:03:05.120 INFO  main.go:42: value=7
//
// The clock is local time with milliseconds, the level label is padded to
// five columns and wrapped in an ANSI color, and the source location is the
// base name of the calling file.
//
// # Colors
//
// Colors are on by default. Build with the nocolor tag to remove every
// escape sequence from the output:
//
//	go build -tags nocolor ./...
//
// # Usage
//
// Package-level functions log through a lazily created default logger:
//
//	logger.Infof("server started on port %d", 8080)
//	logger.Errorf("failed to connect: %v", err)
//
// A Logger can also be constructed explicitly, for example to capture output
// in tests:
//
//	var buf bytes.Buffer
//	l := logger.New(logger.WithOutput(&buf, io.Discard))
//	l.Warnf("disk %d%% full", 91)
//
// # Concurrency
//
// A Logger serializes writes with a mutex, so lines from concurrent
// goroutines never interleave. The timestamp is taken before the lock.
//
// # Failures
//
// When the timestamp cannot be rendered the line is dropped and
// "Error formatting time" is written to stderr. Nothing is returned to the
// caller. FatalLevel only labels the line; it never exits the process.
package logger
