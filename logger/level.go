package logger

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Level defines log severity.
type Level int

const (
	// TraceLevel is the most verbose level.
	TraceLevel Level = iota
	// DebugLevel is for diagnostic messages.
	DebugLevel
	// InfoLevel is for informational messages.
	InfoLevel
	// WarnLevel is for warnings.
	WarnLevel
	// ErrorLevel is for errors.
	ErrorLevel
	// FatalLevel is for unrecoverable errors. It only labels the line; the
	// process keeps running.
	FatalLevel
)

// ErrUnknownLevel is returned by ParseLevel for names that are not a level.
var ErrUnknownLevel = errors.New("unknown log level")

var levelNames = [...]string{
	TraceLevel: "TRACE",
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
	FatalLevel: "FATAL",
}

// AllLevels returns all supported levels, in increasing severity.
func AllLevels() []Level {
	return []Level{
		TraceLevel,
		DebugLevel,
		InfoLevel,
		WarnLevel,
		ErrorLevel,
		FatalLevel,
	}
}

// String returns the level label without padding, or Level(n) for values
// outside the enumeration.
func (l Level) String() string {
	if l != l.clamp() {
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}
	return levelNames[l]
}

// clamp maps out-of-range values onto the nearest valid level.
func (l Level) clamp() Level {
	switch {
	case l < TraceLevel:
		return TraceLevel
	case l > FatalLevel:
		return FatalLevel
	default:
		return l
	}
}

// ParseLevel parses a level name such as "info" or "WARN".
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return TraceLevel, errors.Wrapf(ErrUnknownLevel, "parse %q", s)
}
