package logger

import (
	"fmt"

	"github.com/fatih/color"
)

// levelAttrs holds the SGR attributes for each level, indexed by Level.
var levelAttrs = [...][]color.Attribute{
	TraceLevel: {color.FgHiBlack},
	DebugLevel: {color.FgGreen},
	InfoLevel:  {color.FgCyan},
	WarnLevel:  {color.FgYellow},
	ErrorLevel: {color.FgRed},
	FatalLevel: {color.FgHiWhite, color.BgRed},
}

// styles is the decorated label of every level: color, label padded to five
// columns, reset. Built once and never mutated.
type styles [len(levelNames)]string

var levelStyles = newStyles(colorEnabled)

func newStyles(colorize bool) *styles {
	var s styles
	for i, name := range levelNames {
		if !colorize {
			s[i] = fmt.Sprintf("%-5s", name)
			continue
		}
		c := color.New(levelAttrs[i]...)
		// Force color on; output must not depend on terminal detection.
		c.EnableColor()
		s[i] = c.Sprintf("%-5s", name)
	}
	return &s
}

func (s *styles) label(l Level) string {
	return s[l.clamp()]
}
