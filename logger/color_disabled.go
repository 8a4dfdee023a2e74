//go:build nocolor

package logger

// colorEnabled is false when built with -tags nocolor.
const colorEnabled = false
