//go:build !nocolor

package logger

const colorEnabled = true
