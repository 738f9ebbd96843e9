// Package cli provides shared terminal formatting helpers.
package cli

import (
	"os"
	"strings"
)

// colorEnabled is false when NO_COLOR env var is set (per no-color.org).
var colorEnabled = os.Getenv("NO_COLOR") == ""

// SetColorEnabled overrides color output detection.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

func wrap(code, s string) string {
	if !colorEnabled {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

// Green wraps s in ANSI green. Returns s unchanged when NO_COLOR is set.
func Green(s string) string { return wrap("32", s) }

// Red wraps s in ANSI red. Returns s unchanged when NO_COLOR is set.
func Red(s string) string { return wrap("31", s) }

// Yellow wraps s in ANSI yellow. Returns s unchanged when NO_COLOR is set.
func Yellow(s string) string { return wrap("33", s) }

// Bold wraps s in ANSI bold. Returns s unchanged when NO_COLOR is set.
func Bold(s string) string { return wrap("1", s) }

// 256-color shades used by the monitor screens.

// Gold wraps s in 256-color gold.
func Gold(s string) string { return wrap("38;5;220", s) }

// Goldenrod wraps s in 256-color goldenrod.
func Goldenrod(s string) string { return wrap("38;5;178", s) }

// LightYellow wraps s in 256-color light yellow.
func LightYellow(s string) string { return wrap("38;5;228", s) }

// Khaki wraps s in 256-color khaki.
func Khaki(s string) string { return wrap("38;5;185", s) }

// Rule returns a horizontal rule of the given width built from ch.
func Rule(ch string, width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(ch, width)
}
