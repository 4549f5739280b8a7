// Package cli provides shared table and formatting helpers for the
// evpnscan CLI.
package cli

import (
	"os"
	"strings"
)

// colorEnabled is false when NO_COLOR env var is set (per no-color.org).
var colorEnabled = os.Getenv("NO_COLOR") == ""

// Bold wraps s in ANSI bold. Returns s unchanged when NO_COLOR is set.
func Bold(s string) string {
	if !colorEnabled {
		return s
	}
	return "\033[1m" + s + "\033[0m"
}

// Red wraps s in ANSI red. Returns s unchanged when NO_COLOR is set.
func Red(s string) string {
	if !colorEnabled {
		return s
	}
	return "\033[31m" + s + "\033[0m"
}

// BgYellow wraps s in an ANSI yellow background. Returns s unchanged when
// NO_COLOR is set.
func BgYellow(s string) string {
	if !colorEnabled {
		return s
	}
	return "\033[43m" + s + "\033[0m"
}

// visualLen is the display width of s with ANSI escape sequences removed.
func visualLen(s string) int {
	n := 0
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\033':
			inEscape = true
		default:
			n++
		}
	}
	return n
}

// padCell right-pads s with spaces to the given display width.
func padCell(s string, width int) string {
	if pad := width - visualLen(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
