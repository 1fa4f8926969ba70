// Package textutil provides small formatting helpers for TUI text.
package textutil

import (
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// SingleLine collapses whitespace into single spaces.
func SingleLine(text string) string {
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(text), " ")
}

// Truncate trims a string to the given width with an ellipsis.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(text, width, "...")
}

// FormatDate renders an item timestamp for the list, or a placeholder
// when the feed did not provide one.
func FormatDate(t *time.Time) string {
	if t == nil {
		return "no date"
	}
	return t.Local().Format("2006-01-02 15:04")
}
