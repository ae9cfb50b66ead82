// Package sanitize provides text sanitization for values shown in the terminal.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// StripHTML removes all HTML tags from a string, making it safe for text-only display.
func StripHTML(s string) string {
	result := strict.Sanitize(s)
	// bluemonday escapes entities; decode them and strip again to catch encoded tags
	result = strict.Sanitize(html.UnescapeString(result))
	return strings.TrimSpace(html.UnescapeString(result))
}

// Text sanitizes a string for display by stripping HTML and control
// characters other than newlines and tabs.
func Text(s string) string {
	stripped := StripHTML(s)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, stripped)
}

// TextPtr is a helper for optional string pointers
func TextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	result := Text(*s)
	return &result
}
