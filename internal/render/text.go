// Package render turns holiday records into display-ready cards.
//
// API-sourced strings are wrapped in Text as soon as a card is built. Text has no
// accessor for its raw value: callers get either HTML-escaped markup or
// terminal-safe plain text, so no output path can interpolate the raw string.
package render

import (
	"html/template"
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// Text is untrusted text from the holiday API.
type Text struct {
	raw string
}

// NewText wraps s.
func NewText(s string) Text {
	return Text{raw: s}
}

// IsZero reports whether the text is absent.
func (t Text) IsZero() bool {
	return t.raw == ""
}

// HTML returns the text with markup-significant characters escaped.
func (t Text) HTML() template.HTML {
	return template.HTML(Escape(t.raw))
}

// Plain returns the text with terminal escape sequences and control characters removed.
// Newlines and tabs are kept.
func (t Text) Plain() string {
	if t.raw == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, ansi.Strip(t.raw))
}

// String implements fmt.Stringer with the plain form so that %s never emits raw input.
func (t Text) String() string {
	return t.Plain()
}

// Escape neutralizes &, <, >, quotes and NUL for insertion into HTML. Empty input yields "".
func Escape(s string) string {
	if s == "" {
		return ""
	}
	return template.HTMLEscapeString(s)
}
