// Package format writes the outcome of a one-shot search for CLI commands.
package format

import (
	"io"

	"github.com/cristianoliveira/holiday-explorer/internal/explorer"
	"github.com/cristianoliveira/holiday-explorer/internal/render"
)

// View is an explorer.View that collects the outcome and writes it on Flush.
type View interface {
	explorer.View
	// Flush writes the visible region to the output.
	Flush() error
}

// FormatterType represents the type of output to produce.
type FormatterType string

const (
	// FormatterTypeText renders terminal cards.
	FormatterTypeText FormatterType = "text"

	// FormatterTypeHTML renders the page fragment for the result region.
	FormatterTypeHTML FormatterType = "html"
)

// NewView creates a view of the given type writing to w.
func NewView(formatterType FormatterType, w io.Writer) View {
	switch formatterType {
	case FormatterTypeHTML:
		return NewHTMLView(w)
	case FormatterTypeText:
		return NewTextView(w)
	default:
		// Default to text for unknown types
		return NewTextView(w)
	}
}

// regions tracks what a search left on screen.
type regions struct {
	loading bool
	cards   []render.Card
	empty   bool
	errMsg  string
}

func (r *regions) ClearMessages() {
	r.empty = false
	r.errMsg = ""
}

func (r *regions) ClearResults()                   { r.cards = nil }
func (r *regions) ShowLoading()                    { r.loading = true }
func (r *regions) HideLoading()                    { r.loading = false }
func (r *regions) ShowResults(cards []render.Card) { r.cards = cards }
func (r *regions) ShowEmpty()                      { r.empty = true }
func (r *regions) ShowError(message string)        { r.errMsg = message }
