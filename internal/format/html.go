package format

import (
	"io"

	"github.com/cristianoliveira/holiday-explorer/internal/render"
)

// HTMLView writes the result region as an HTML fragment.
type HTMLView struct {
	regions
	writer io.Writer
}

// NewHTMLView creates an HTML view writing to w.
func NewHTMLView(w io.Writer) *HTMLView {
	return &HTMLView{writer: w}
}

// Flush writes the visible region. Nothing is written before a search settles.
func (v *HTMLView) Flush() error {
	switch {
	case v.errMsg != "":
		return render.WriteError(v.writer, v.errMsg)
	case v.empty:
		return render.WriteEmpty(v.writer)
	case len(v.cards) > 0:
		return render.WriteCards(v.writer, v.cards)
	}
	return nil
}
