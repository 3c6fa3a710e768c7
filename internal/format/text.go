package format

import (
	"fmt"
	"io"

	"github.com/cristianoliveira/holiday-explorer/internal/colors"
	apperrors "github.com/cristianoliveira/holiday-explorer/internal/errors"
	"github.com/cristianoliveira/holiday-explorer/internal/render"
	tuirender "github.com/cristianoliveira/holiday-explorer/internal/tui/render"
)

// TextView prints cards to a writer and reports errors through an error handler.
type TextView struct {
	regions
	writer  io.Writer
	width   int
	handler apperrors.Handler
}

// TextOption configures a TextView.
type TextOption func(*TextView)

// WithWidth sets the card width.
func WithWidth(width int) TextOption {
	return func(v *TextView) {
		v.width = width
	}
}

// WithHandler sets the handler used for the error region.
func WithHandler(h apperrors.Handler) TextOption {
	return func(v *TextView) {
		if h != nil {
			v.handler = h
		}
	}
}

// NewTextView creates a text view writing cards to w.
func NewTextView(w io.Writer, opts ...TextOption) *TextView {
	v := &TextView{
		writer:  w,
		handler: apperrors.NewDefaultCLIHandler(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ShowLoading notes the request in debug output.
func (v *TextView) ShowLoading() {
	v.regions.ShowLoading()
	colors.Debug("fetching holidays...")
}

// Flush writes the visible region.
func (v *TextView) Flush() error {
	switch {
	case v.errMsg != "":
		v.handler.Error(render.NewText(v.errMsg).Plain())
		return nil
	case v.empty:
		_, err := fmt.Fprintln(v.writer, tuirender.Empty(v.width))
		return err
	case len(v.cards) > 0:
		_, err := fmt.Fprintln(v.writer, tuirender.Cards(v.cards, v.width))
		return err
	}
	return nil
}
