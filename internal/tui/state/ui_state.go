package state

import (
	"github.com/charmbracelet/bubbles/viewport"
)

// UIState manages layout state for the TUI: terminal size, the results
// viewport and which form field has focus.
type UIState struct {
	viewport  viewport.Model
	width     int
	height    int
	focusYear bool
}

// NewUIState creates a new UIState instance with default values.
func NewUIState() *UIState {
	return &UIState{
		viewport: viewport.New(defaultViewportWidth, defaultViewportHeight-formLines),
		width:    defaultViewportWidth,
		height:   defaultViewportHeight,
	}
}

// GetViewport returns the results viewport.
func (u *UIState) GetViewport() *viewport.Model {
	return &u.viewport
}

// GetWidth returns the current width of the UI.
func (u *UIState) GetWidth() int {
	return u.width
}

// SetWidth updates the width of the UI.
func (u *UIState) SetWidth(width int) {
	u.width = width
	if width <= 0 {
		u.width = defaultViewportWidth
	}
}

// GetHeight returns the current height of the UI.
func (u *UIState) GetHeight() int {
	return u.height
}

// SetHeight updates the height of the UI.
func (u *UIState) SetHeight(height int) {
	u.height = height
	if height <= 0 {
		u.height = defaultViewportHeight
	}
}

// UpdateViewportSize resizes the viewport to the space left below the form.
func (u *UIState) UpdateViewportSize() {
	h := u.height - formLines
	if h < 1 {
		h = 1
	}
	u.viewport.Width = u.width
	u.viewport.Height = h
}

// FocusYear reports whether the year selector has focus.
func (u *UIState) FocusYear() bool {
	return u.focusYear
}

// ToggleFocus moves focus to the other form field.
func (u *UIState) ToggleFocus() {
	u.focusYear = !u.focusYear
}
