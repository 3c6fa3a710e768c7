package state

import (
	"github.com/cristianoliveira/holiday-explorer/internal/render"
)

// The methods below implement explorer.View. Only the orchestrator calls them.

func (m *Model) ClearMessages() {
	m.empty = false
	m.errMsg = ""
	m.updateViewportContent()
}

func (m *Model) ClearResults() {
	m.cards = nil
	m.revealed = 0
	m.generation++
	m.updateViewportContent()
}

func (m *Model) ShowLoading() {
	m.loading = true
	m.country.input.Blur()
}

func (m *Model) HideLoading() {
	m.loading = false
	if !m.uiState.FocusYear() {
		m.country.input.Focus()
	}
}

func (m *Model) ShowResults(cards []render.Card) {
	m.cards = cards
	m.generation++
	m.revealed = 0
	if m.stagger <= 0 {
		m.revealed = len(cards)
	} else if len(cards) > 0 {
		m.revealed = 1
	}
	m.uiState.GetViewport().GotoTop()
	m.updateViewportContent()
}

func (m *Model) ShowEmpty() {
	m.empty = true
	m.updateViewportContent()
}

func (m *Model) ShowError(message string) {
	m.errMsg = message
}
