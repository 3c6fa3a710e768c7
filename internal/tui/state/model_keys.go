package state

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		var cmd tea.Cmd
		*m.uiState.GetViewport(), cmd = m.uiState.GetViewport().Update(msg)
		return m, cmd
	}

	// The form is disabled while a search is loading.
	if m.loading {
		return m, nil
	}

	switch msg.String() {
	case "enter":
		return m, m.submit()
	case "tab", "shift+tab":
		m.uiState.ToggleFocus()
		if m.uiState.FocusYear() {
			m.country.input.Blur()
			return m, nil
		}
		return m, m.country.input.Focus()
	}

	if m.uiState.FocusYear() {
		return m.handleYearKey(msg)
	}
	return m.handleCountryKey(msg)
}

func (m *Model) handleYearKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h", "down", "j":
		if m.yearIdx > 0 {
			m.yearIdx--
		}
	case "right", "l", "up", "k":
		if m.yearIdx < len(m.years)-1 {
			m.yearIdx++
		}
	}
	return m, nil
}

func (m *Model) handleCountryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		m.country.Move(-1)
		return m, nil
	case "down":
		m.country.Move(1)
		return m, nil
	}

	before := m.country.input.Value()
	var cmd tea.Cmd
	m.country.input, cmd = m.country.input.Update(msg)
	if m.country.input.Value() != before {
		m.country.refresh()
	}
	return m, cmd
}

// handleWindowSizeMsg handles window resize events.
func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.uiState.SetWidth(msg.Width)
	m.uiState.SetHeight(msg.Height)
	m.uiState.UpdateViewportSize()
	m.updateViewportContent()
	return m, nil
}
