package state

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/holiday-explorer/internal/tui/render"
)

var (
	labelStyle    = lipgloss.NewStyle().Bold(true).Width(9)
	focusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("39"))
)

// View renders the TUI.
func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(render.Title())
	s.WriteString("\n\n")
	s.WriteString(m.countryLine())
	s.WriteString("\n")
	s.WriteString(m.matchesLine())
	s.WriteString("\n")
	s.WriteString(m.yearLine())
	s.WriteString("\n\n")
	s.WriteString(m.statusLine())
	s.WriteString("\n")
	s.WriteString(m.uiState.GetViewport().View())
	s.WriteString("\n")

	vp := m.uiState.GetViewport()
	s.WriteString(render.Footer(render.FooterState{
		Loading:    m.loading,
		FocusYear:  m.uiState.FocusYear(),
		Scrollable: vp.TotalLineCount() > vp.Height,
	}))
	return s.String()
}

func (m *Model) countryLine() string {
	label := labelStyle.Render("Country")
	if !m.uiState.FocusYear() && !m.loading {
		label = focusStyle.Inherit(labelStyle).Render("Country")
	}
	line := label + " " + m.country.input.View()
	if code := m.country.Selected(); code != "" {
		line += dimStyle.Render("  → " + m.country.matches[m.country.selected].Label())
	}
	return line
}

func (m *Model) matchesLine() string {
	shown, selected := m.country.Shown()
	if len(shown) == 0 || m.uiState.FocusYear() || m.loading {
		return ""
	}
	parts := make([]string, 0, len(shown))
	for i, c := range shown {
		if i == selected {
			parts = append(parts, selectedStyle.Render(c.Code))
			continue
		}
		parts = append(parts, dimStyle.Render(c.Code))
	}
	return strings.Repeat(" ", 10) + strings.Join(parts, " ")
}

func (m *Model) yearLine() string {
	label := labelStyle.Render("Year")
	if m.uiState.FocusYear() && !m.loading {
		label = focusStyle.Inherit(labelStyle).Render("Year")
	}
	year := m.Criteria().Year
	return fmt.Sprintf("%s ‹ %s ›", label, year)
}

func (m *Model) statusLine() string {
	switch {
	case m.loading:
		return render.Loading(m.spinner.View())
	case m.errMsg != "":
		return render.ErrorBanner(m.errMsg, m.uiState.GetWidth())
	}
	return ""
}

// updateViewportContent fills the viewport with the visible cards or the empty box.
func (m *Model) updateViewportContent() {
	width := m.uiState.GetWidth()
	vp := m.uiState.GetViewport()

	switch {
	case m.empty:
		vp.SetContent(render.Empty(width))
	case len(m.cards) > 0:
		vp.SetContent(render.Cards(m.cards[:m.revealed], width))
	default:
		vp.SetContent("")
	}
}
