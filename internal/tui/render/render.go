// Package render draws holiday cards and the form chrome for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/holiday-explorer/internal/colors"
	cardrender "github.com/cristianoliveira/holiday-explorer/internal/render"
)

const (
	minCardWidth     = 24
	defaultCardWidth = 72
	cardPadding      = 1
	borderWidth      = 2
	dateIcon         = "📅"
	locationIcon     = "📍"
	emptyMessage     = "No holidays found for this country and year."
)

// FooterState defines the inputs needed to render footer help text.
type FooterState struct {
	Loading    bool
	FocusYear  bool
	Scrollable bool
}

// Styles groups the lipgloss styles used for cards.
type Styles struct {
	Border      lipgloss.Style
	Name        lipgloss.Style
	Type        lipgloss.Style
	Meta        lipgloss.Style
	LocalName   lipgloss.Style
	Description lipgloss.Style
}

// DefaultStyles returns the card styles.
func DefaultStyles() Styles {
	return Styles{
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ansiColorNumber(colors.Blue))).
			Padding(0, cardPadding),
		Name: lipgloss.NewStyle().Bold(true),
		Type: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color(ansiColorNumber(colors.Cyan))).
			Padding(0, 1),
		Meta:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		LocalName:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		Description: lipgloss.NewStyle(),
	}
}

// Card renders a single holiday card at the given total width.
// Only the plain form of card text reaches the terminal.
func Card(card cardrender.Card, width int, styles Styles) string {
	inner := innerWidth(width)

	header := styles.Name.Render(card.Name.Plain())
	if !card.Type.IsZero() {
		header += "  " + styles.Type.Render(card.Type.Plain())
	}

	lines := []string{header}

	date := fmt.Sprintf("%s %s", dateIcon, card.Date)
	if !card.WeekDay.IsZero() {
		date += " • " + card.WeekDay.Plain()
	}
	lines = append(lines, styles.Meta.Render(date))
	lines = append(lines, styles.Meta.Render(fmt.Sprintf("%s %s", locationIcon, card.Location.Plain())))

	if !card.LocalName.IsZero() {
		lines = append(lines, styles.LocalName.Render("Local: "+card.LocalName.Plain()))
	}
	if !card.Description.IsZero() {
		lines = append(lines, "", styles.Description.Width(inner).Render(card.Description.Plain()))
	}

	return styles.Border.Width(inner + 2*cardPadding).Render(strings.Join(lines, "\n"))
}

// Cards renders every card in order, one below the other.
func Cards(cards []cardrender.Card, width int) string {
	styles := DefaultStyles()
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		rendered = append(rendered, Card(c, width, styles))
	}
	return strings.Join(rendered, "\n")
}

// Empty renders the no-results box.
func Empty(width int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("241")).
		Foreground(lipgloss.Color("245")).
		Padding(0, cardPadding).
		Width(innerWidth(width) + 2*cardPadding)
	return style.Render(emptyMessage)
}

// ErrorBanner renders the error region. Server-supplied messages are untrusted
// and are reduced to plain text first.
func ErrorBanner(message string, width int) string {
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ansiColorNumber(colors.Red))).
		Padding(0, cardPadding).
		Width(innerWidth(width) + 2*cardPadding)
	return style.Render("✗ " + cardrender.NewText(message).Plain())
}

// Loading renders the busy line next to the spinner frame.
func Loading(spinnerView string) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Yellow)))
	return style.Render(spinnerView + " Loading holidays...")
}

// Title renders the application header.
func Title() string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ansiColorNumber(colors.Blue))).
		Render("🎉 Holiday Explorer")
}

// Footer renders the footer with help text.
func Footer(state FooterState) string {
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	if state.Loading {
		return helpStyle.Render(strings.Join([]string{"searching...", "ctrl+c: quit"}, "  |  "))
	}

	var help []string
	if state.FocusYear {
		help = append(help, "←/→: year")
	} else {
		help = append(help, "type: country", "↑/↓: pick match")
	}
	help = append(help, "tab: switch field", "Enter: search")
	if state.Scrollable {
		help = append(help, "pgup/pgdn: scroll")
	}
	help = append(help, "esc: quit")
	return helpStyle.Render(strings.Join(help, "  |  "))
}

func innerWidth(width int) int {
	if width <= 0 {
		width = defaultCardWidth
	}
	inner := width - borderWidth - 2*cardPadding
	if inner < minCardWidth {
		inner = minCardWidth
	}
	return inner
}

// ansiColorNumber extracts the color number from an ANSI escape sequence.
// Example: "\033[0;34m" -> "34"
func ansiColorNumber(ansi string) string {
	if len(ansi) < 2 {
		return ""
	}
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 {
		return ""
	}
	return ansi[lastSemicolon+1 : len(ansi)-1]
}
