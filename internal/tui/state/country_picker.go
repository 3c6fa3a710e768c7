package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/cristianoliveira/holiday-explorer/internal/holiday"
	"github.com/sahilm/fuzzy"
)

const maxShownMatches = 5

// countryPicker is a text input fuzzy-matched against the country list.
type countryPicker struct {
	input    textinput.Model
	choices  []string
	matches  []holiday.Country
	selected int
}

func newCountryPicker(initial string) *countryPicker {
	input := textinput.New()
	input.Placeholder = "country code or name"
	input.Prompt = ""
	input.CharLimit = 40
	input.SetValue(initial)
	input.Focus()

	choices := make([]string, len(holiday.Countries))
	for i, c := range holiday.Countries {
		choices[i] = strings.ToLower(c.Code + " " + c.Name)
	}

	p := &countryPicker{input: input, choices: choices}
	p.refresh()
	return p
}

// refresh recomputes matches for the current input. An exact code match
// is always offered first.
func (p *countryPicker) refresh() {
	p.selected = 0
	p.matches = nil

	query := strings.TrimSpace(p.input.Value())
	if query == "" {
		return
	}

	exact, hasExact := holiday.LookupCountry(query)
	if hasExact {
		p.matches = append(p.matches, exact)
	}
	for _, match := range fuzzy.Find(strings.ToLower(query), p.choices) {
		c := holiday.Countries[match.Index]
		if hasExact && c.Code == exact.Code {
			continue
		}
		p.matches = append(p.matches, c)
	}
}

// Selected returns the chosen country code, or "" when nothing matches.
func (p *countryPicker) Selected() string {
	if len(p.matches) == 0 {
		return ""
	}
	return p.matches[p.selected].Code
}

// Move cycles the highlighted match by delta.
func (p *countryPicker) Move(delta int) {
	n := len(p.matches)
	if n == 0 {
		return
	}
	p.selected = ((p.selected+delta)%n + n) % n
}

// Shown returns the matches to list under the input, with the index of the
// highlighted one.
func (p *countryPicker) Shown() ([]holiday.Country, int) {
	if len(p.matches) <= maxShownMatches {
		return p.matches, p.selected
	}
	start := p.selected - maxShownMatches + 1
	if start < 0 {
		start = 0
	}
	return p.matches[start : start+maxShownMatches], p.selected - start
}
