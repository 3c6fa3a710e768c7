package render

import (
	"fmt"
	"time"

	"github.com/cristianoliveira/holiday-explorer/internal/holiday"
)

// DefaultStagger is the appearance delay added per card index.
const DefaultStagger = 50 * time.Millisecond

// Card is the display unit for one holiday.
// Optional fields are zero when they should not be shown.
type Card struct {
	Index       int
	Name        Text
	LocalName   Text
	Type        Text
	Date        string
	WeekDay     Text
	Location    Text
	Description Text
	// Delay staggers the card's appearance. Presentation only.
	Delay time.Duration
}

// AnimationDelay formats Delay as a CSS time value, e.g. "0.05s".
func (c Card) AnimationDelay() string {
	return fmt.Sprintf("%.2fs", c.Delay.Seconds())
}

// Renderer builds cards from records.
type Renderer struct {
	stagger time.Duration
}

// NewRenderer creates a Renderer. A negative stagger is treated as zero.
func NewRenderer(stagger time.Duration) *Renderer {
	if stagger < 0 {
		stagger = 0
	}
	return &Renderer{stagger: stagger}
}

// Render returns one card per record, in input order.
func (r *Renderer) Render(records []holiday.Record) []Card {
	cards := make([]Card, 0, len(records))
	for i, rec := range records {
		cards = append(cards, NewCard(i, rec, r.stagger))
	}
	return cards
}

// NewCard builds the card for rec at position index.
func NewCard(index int, rec holiday.Record, stagger time.Duration) Card {
	card := Card{
		Index:       index,
		Name:        NewText(rec.Name),
		Type:        NewText(rec.Type),
		Date:        FormatDate(int(rec.DateYear), int(rec.DateMonth), int(rec.DateDay)),
		WeekDay:     NewText(rec.WeekDay),
		Location:    NewText(rec.Location),
		Description: NewText(rec.Description),
		Delay:       time.Duration(index) * stagger,
	}
	if rec.NameLocal != "" && rec.NameLocal != rec.Name {
		card.LocalName = NewText(rec.NameLocal)
	}
	if rec.Location == "" {
		card.Location = NewText(rec.Country)
	}
	return card
}
