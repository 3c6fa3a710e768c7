// Package state holds the BubbleTea model for the holiday explorer.
package state

import (
	"github.com/cristianoliveira/holiday-explorer/internal/explorer"
	"github.com/cristianoliveira/holiday-explorer/internal/holiday"
)

// searchSettledMsg is sent when the request for a pending search returns.
type searchSettledMsg struct {
	pending explorer.Pending
	resp    holiday.Response
	err     error
}

// revealTickMsg shows the next staggered card. Ticks from an earlier
// result set carry an older generation and are dropped.
type revealTickMsg struct {
	generation int
}
