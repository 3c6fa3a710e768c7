// Package explorer runs a holiday search and drives a View through its states.
//
// A search is split in three steps so an event loop can own the only suspension
// point: Begin validates and enters Loading, Do performs the request and touches
// no state, Settle classifies the outcome and applies it. Search chains them for
// synchronous callers.
package explorer

import (
	"context"
	"fmt"
	"time"

	"github.com/cristianoliveira/holiday-explorer/internal/client"
	apperrors "github.com/cristianoliveira/holiday-explorer/internal/errors"
	"github.com/cristianoliveira/holiday-explorer/internal/holiday"
	"github.com/cristianoliveira/holiday-explorer/internal/logging"
	"github.com/cristianoliveira/holiday-explorer/internal/render"
	"github.com/google/uuid"
)

// View is the display surface a search drives.
type View interface {
	ClearMessages()
	ClearResults()
	ShowLoading()
	HideLoading()
	ShowResults(cards []render.Card)
	ShowEmpty()
	ShowError(message string)
}

// Pending is a search that has entered Loading and not yet settled.
type Pending struct {
	Criteria  holiday.Criteria
	RequestID string
	Started   time.Time
}

// Orchestrator owns the search state. It is not safe for concurrent use;
// callers serialize Begin and Settle on one goroutine.
type Orchestrator struct {
	view     View
	fetcher  client.Fetcher
	renderer *render.Renderer
	logger   logging.Logger
	state    State
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger for search lifecycle events.
func WithLogger(l logging.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRenderer replaces the card renderer.
func WithRenderer(r *render.Renderer) Option {
	return func(o *Orchestrator) {
		if r != nil {
			o.renderer = r
		}
	}
}

// New creates an Orchestrator in the Idle state.
func New(view View, fetcher client.Fetcher, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		view:     view,
		fetcher:  fetcher,
		renderer: render.NewRenderer(render.DefaultStagger),
		logger:   logging.Noop(),
		state:    Idle,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// State returns the current state.
func (o *Orchestrator) State() State {
	return o.state
}

// Begin validates criteria. Invalid criteria show the validation error and
// return false without touching rendered results. Valid criteria clear the
// result area, enter Loading and return the pending search.
func (o *Orchestrator) Begin(criteria holiday.Criteria) (Pending, bool) {
	criteria = criteria.Normalize()
	if err := criteria.Validate(); err != nil {
		o.logger.Info("search rejected", "reason", apperrors.KindOf(err).String())
		o.apply(Invalid(err))
		return Pending{}, false
	}

	p := Pending{
		Criteria:  criteria,
		RequestID: uuid.NewString(),
		Started:   time.Now(),
	}
	o.logger.Info("search started",
		"request_id", p.RequestID,
		"country", criteria.Country,
		"year", criteria.Year)
	o.apply(Event{Kind: EventSubmit})
	return p, true
}

// Do performs the request for p. It reads no orchestrator state, so it may run
// off the event loop. A panicking fetcher is reported as a transport error.
func (o *Orchestrator) Do(ctx context.Context, p Pending) (resp holiday.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp = holiday.Response{}
			err = apperrors.Transport(fmt.Errorf("fetch panicked: %v", r))
		}
	}()
	ctx = client.ContextWithRequestID(ctx, p.RequestID)
	return o.fetcher.Fetch(ctx, p.Criteria)
}

// Settle applies the outcome of p and returns the resulting state.
// Responses are applied in the order they settle; a stale response overwrites
// whatever is on screen.
func (o *Orchestrator) Settle(p Pending, resp holiday.Response, err error) State {
	ev := Classify(resp, err)
	o.apply(ev)

	fields := []any{
		"request_id", p.RequestID,
		"outcome", o.state.String(),
		"holidays", len(ev.Holidays),
	}
	if !p.Started.IsZero() {
		fields = append(fields, "duration_ms", time.Since(p.Started).Milliseconds())
	}
	if resp.Source != "" {
		fields = append(fields, "source", resp.Source)
	}
	if ev.Err != nil {
		o.logger.Warn("search failed", append(fields,
			"kind", apperrors.KindOf(ev.Err).String(),
			"error", ev.Err.Error())...)
	} else {
		o.logger.Info("search settled", fields...)
	}
	return o.state
}

// Search runs a whole search and returns the state it ends in.
func (o *Orchestrator) Search(ctx context.Context, criteria holiday.Criteria) State {
	p, ok := o.Begin(criteria)
	if !ok {
		return o.state
	}
	resp, err := o.Do(ctx, p)
	return o.Settle(p, resp, err)
}

func (o *Orchestrator) apply(ev Event) {
	next, effects := Transition(o.state, ev)
	for _, eff := range effects {
		switch eff.Kind {
		case ClearMessages:
			o.view.ClearMessages()
		case ClearResults:
			o.view.ClearResults()
		case ShowLoading:
			o.view.ShowLoading()
		case HideLoading:
			o.view.HideLoading()
		case ShowResults:
			o.view.ShowResults(o.renderer.Render(eff.Holidays))
		case ShowEmpty:
			o.view.ShowEmpty()
		case ShowError:
			o.view.ShowError(eff.Message)
		}
	}
	o.state = next
}
