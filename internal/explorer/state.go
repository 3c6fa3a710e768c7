package explorer

import (
	apperrors "github.com/cristianoliveira/holiday-explorer/internal/errors"
	"github.com/cristianoliveira/holiday-explorer/internal/holiday"
)

// State is the single active mode of the result area.
type State int

const (
	Idle State = iota
	Loading
	ResultsShown
	EmptyShown
	ErrorShown
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case ResultsShown:
		return "results"
	case EmptyShown:
		return "empty"
	case ErrorShown:
		return "error"
	default:
		return "unknown"
	}
}

// Settled reports whether s is one of the three outcomes a completed search ends in.
func (s State) Settled() bool {
	return s == ResultsShown || s == EmptyShown || s == ErrorShown
}

// EventKind identifies what happened to the search.
type EventKind int

const (
	// EventInvalid is a submission with missing criteria.
	EventInvalid EventKind = iota
	// EventSubmit is a valid submission about to issue its request.
	EventSubmit
	// EventResults is a successful response carrying holidays.
	EventResults
	// EventEmpty is a successful response with no holidays.
	EventEmpty
	// EventFailure is an API failure or a transport error.
	EventFailure
)

func (k EventKind) String() string {
	switch k {
	case EventInvalid:
		return "invalid"
	case EventSubmit:
		return "submit"
	case EventResults:
		return "results"
	case EventEmpty:
		return "empty"
	case EventFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Event is the input to Transition.
type Event struct {
	Kind     EventKind
	Holidays []holiday.Record
	// Message is the user-facing text for EventInvalid and EventFailure.
	Message string
	// Err is the classified cause for EventInvalid and EventFailure.
	Err error
}

// EffectKind names a view operation.
type EffectKind int

const (
	ClearMessages EffectKind = iota
	ClearResults
	ShowLoading
	HideLoading
	ShowResults
	ShowEmpty
	ShowError
)

func (k EffectKind) String() string {
	switch k {
	case ClearMessages:
		return "clear-messages"
	case ClearResults:
		return "clear-results"
	case ShowLoading:
		return "show-loading"
	case HideLoading:
		return "hide-loading"
	case ShowResults:
		return "show-results"
	case ShowEmpty:
		return "show-empty"
	case ShowError:
		return "show-error"
	default:
		return "unknown"
	}
}

// Effect is one view operation produced by Transition.
type Effect struct {
	Kind     EffectKind
	Holidays []holiday.Record
	Message  string
}

// Transition returns the next state and the view effects, in order, for ev.
//
// Every settling event starts with HideLoading whatever prev is, so a search can
// never end with the busy indicator on, and clears the regions its outcome does
// not use, so exactly one of them is visible. An invalid submission swaps any
// message for the error banner and leaves rendered results in place.
func Transition(prev State, ev Event) (State, []Effect) {
	switch ev.Kind {
	case EventInvalid:
		return ErrorShown, []Effect{{Kind: ClearMessages}, {Kind: ShowError, Message: ev.Message}}
	case EventSubmit:
		return Loading, []Effect{{Kind: ClearMessages}, {Kind: ClearResults}, {Kind: ShowLoading}}
	case EventResults:
		return ResultsShown, []Effect{{Kind: HideLoading}, {Kind: ClearMessages}, {Kind: ShowResults, Holidays: ev.Holidays}}
	case EventEmpty:
		return EmptyShown, []Effect{{Kind: HideLoading}, {Kind: ClearMessages}, {Kind: ClearResults}, {Kind: ShowEmpty}}
	case EventFailure:
		return ErrorShown, []Effect{{Kind: HideLoading}, {Kind: ClearMessages}, {Kind: ClearResults}, {Kind: ShowError, Message: ev.Message}}
	default:
		return prev, nil
	}
}

// Invalid builds the event for a submission that failed validation.
func Invalid(err error) Event {
	return Event{Kind: EventInvalid, Message: apperrors.UserMessage(err), Err: err}
}

// Classify maps a settled request to its event.
// A transport error wins over any response; otherwise the envelope decides.
func Classify(resp holiday.Response, err error) Event {
	if err != nil {
		if apperrors.KindOf(err) != apperrors.KindTransport {
			err = apperrors.Transport(err)
		}
		return Event{Kind: EventFailure, Message: apperrors.MsgTransport, Err: err}
	}
	if resp.Success {
		if len(resp.Holidays) > 0 {
			return Event{Kind: EventResults, Holidays: resp.Holidays}
		}
		return Event{Kind: EventEmpty}
	}
	apiErr := apperrors.API(resp.Error)
	return Event{Kind: EventFailure, Message: apiErr.Message, Err: apiErr}
}
