package state

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/cristianoliveira/holiday-explorer/internal/client"
	apperrors "github.com/cristianoliveira/holiday-explorer/internal/errors"
	"github.com/cristianoliveira/holiday-explorer/internal/explorer"
	"github.com/cristianoliveira/holiday-explorer/internal/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, fetcher *client.MockFetcher, opts ...Option) *Model {
	t.Helper()
	opts = append([]Option{WithDefaults("US", "2024"), WithStagger(0)}, opts...)
	m := NewModel(fetcher, opts...)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return m
}

// settle runs cmd and feeds every message it produces back into the model,
// returning the follow-up commands.
func settle(t *testing.T, m *Model, cmd tea.Cmd) []tea.Cmd {
	t.Helper()
	require.NotNil(t, cmd)

	var msgs []tea.Msg
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			if c != nil {
				msgs = append(msgs, c())
			}
		}
	default:
		msgs = append(msgs, msg)
	}

	var next []tea.Cmd
	for _, msg := range msgs {
		_, c := m.Update(msg)
		if c != nil {
			next = append(next, c)
		}
	}
	return next
}

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(t, new(client.MockFetcher), WithDefaults("de", "2026"))

	assert.Equal(t, holiday.Criteria{Country: "DE", Year: "2026"}, m.Criteria())
	assert.Equal(t, explorer.Idle, m.SearchState())
	assert.NotNil(t, m.Init())
}

func TestYearSelectionClamps(t *testing.T) {
	m := newTestModel(t, new(client.MockFetcher), WithDefaults("US", "2021"))

	m.Update(key(tea.KeyTab))
	require.True(t, m.uiState.FocusYear())

	m.Update(key(tea.KeyLeft))
	m.Update(key(tea.KeyLeft))
	assert.Equal(t, fmt.Sprint(holiday.FirstYear), m.Criteria().Year)

	for i := 0; i < 20; i++ {
		m.Update(key(tea.KeyRight))
	}
	assert.Equal(t, fmt.Sprint(holiday.LastYear), m.Criteria().Year)

	m.Update(key(tea.KeyShiftTab))
	assert.False(t, m.uiState.FocusYear())
}

func TestTypingCountryUpdatesMatches(t *testing.T) {
	m := newTestModel(t, new(client.MockFetcher), WithDefaults("", "2024"))

	for _, r := range "japan" {
		m.Update(runes(string(r)))
	}
	assert.Equal(t, "JP", m.Criteria().Country)

	for range "japan" {
		m.Update(key(tea.KeyBackspace))
	}
	assert.Equal(t, "", m.Criteria().Country)
}

func TestEnterWithoutCountryShowsValidationError(t *testing.T) {
	fetcher := new(client.MockFetcher)
	m := newTestModel(t, fetcher, WithDefaults("zzzz", "2024"))

	_, cmd := m.Update(key(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Equal(t, explorer.ErrorShown, m.SearchState())
	assert.Contains(t, ansi.Strip(m.View()), apperrors.MsgValidation)
	fetcher.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
}

func TestSearchShowsResults(t *testing.T) {
	fetcher := new(client.MockFetcher)
	fetcher.On("Fetch", mock.Anything, holiday.Criteria{Country: "US", Year: "2024"}).
		Return(holiday.Response{Success: true, Holidays: []holiday.Record{
			{Name: "Independence Day", DateYear: 2024, DateMonth: 7, DateDay: 4, Country: "US"},
			{Name: "Thanksgiving Day", DateYear: 2024, DateMonth: 11, DateDay: 28, Country: "US"},
		}}, nil).Once()
	m := newTestModel(t, fetcher)

	_, cmd := m.Update(key(tea.KeyEnter))
	assert.True(t, m.loading)
	assert.Equal(t, explorer.Loading, m.SearchState())
	assert.Contains(t, ansi.Strip(m.View()), "Loading holidays...")

	settle(t, m, cmd)

	assert.False(t, m.loading)
	assert.Equal(t, explorer.ResultsShown, m.SearchState())
	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Independence Day")
	assert.Contains(t, view, "July 4, 2024")
	assert.Less(t, strings.Index(view, "Independence Day"), strings.Index(view, "Thanksgiving Day"))
	fetcher.AssertExpectations(t)
}

func TestFormDisabledWhileLoading(t *testing.T) {
	fetcher := new(client.MockFetcher)
	fetcher.On("Fetch", mock.Anything, mock.Anything).Return(holiday.Response{Success: true}, nil).Once()
	m := newTestModel(t, fetcher)

	_, cmd := m.Update(key(tea.KeyEnter))
	require.True(t, m.loading)

	_, again := m.Update(key(tea.KeyEnter))
	assert.Nil(t, again, "a second submit is ignored while loading")
	m.Update(runes("x"))
	assert.Equal(t, "US", m.country.input.Value())
	m.Update(key(tea.KeyTab))
	assert.False(t, m.uiState.FocusYear())

	settle(t, m, cmd)
	assert.Equal(t, explorer.EmptyShown, m.SearchState())
	assert.Contains(t, ansi.Strip(m.View()), "No holidays found")
	fetcher.AssertNumberOfCalls(t, "Fetch", 1)
}

func TestValidationErrorReplacesEmptyBox(t *testing.T) {
	fetcher := new(client.MockFetcher)
	fetcher.On("Fetch", mock.Anything, holiday.Criteria{Country: "US", Year: "2024"}).
		Return(holiday.Response{Success: true}, nil).Once()
	m := newTestModel(t, fetcher)

	_, cmd := m.Update(key(tea.KeyEnter))
	settle(t, m, cmd)
	require.Equal(t, explorer.EmptyShown, m.SearchState())

	m.Update(key(tea.KeyBackspace))
	m.Update(key(tea.KeyBackspace))
	m.Update(runes("zzzz"))
	require.Equal(t, "", m.Criteria().Country)

	_, cmd = m.Update(key(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, explorer.ErrorShown, m.SearchState())
	view := ansi.Strip(m.View())
	assert.Contains(t, view, apperrors.MsgValidation)
	assert.NotContains(t, view, "No holidays found")
	fetcher.AssertNumberOfCalls(t, "Fetch", 1)
}

func TestTransportFailureLeavesLoadingOff(t *testing.T) {
	fetcher := new(client.MockFetcher)
	fetcher.On("Fetch", mock.Anything, mock.Anything).
		Return(holiday.Response{}, apperrors.Transport(errors.New("dial tcp: connection refused"))).Once()
	m := newTestModel(t, fetcher)

	_, cmd := m.Update(key(tea.KeyEnter))
	settle(t, m, cmd)

	assert.False(t, m.loading)
	assert.Equal(t, explorer.ErrorShown, m.SearchState())
	view := ansi.Strip(m.View())
	assert.Contains(t, view, apperrors.MsgTransport)
	assert.NotContains(t, view, "connection refused")
}

func TestNewSearchClearsPreviousError(t *testing.T) {
	fetcher := new(client.MockFetcher)
	fetcher.On("Fetch", mock.Anything, mock.Anything).Return(holiday.Response{Success: false, Error: "quota exceeded"}, nil).Once()
	fetcher.On("Fetch", mock.Anything, mock.Anything).Return(holiday.Response{Success: true, Holidays: []holiday.Record{{Name: "Labor Day"}}}, nil).Once()
	m := newTestModel(t, fetcher)

	_, cmd := m.Update(key(tea.KeyEnter))
	settle(t, m, cmd)
	require.Contains(t, ansi.Strip(m.View()), "quota exceeded")

	_, cmd = m.Update(key(tea.KeyEnter))
	assert.NotContains(t, ansi.Strip(m.View()), "quota exceeded")
	settle(t, m, cmd)

	view := ansi.Strip(m.View())
	assert.NotContains(t, view, "quota exceeded")
	assert.Contains(t, view, "Labor Day")
}

func TestStaggeredReveal(t *testing.T) {
	fetcher := new(client.MockFetcher)
	fetcher.On("Fetch", mock.Anything, mock.Anything).Return(holiday.Response{Success: true, Holidays: []holiday.Record{
		{Name: "One"}, {Name: "Two"}, {Name: "Three"},
	}}, nil).Once()
	m := newTestModel(t, fetcher, WithStagger(time.Millisecond))

	_, cmd := m.Update(key(tea.KeyEnter))
	next := settle(t, m, cmd)
	assert.Equal(t, 1, m.revealed)
	require.NotEmpty(t, next)

	stale := revealTickMsg{generation: m.generation - 1}
	m.Update(stale)
	assert.Equal(t, 1, m.revealed)

	m.Update(revealTickMsg{generation: m.generation})
	m.Update(revealTickMsg{generation: m.generation})
	assert.Equal(t, 3, m.revealed)
	_, done := m.Update(revealTickMsg{generation: m.generation})
	assert.Nil(t, done)
	assert.Equal(t, 3, m.revealed)
}

func TestSpinnerTickIgnoredWhenIdle(t *testing.T) {
	m := newTestModel(t, new(client.MockFetcher))

	_, cmd := m.Update(spinner.TickMsg{})
	assert.Nil(t, cmd)
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := newTestModel(t, new(client.MockFetcher))
		_, cmd := m.Update(key(k))
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestResultsScroll(t *testing.T) {
	records := make([]holiday.Record, 20)
	for i := range records {
		records[i] = holiday.Record{Name: fmt.Sprintf("Holiday %d", i), DateYear: 2024, DateMonth: 1, DateDay: holiday.Int(i + 1)}
	}
	fetcher := new(client.MockFetcher)
	fetcher.On("Fetch", mock.Anything, mock.Anything).Return(holiday.Response{Success: true, Holidays: records}, nil).Once()
	m := newTestModel(t, fetcher)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})

	_, cmd := m.Update(key(tea.KeyEnter))
	settle(t, m, cmd)

	vp := m.uiState.GetViewport()
	require.Greater(t, vp.TotalLineCount(), vp.Height)
	assert.Contains(t, ansi.Strip(m.View()), "pgup/pgdn: scroll")

	m.Update(key(tea.KeyPgDown))
	assert.Greater(t, vp.YOffset, 0)
}

func TestWithContextIsUsedForRequests(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "tui")
	fetcher := new(client.MockFetcher)
	fetcher.On("Fetch", mock.MatchedBy(func(c context.Context) bool {
		return c.Value(ctxKey{}) == "tui" && client.RequestIDFromContext(c) != ""
	}), mock.Anything).Return(holiday.Response{Success: true}, nil).Once()
	m := newTestModel(t, fetcher, WithContext(ctx))

	_, cmd := m.Update(key(tea.KeyEnter))
	settle(t, m, cmd)

	fetcher.AssertExpectations(t)
}
