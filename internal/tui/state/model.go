package state

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/holiday-explorer/internal/client"
	"github.com/cristianoliveira/holiday-explorer/internal/explorer"
	"github.com/cristianoliveira/holiday-explorer/internal/holiday"
	"github.com/cristianoliveira/holiday-explorer/internal/logging"
	"github.com/cristianoliveira/holiday-explorer/internal/render"
)

const (
	// formLines is the height taken by everything above and below the results.
	formLines             = 9
	defaultViewportWidth  = 80
	defaultViewportHeight = 24
)

// Model represents the TUI model for bubbletea.
type Model struct {
	uiState *UIState
	orch    *explorer.Orchestrator
	ctx     context.Context

	// Form
	country *countryPicker
	years   []int
	yearIdx int
	spinner spinner.Model

	// Result regions, written only through the explorer.View methods.
	loading  bool
	cards    []render.Card
	revealed int
	empty    bool
	errMsg   string

	stagger    time.Duration
	generation int
}

var _ explorer.View = (*Model)(nil)

// Option configures a Model.
type Option func(*modelConfig)

type modelConfig struct {
	country string
	year    string
	stagger time.Duration
	logger  logging.Logger
	ctx     context.Context
}

// WithDefaults preselects the form values.
func WithDefaults(country, year string) Option {
	return func(c *modelConfig) {
		c.country = country
		c.year = year
	}
}

// WithStagger sets the delay between revealed cards. Zero shows all at once.
func WithStagger(d time.Duration) Option {
	return func(c *modelConfig) {
		c.stagger = d
	}
}

// WithLogger sets the logger handed to the orchestrator.
func WithLogger(l logging.Logger) Option {
	return func(c *modelConfig) {
		c.logger = l
	}
}

// WithContext sets the context requests run under.
func WithContext(ctx context.Context) Option {
	return func(c *modelConfig) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// NewModel creates a new TUI model searching through fetcher.
func NewModel(fetcher client.Fetcher, opts ...Option) *Model {
	cfg := modelConfig{
		country: "US",
		year:    time.Now().Format("2006"),
		stagger: render.DefaultStagger,
		logger:  logging.Noop(),
		ctx:     context.Background(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := &Model{
		uiState: NewUIState(),
		ctx:     cfg.ctx,
		country: newCountryPicker(cfg.country),
		years:   holiday.Years(),
		yearIdx: holiday.YearIndex(cfg.year),
		spinner: s,
		stagger: cfg.stagger,
	}
	m.orch = explorer.New(m, fetcher,
		explorer.WithLogger(cfg.logger),
		explorer.WithRenderer(render.NewRenderer(cfg.stagger)))
	return m
}

// Init initializes the TUI model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case tea.MouseMsg:
		var cmd tea.Cmd
		*m.uiState.GetViewport(), cmd = m.uiState.GetViewport().Update(msg)
		return m, cmd
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case searchSettledMsg:
		m.orch.Settle(msg.pending, msg.resp, msg.err)
		return m, m.revealCmd()
	case revealTickMsg:
		return m.handleRevealTick(msg)
	}
	return m, nil
}

// SearchState returns the orchestrator state.
func (m *Model) SearchState() explorer.State {
	return m.orch.State()
}

// Criteria returns the values currently selected in the form.
func (m *Model) Criteria() holiday.Criteria {
	c := holiday.Criteria{Country: m.country.Selected()}
	if m.yearIdx >= 0 && m.yearIdx < len(m.years) {
		c.Year = strconv.Itoa(m.years[m.yearIdx])
	}
	return c
}

// submit starts a search for the form values. While a search is loading the
// form is disabled and submit is a no-op.
func (m *Model) submit() tea.Cmd {
	if m.loading {
		return nil
	}
	p, ok := m.orch.Begin(m.Criteria())
	if !ok {
		return nil
	}
	orch, ctx := m.orch, m.ctx
	fetch := func() tea.Msg {
		resp, err := orch.Do(ctx, p)
		return searchSettledMsg{pending: p, resp: resp, err: err}
	}
	return tea.Batch(m.spinner.Tick, fetch)
}

func (m *Model) revealCmd() tea.Cmd {
	if m.revealed >= len(m.cards) {
		return nil
	}
	gen := m.generation
	return tea.Tick(m.stagger, func(time.Time) tea.Msg {
		return revealTickMsg{generation: gen}
	})
}

func (m *Model) handleRevealTick(msg revealTickMsg) (tea.Model, tea.Cmd) {
	if msg.generation != m.generation || m.revealed >= len(m.cards) {
		return m, nil
	}
	m.revealed++
	m.updateViewportContent()
	return m, m.revealCmd()
}
