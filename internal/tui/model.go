// Package tui implements the coordinating event loop of the application.
//
// The Model is the sole owner of the Timeline: poll results arrive as
// messages over the poller channel, key presses arrive as bubbletea key
// messages, and every state mutation happens sequentially inside Update.
// No locks are needed because nothing else ever touches the Timeline.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/tesso57/livescroll/internal/config"
	"github.com/tesso57/livescroll/internal/domain/feed"
	"github.com/tesso57/livescroll/internal/poller"
	"github.com/tesso57/livescroll/internal/tui/state"
	"github.com/tesso57/livescroll/internal/tui/update"
	"github.com/tesso57/livescroll/internal/tui/view"
)

// Model represents the main application state.
type Model struct {
	cfg     *config.Config
	results <-chan poller.Result
	logger  *zap.Logger
	state   *state.ModelState
}

// NewModel creates a new application model draining the given poller
// channel.
func NewModel(cfg *config.Config, results <-chan poller.Result, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Model{
		cfg:     cfg,
		results: results,
		logger:  logger,
		state:   newModelState(cfg),
	}
}

// Init arms the poll-channel receive and the redraw tick.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		update.WaitForResult(m.results),
		update.FrameTick(),
		m.state.Spinner.Tick,
	)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := update.HandleKeyMsg(m.state, msg); handled {
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case update.PollResultMsg:
		before := m.state.Timeline.Len()
		update.HandlePollResult(m.state, msg)
		m.logger.Debug("poll result applied",
			zap.String("source", msg.Source),
			zap.Int("added", m.state.Timeline.Len()-before),
			zap.Bool("failed", msg.Err != nil))
		return m, update.WaitForResult(m.results)
	case update.FrameTickMsg:
		// Re-arm the tick; returning from Update triggers the redraw.
		return m, update.FrameTick()
	}

	if m.state.Loading {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the application view from the current timeline snapshot.
func (m *Model) View() string {
	visible := m.state.Height - 1
	if visible < 1 {
		visible = 1
	}
	offset := m.state.Timeline.Clamp(visible)

	return view.Render(view.Props{
		Items:   m.state.Timeline.Items(),
		Offset:  offset,
		Visible: visible,
		Status:  m.state.Timeline.Status(),
		Loading: m.state.Loading,
		Spinner: m.state.Spinner.View(),
		Width:   m.state.Width,
		Height:  m.state.Height,
		Theme:   m.cfg.Theme,
		Help:    m.state.Help.ShortHelpView(m.state.Keys.ShortHelp()),
	})
}

// Timeline exposes the merged item store for tests.
func (m *Model) Timeline() *feed.Timeline {
	return m.state.Timeline
}

func newModelState(cfg *config.Config) *state.ModelState {
	timeline := feed.NewTimeline()
	timeline.SetStatus("starting...")

	return &state.ModelState{
		Timeline: timeline,
		Keys:     state.NewKeyMap(cfg.KeyMap),
		Help:     help.New(),
		Spinner:  newSpinner(),
		Loading:  true,
	}
}

func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return s
}
