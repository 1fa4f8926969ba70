// Package update holds UI update logic for the TUI.
package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tesso57/livescroll/internal/poller"
	"github.com/tesso57/livescroll/internal/tui/intent"
	"github.com/tesso57/livescroll/internal/tui/state"
)

// FrameInterval is the redraw pace of the event loop. Every frame tick
// forces a render even when no state changed, so the interface stays
// responsive at roughly ten frames per second.
const FrameInterval = 100 * time.Millisecond

// PollResultMsg carries one poller outcome into the event loop.
type PollResultMsg poller.Result

// FrameTickMsg is emitted on every redraw tick.
type FrameTickMsg time.Time

// WaitForResult creates a command that blocks on the poller channel and
// delivers the next Result. The event loop re-arms it after every
// message, so the channel is drained without ever blocking input or
// redraw.
func WaitForResult(results <-chan poller.Result) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-results
		if !ok {
			return nil
		}
		return PollResultMsg(res)
	}
}

// FrameTick creates the command that schedules the next redraw tick.
func FrameTick() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return FrameTickMsg(t)
	})
}

// HandlePollResult merges a successful batch into the timeline and
// updates the status line. A failed fetch only touches the status; the
// item list keeps its last known-good contents.
func HandlePollResult(s *state.ModelState, msg PollResultMsg) {
	s.Loading = false
	if msg.Err != nil {
		s.Timeline.SetStatus(fmt.Sprintf("fetch failed: %v", msg.Err))
		return
	}
	added := s.Timeline.Merge(msg.Items)
	s.Timeline.SetStatus(fmt.Sprintf("fetched %d new items", added))
}

// HandleKeyMsg processes key input. It returns the command to run and
// whether the key was recognized; unbound keys are no-ops.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		return tea.Quit, true
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	switch parsed.Type {
	case intent.Quit:
		return tea.Quit, true
	case intent.ScrollUp:
		s.Timeline.ScrollUp()
	case intent.ScrollDown:
		s.Timeline.ScrollDown()
	case intent.Top:
		s.Timeline.Top()
	case intent.Bottom:
		s.Timeline.Bottom()
	case intent.None:
		return nil, false
	}
	return nil, true
}

// HandleWindowSize records the current terminal dimensions.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height
}
