// Package state holds UI state types for the TUI.
package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"

	"github.com/tesso57/livescroll/internal/domain/feed"
)

// ModelState holds the presentation state for the TUI.
//
// The Timeline is owned exclusively by the coordinating event loop; the
// poller only ever reaches it through channel messages.
type ModelState struct {
	Timeline *feed.Timeline
	Keys     KeyMap
	Help     help.Model
	Spinner  spinner.Model
	Loading  bool
	Width    int
	Height   int
}
