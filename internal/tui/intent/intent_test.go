package intent

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/tesso57/livescroll/internal/config"
	"github.com/tesso57/livescroll/internal/tui/state"
)

func testKeys() state.KeyMap {
	return state.NewKeyMap(config.KeyMapConfig{
		Up:     "up,k",
		Down:   "down,j",
		Top:    "home,g",
		Bottom: "end,G",
		Quit:   "q,esc",
	})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFromKeyMsg(t *testing.T) {
	keys := testKeys()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Type
	}{
		{name: "q quits", msg: runes("q"), want: Quit},
		{name: "esc quits", msg: tea.KeyMsg{Type: tea.KeyEsc}, want: Quit},
		{name: "k scrolls up", msg: runes("k"), want: ScrollUp},
		{name: "arrow up scrolls up", msg: tea.KeyMsg{Type: tea.KeyUp}, want: ScrollUp},
		{name: "j scrolls down", msg: runes("j"), want: ScrollDown},
		{name: "arrow down scrolls down", msg: tea.KeyMsg{Type: tea.KeyDown}, want: ScrollDown},
		{name: "g jumps to top", msg: runes("g"), want: Top},
		{name: "home jumps to top", msg: tea.KeyMsg{Type: tea.KeyHome}, want: Top},
		{name: "G jumps to bottom", msg: runes("G"), want: Bottom},
		{name: "end jumps to bottom", msg: tea.KeyMsg{Type: tea.KeyEnd}, want: Bottom},
		{name: "unbound key is a no-op", msg: runes("z"), want: None},
		{name: "enter is a no-op", msg: tea.KeyMsg{Type: tea.KeyEnter}, want: None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromKeyMsg(tt.msg, keys).Type)
		})
	}
}
