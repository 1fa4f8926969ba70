// Package view renders the timeline list and status bar.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tesso57/livescroll/internal/config"
	"github.com/tesso57/livescroll/internal/domain/feed"
	"github.com/tesso57/livescroll/internal/tui/textutil"
)

// Props aggregates everything Render needs for one frame. The view is a
// pure function of these values; it never mutates application state.
type Props struct {
	Items   []feed.Item
	Offset  int
	Visible int
	Status  string
	Loading bool
	Spinner string
	Width   int
	Height  int
	Theme   config.ThemeConfig
	Help    string
}

// Render draws the complete UI for one frame: the visible window of the
// item list on top and a one-line status bar at the bottom.
func Render(p Props) string {
	if p.Width <= 0 || p.Height <= 0 {
		return ""
	}
	list := renderList(p)
	footer := renderFooter(p)
	return lipgloss.JoinVertical(lipgloss.Left, list, footer)
}

func renderList(p Props) string {
	if len(p.Items) == 0 {
		empty := "waiting for items..."
		if p.Loading {
			empty = p.Spinner + " fetching feed..."
		}
		return pad(empty, p.Visible)
	}

	dateStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Theme.Date))
	sourceStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Theme.Source))
	cursorStyle := lipgloss.NewStyle().Background(lipgloss.Color(p.Theme.Highlight)).Bold(true)

	end := p.Offset + p.Visible
	if end > len(p.Items) {
		end = len(p.Items)
	}

	rows := make([]string, 0, end-p.Offset)
	for i := p.Offset; i < end; i++ {
		item := p.Items[i]
		prefix := "  "
		if i == p.Offset {
			prefix = "▸ "
		}
		row := fmt.Sprintf("%s%s %s  %s",
			prefix,
			dateStyle.Render(fmt.Sprintf("%-16s", textutil.FormatDate(item.Published))),
			textutil.SingleLine(item.Title),
			sourceStyle.Render("["+item.SourceName+"]"),
		)
		row = textutil.Truncate(row, p.Width)
		if i == p.Offset {
			row = cursorStyle.Render(row)
		}
		rows = append(rows, row)
	}

	return pad(strings.Join(rows, "\n"), p.Visible)
}

func renderFooter(p Props) string {
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Theme.Status))
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Theme.Count))

	status := p.Status
	if p.Loading {
		status = p.Spinner + " " + status
	}

	footer := fmt.Sprintf(" %s  %s  %s",
		statusStyle.Render(status),
		countStyle.Render(fmt.Sprintf("%d items", len(p.Items))),
		p.Help,
	)
	return textutil.Truncate(footer, p.Width)
}

// pad stretches content to the given number of lines so the footer stays
// pinned to the bottom of the screen.
func pad(content string, lines int) string {
	have := strings.Count(content, "\n") + 1
	if have >= lines {
		return content
	}
	return content + strings.Repeat("\n", lines-have)
}
