package view

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/tesso57/livescroll/internal/config"
	"github.com/tesso57/livescroll/internal/domain/feed"
)

func testTheme() config.ThemeConfig {
	return config.ThemeConfig{Date: "240", Source: "6", Status: "3", Count: "2", Highlight: "238"}
}

func testItems(n int) []feed.Item {
	items := make([]feed.Item, n)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range items {
		ts := base.Add(-time.Duration(i) * time.Hour)
		items[i] = feed.Item{
			ID:         string(rune('a' + i)),
			Title:      "Item " + string(rune('A'+i)),
			Published:  &ts,
			SourceName: "Test",
		}
	}
	return items
}

func TestRenderEmptyDimensions(t *testing.T) {
	assert.Empty(t, Render(Props{Width: 0, Height: 0, Theme: testTheme()}))
}

func TestRenderNoItems(t *testing.T) {
	out := Render(Props{
		Visible: 10,
		Status:  "starting...",
		Width:   80,
		Height:  11,
		Theme:   testTheme(),
	})
	assert.Contains(t, out, "waiting for items")
	assert.Contains(t, out, "0 items")
}

func TestRenderShowsVisibleWindow(t *testing.T) {
	out := Render(Props{
		Items:   testItems(10),
		Offset:  2,
		Visible: 3,
		Status:  "fetched 10 new items",
		Width:   120,
		Height:  4,
		Theme:   testTheme(),
	})

	assert.Contains(t, out, "Item C")
	assert.Contains(t, out, "Item E")
	assert.NotContains(t, out, "Item B", "items above the offset are not drawn")
	assert.NotContains(t, out, "Item F", "items below the viewport are not drawn")
}

func TestRenderFooter(t *testing.T) {
	out := Render(Props{
		Items:   testItems(3),
		Visible: 5,
		Status:  "fetch failed: timeout",
		Width:   120,
		Height:  6,
		Theme:   testTheme(),
	})
	assert.Contains(t, out, "fetch failed: timeout")
	assert.Contains(t, out, "3 items")
}

func TestRenderUndatedItem(t *testing.T) {
	out := Render(Props{
		Items:   []feed.Item{{ID: "u", Title: "Undated", SourceName: "Test"}},
		Visible: 3,
		Width:   120,
		Height:  4,
		Theme:   testTheme(),
	})
	assert.Contains(t, out, "no date")
}

func TestRenderNarrowWidth(t *testing.T) {
	out := Render(Props{
		Items:   testItems(3),
		Visible: 3,
		Status:  "ok",
		Width:   20,
		Height:  4,
		Theme:   testTheme(),
	})
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 20)
	}
}

func TestRenderLineCountMatchesViewport(t *testing.T) {
	out := Render(Props{
		Items:   testItems(2),
		Visible: 8,
		Status:  "ok",
		Width:   80,
		Height:  9,
		Theme:   testTheme(),
	})
	assert.Equal(t, 9, len(strings.Split(out, "\n")), "short lists are padded to keep the footer pinned")
}
