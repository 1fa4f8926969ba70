package feed

import "sort"

// Timeline is the single mutable store of merged feed items.
//
// It owns ordering (newest-first), uniqueness (by Item.ID), the scroll
// offset, and the transient status line. It is not safe for concurrent
// use; the coordinating event loop is its only reader and writer.
type Timeline struct {
	items  []Item
	seen   map[string]struct{}
	offset int
	status string
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{seen: make(map[string]struct{})}
}

// Merge integrates a batch of items into the timeline and returns the
// number of genuinely new items added.
//
// Items whose ID is already present are ignored outright, so the
// first-seen copy wins and never moves. New items are appended in batch
// order and the whole list is re-sorted newest-first; the sort is stable,
// so items sharing a timestamp (or lacking one) keep the order in which
// they were first merged. Undated items sort after all dated items.
func (t *Timeline) Merge(batch []Item) int {
	added := 0
	for _, item := range batch {
		if _, ok := t.seen[item.ID]; ok {
			continue
		}
		t.seen[item.ID] = struct{}{}
		t.items = append(t.items, item)
		added++
	}
	if added > 0 {
		sort.SliceStable(t.items, func(i, j int) bool {
			return t.items[i].Newer(t.items[j])
		})
	}
	return added
}

// Items returns the merged items, newest first. Callers must treat the
// returned slice as read-only.
func (t *Timeline) Items() []Item {
	return t.items
}

// Len returns the number of merged items.
func (t *Timeline) Len() int {
	return len(t.items)
}

// Status returns the transient status message.
func (t *Timeline) Status() string {
	return t.status
}

// SetStatus replaces the transient status message.
func (t *Timeline) SetStatus(status string) {
	t.status = status
}

// Offset returns the index of the first visible item.
func (t *Timeline) Offset() int {
	return t.offset
}

// ScrollUp moves the view up by one item, stopping at the top.
func (t *Timeline) ScrollUp() {
	if t.offset > 0 {
		t.offset--
	}
}

// ScrollDown moves the view down by one item, stopping at the last item.
// The final bound against the viewport height is applied by Clamp at
// render time.
func (t *Timeline) ScrollDown() {
	if t.offset < len(t.items)-1 {
		t.offset++
	}
}

// Top jumps the view to the first item.
func (t *Timeline) Top() {
	t.offset = 0
}

// Bottom jumps the view to the end of the list. Clamp pulls the offset
// back so the last page stays full.
func (t *Timeline) Bottom() {
	if len(t.items) > 0 {
		t.offset = len(t.items) - 1
	}
}

// Clamp bounds the offset to [0, max(0, len-viewport)] for the given
// viewport height and returns the clamped value. The renderer calls this
// every frame, since only it knows the current viewport height.
func (t *Timeline) Clamp(viewport int) int {
	max := len(t.items) - viewport
	if max < 0 {
		max = 0
	}
	if t.offset > max {
		t.offset = max
	}
	if t.offset < 0 {
		t.offset = 0
	}
	return t.offset
}
