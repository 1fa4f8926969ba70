// Package feed defines the core feed models.
package feed

import "time"

// Item represents a single normalized feed entry.
//
// Every source converts its native entries into this shape so that
// de-duplication, sorting, and rendering stay source-agnostic. Two items
// are the same logical entry iff their IDs are equal; the ID is derived
// once at ingestion and never recomputed.
type Item struct {
	ID         string
	Title      string
	Link       string
	Summary    string
	Published  *time.Time
	SourceName string
}

// Newer reports whether the item sorts before other in a newest-first
// timeline. Items without a publication date sort after all dated items.
func (i Item) Newer(other Item) bool {
	if i.Published == nil {
		return false
	}
	if other.Published == nil {
		return true
	}
	return i.Published.After(*other.Published)
}
