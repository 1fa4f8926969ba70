// Package source defines the pluggable feed source abstraction and its
// concrete implementations.
package source

import (
	"context"
	"fmt"

	"github.com/tesso57/livescroll/internal/domain/feed"
)

// Source is the capability every feed backend implements.
//
// Fetch is called repeatedly by the poller on its own goroutine, so
// implementations must not share mutable state with the UI. Each call is
// independent; de-duplication is the caller's job. The batch is returned
// in the feed's native order, final ordering belongs to the timeline.
type Source interface {
	// Name returns the label shown next to items and in status messages.
	Name() string
	// Fetch retrieves the latest batch of items.
	Fetch(ctx context.Context) ([]feed.Item, error)
}

// FetchError reports a failed fetch, covering transport failures,
// non-success HTTP responses, and wholly unparsable documents. Malformed
// individual entries are not errors; they degrade per field instead.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
