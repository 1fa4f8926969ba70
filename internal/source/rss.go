package source

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/tesso57/livescroll/internal/domain/feed"
)

const feedAcceptHeader = "application/rss+xml, application/atom+xml, application/feed+json, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"

const untitled = "(untitled)"

type acceptTransport struct {
	base http.RoundTripper
}

func (t acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", feedAcceptHeader)
	}
	return base.RoundTrip(clone)
}

// ParserFunc is exposed for testing.
// It allows mocking the feed parsing logic.
var ParserFunc = defaultParser

func defaultParser(ctx context.Context, url string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = "livescroll/1.0"
	fp.Client = &http.Client{Transport: acceptTransport{base: http.DefaultTransport}}
	return fp.ParseURLWithContext(url, ctx)
}

// RSS fetches and parses a single RSS 2.0 feed over HTTP.
type RSS struct {
	url   string
	label string
}

// NewRSS creates an RSS source for the given feed URL. The label is the
// short name displayed next to items from this feed.
func NewRSS(url, label string) *RSS {
	return &RSS{url: strings.TrimSpace(url), label: label}
}

// Name returns the source's display label.
func (s *RSS) Name() string {
	return s.label
}

// Fetch performs one HTTP GET and converts the response into items.
// The batch is returned in document order; a document that cannot be
// parsed at all yields a single FetchError.
func (s *RSS) Fetch(ctx context.Context) ([]feed.Item, error) {
	if s.url == "" {
		return nil, &FetchError{Source: s.label, Err: errors.New("feed url is empty")}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	parsed, err := ParserFunc(ctx, s.url)
	if err != nil {
		return nil, &FetchError{Source: s.label, Err: err}
	}

	items := make([]feed.Item, 0, len(parsed.Items))
	for _, raw := range parsed.Items {
		if raw == nil {
			continue
		}
		items = append(items, s.convertItem(raw))
	}
	return items, nil
}

func (s *RSS) convertItem(raw *gofeed.Item) feed.Item {
	// gofeed leaves PublishedParsed nil when the date is missing or
	// unparsable; the item is kept and sorts after dated ones.
	var published *time.Time
	if raw.PublishedParsed != nil {
		published = raw.PublishedParsed
	} else if raw.UpdatedParsed != nil {
		published = raw.UpdatedParsed
	}

	title := strings.TrimSpace(raw.Title)
	if title == "" {
		title = untitled
	}

	return feed.Item{
		ID:         deriveID(raw),
		Title:      title,
		Link:       raw.Link,
		Summary:    raw.Description,
		Published:  published,
		SourceName: s.label,
	}
}

// deriveID computes the stable identity for one entry: the feed-native
// GUID when present, else the link, else a hash of title and publish
// date so that no entry is silently dropped for lacking an identifier.
func deriveID(raw *gofeed.Item) string {
	if raw.GUID != "" {
		return raw.GUID
	}
	if raw.Link != "" {
		return raw.Link
	}
	sum := sha256.Sum256([]byte(raw.Title + "|" + raw.Published))
	return hex.EncodeToString(sum[:])
}
