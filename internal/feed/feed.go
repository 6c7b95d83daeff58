package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/araddon/dateparse"
)

// Status messages shown in place of the item list.
const (
	MsgEmpty = "No recent posts."
	MsgError = "Could not load micro.blog feed."
)

// DefaultMaxItems caps rendered feed items when no limit is configured.
const DefaultMaxItems = 5

// ErrFetch covers every way a feed can fail to arrive: network errors,
// non-success statuses, and malformed JSON. Callers show MsgError either
// way, so the categories are not split further.
var ErrFetch = errors.New("feed: fetch failed")

// Item is one entry of a JSON feed. Either Title (linked via URL) or
// ContentHTML carries the body; micro posts usually have only the latter.
type Item struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Image         string `json:"image"`
	ContentHTML   string `json:"content_html"`
	DatePublished string `json:"date_published"`
}

// Feed is the envelope of a JSON feed document.
type Feed struct {
	Items []Item `json:"items"`
}

// Fetch retrieves and decodes the JSON feed at url. A nil client falls
// back to http.DefaultClient.
func Fetch(ctx context.Context, client *http.Client, url string) (*Feed, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrFetch, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	var feed Feed
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	return &feed, nil
}

// RelativeTime formats published relative to now: "just now" under a
// minute, then minute/hour/day buckets up to thirty days, then the plain
// date. Unparseable timestamps are returned verbatim.
func RelativeTime(now time.Time, published string) string {
	then, err := dateparse.ParseAny(published)
	if err != nil {
		return published
	}

	diff := now.Sub(then)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return then.Format("1/2/2006")
	}
}
