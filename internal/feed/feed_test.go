package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetchDecodesFeed(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": [
			{"title": "A Post", "url": "https://example.com/a", "date_published": "2024-01-01T12:00:00Z"},
			{"content_html": "<p>short note</p>", "date_published": "2024-01-02T12:00:00Z"}
		]}`))
	}))
	defer srv.Close()

	f, err := Fetch(context.Background(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if len(f.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(f.Items))
	}
	if f.Items[0].Title != "A Post" {
		t.Errorf("unexpected title %q", f.Items[0].Title)
	}
	if f.Items[1].ContentHTML != "<p>short note</p>" {
		t.Errorf("unexpected content %q", f.Items[1].ContentHTML)
	}
}

func TestFetchErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-success status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "gone", http.StatusGone)
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"items": [`))
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			if _, err := Fetch(context.Background(), srv.Client(), srv.URL); !errors.Is(err, ErrFetch) {
				t.Fatalf("expected ErrFetch, got %v", err)
			}
		})
	}
}

func TestRelativeTime(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		published string
		want      string
	}{
		{name: "seconds ago", published: "2024-06-15T11:59:30Z", want: "just now"},
		{name: "minutes ago", published: "2024-06-15T11:45:00Z", want: "15m ago"},
		{name: "hours ago", published: "2024-06-15T06:00:00Z", want: "6h ago"},
		{name: "days ago", published: "2024-06-12T12:00:00Z", want: "3d ago"},
		{name: "old posts get a date", published: "2024-01-01T12:00:00Z", want: "1/1/2024"},
		{name: "unparseable passes through", published: "not-a-date", want: "not-a-date"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := RelativeTime(now, tt.published); got != tt.want {
				t.Errorf("RelativeTime(%q) = %q, want %q", tt.published, got, tt.want)
			}
		})
	}
}

func TestTruncateHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fragment string
		max      int
		want     string
	}{
		{
			name:     "short text untouched",
			fragment: "<p>hello world</p>",
			max:      50,
			want:     "hello world",
		},
		{
			name:     "cuts at word boundary with ellipsis",
			fragment: "<p>the quick brown fox jumps over the lazy dog</p>",
			max:      20,
			want:     "the quick brown fox…",
		},
		{
			name:     "nested markup stripped",
			fragment: "<div>one <em>two</em> <a href='#'>three</a></div>",
			max:      50,
			want:     "one two three",
		},
		{
			name:     "plain text passes through",
			fragment: "no markup here",
			max:      50,
			want:     "no markup here",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := TruncateHTML(tt.fragment, tt.max); got != tt.want {
				t.Errorf("TruncateHTML(%q, %d) = %q, want %q", tt.fragment, tt.max, got, tt.want)
			}
		})
	}
}

func TestRenderEmptyFeed(t *testing.T) {
	t.Parallel()

	got := Render(&Feed{}, 5, time.Now())
	if !strings.Contains(got, MsgEmpty) {
		t.Fatalf("expected empty-feed message, got %q", got)
	}
}

func TestRenderCapsItems(t *testing.T) {
	t.Parallel()

	f := &Feed{}
	for i := 0; i < 10; i++ {
		f.Items = append(f.Items, Item{Title: "post", URL: "https://example.com"})
	}

	got := Render(f, 5, time.Now())
	if n := strings.Count(got, "post"); n != 5 {
		t.Fatalf("expected 5 rendered items, got %d", n)
	}
}

func TestRenderHTMLEscapesAndCaps(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	f := &Feed{Items: []Item{
		{Title: `Tom & Jerry`, URL: "https://example.com/a?x=1&y=2", DatePublished: "2024-06-15T11:00:00Z"},
		{ContentHTML: "<p>a micro post body</p>"},
	}}

	got := RenderHTML(f, 5, now)
	if !strings.Contains(got, "Tom &amp; Jerry") {
		t.Errorf("expected escaped title, got %q", got)
	}
	if !strings.Contains(got, "https://example.com/a?x=1&amp;y=2") {
		t.Errorf("expected escaped url, got %q", got)
	}
	if !strings.Contains(got, "1h ago") {
		t.Errorf("expected relative time, got %q", got)
	}
	if !strings.Contains(got, "a micro post body") {
		t.Errorf("expected stripped content text, got %q", got)
	}

	empty := RenderHTML(&Feed{}, 5, now)
	if !strings.Contains(empty, MsgEmpty) {
		t.Errorf("expected empty message, got %q", empty)
	}
}
