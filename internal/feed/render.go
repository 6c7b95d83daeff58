package feed

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgechols/fastsearch/internal/textutil"
)

// contentPreviewLen limits untitled item bodies to a short excerpt.
const contentPreviewLen = 180

var (
	feedTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Bold(true)

	feedTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCC"))

	feedTimeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888"))

	feedMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888")).
				Italic(true)
)

// Render formats up to maxItems feed entries for the terminal. An empty
// feed renders the MsgEmpty placeholder.
func Render(f *Feed, maxItems int, now time.Time) string {
	if maxItems < 1 {
		maxItems = DefaultMaxItems
	}

	items := f.Items
	if len(items) > maxItems {
		items = items[:maxItems]
	}
	if len(items) == 0 {
		return feedMessageStyle.Render(MsgEmpty)
	}

	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch {
		case item.Title != "":
			b.WriteString(feedTitleStyle.Render(item.Title))
			if item.URL != "" {
				b.WriteString("\n" + feedTextStyle.Render(item.URL))
			}
		case item.ContentHTML != "":
			b.WriteString(feedTextStyle.Render(TruncateHTML(item.ContentHTML, contentPreviewLen)))
		}
		if item.DatePublished != "" {
			b.WriteString("\n" + feedTimeStyle.Render(RelativeTime(now, item.DatePublished)))
		}
	}
	return b.String()
}

// RenderHTML formats up to maxItems entries as the HTML fragment the
// static site's feed container expects. Text content is escaped; item
// markup mirrors the site's stylesheet hooks.
func RenderHTML(f *Feed, maxItems int, now time.Time) string {
	if maxItems < 1 {
		maxItems = DefaultMaxItems
	}

	items := f.Items
	if len(items) > maxItems {
		items = items[:maxItems]
	}
	if len(items) == 0 {
		return `<p class="microfeed-empty">` + MsgEmpty + `</p>`
	}

	var b strings.Builder
	for _, item := range items {
		b.WriteString(`<div class="microfeed-item">`)
		if item.Image != "" {
			b.WriteString(`<img src="` + textutil.EscapeHTML(item.Image) + `" alt="" class="microfeed-thumb" loading="lazy">`)
		}
		switch {
		case item.Title != "":
			url := item.URL
			if url == "" {
				url = "#"
			}
			b.WriteString(`<p class="microfeed-title"><a href="` + textutil.EscapeHTML(url) + `">` +
				textutil.EscapeHTML(item.Title) + `</a></p>`)
		case item.ContentHTML != "":
			b.WriteString(`<p class="microfeed-text">` +
				textutil.EscapeHTML(TruncateHTML(item.ContentHTML, contentPreviewLen)) + `</p>`)
		}
		if item.DatePublished != "" {
			b.WriteString(`<span class="microfeed-time">` +
				textutil.EscapeHTML(RelativeTime(now, item.DatePublished)) + `</span>`)
		}
		b.WriteString(`</div>`)
	}
	return b.String()
}
