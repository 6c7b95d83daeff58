package widget

import (
	"strings"

	"github.com/rgechols/fastsearch/internal/textutil"
)

// RenderHTML materializes the render projection as the HTML fragment the
// static site injects into its results list: one message <li> or one <li>
// per result with a focusable link. All interpolated values are escaped.
func RenderHTML(st State) string {
	entries, msg := Render(st)
	if msg != "" {
		return `<li class="search-message">` + textutil.EscapeHTML(msg) + `</li>`
	}

	var b strings.Builder
	for _, entry := range entries {
		b.WriteString(`<li><a href="`)
		b.WriteString(textutil.EscapeHTML(entry.Permalink))
		b.WriteString(`" tabindex="0"><span class="title">`)
		b.WriteString(textutil.EscapeHTML(entry.Title))
		b.WriteString(`</span><span class="meta">`)
		b.WriteString(textutil.EscapeHTML(entry.Section))
		b.WriteString(" · ")
		b.WriteString(textutil.EscapeHTML(entry.Date))
		b.WriteString(`</span></a></li>`)
	}
	return b.String()
}
