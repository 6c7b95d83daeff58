package feed

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var trailingWord = regexp.MustCompile(`\s+\S*$`)

// TruncateHTML strips markup from an HTML fragment and limits the
// remaining text to max runes, cutting back to the previous word boundary
// and appending an ellipsis. Fragments whose text already fits are
// returned whole.
func TruncateHTML(fragment string, max int) string {
	text := extractText(fragment)

	runes := []rune(text)
	if len(runes) <= max {
		return text
	}

	cut := string(runes[:max])
	cut = trailingWord.ReplaceAllString(cut, "")
	return cut + "…"
}

// extractText walks the parsed fragment and concatenates its text nodes.
// html.Parse never fails on fragments, it builds a best-effort tree, so a
// parse error falls back to the raw input.
func extractText(fragment string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return b.String()
}
