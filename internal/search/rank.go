package search

import (
	"sort"
	"strings"

	"github.com/rgechols/fastsearch/internal/index"
)

// Scoring weights. A title prefix dominates any other match; a fuzzy or
// non-prefix title hit comes next; description and section hits are weak
// signals that can stack with each other but never with a title hit for
// the same token.
const (
	weightTitlePrefix = 3.0
	weightTitleMatch  = 2.0
	weightSecondary   = 0.5
)

// Fields toggles which document projections participate in matching.
type Fields struct {
	Title       bool
	Description bool
	Section     bool
}

// Options configures a ranking pass.
type Options struct {
	Fields Fields
	// MaxResults truncates the ranked list; values < 1 mean unlimited.
	MaxResults int
}

// Tokenize trims and lower-cases a raw query and splits it on runs of
// whitespace. The returned tokens are never empty strings; a blank query
// yields an empty slice.
func Tokenize(query string) []string {
	return strings.Fields(strings.ToLower(strings.TrimSpace(query)))
}

// Rank scores docs against tokens and returns the qualifying documents in
// strictly descending score order, ties broken by source index order. A
// document qualifies only when every token matches at least one enabled
// field. An empty token list returns nothing; callers distinguish the
// blank-query state before calling.
func Rank(docs []index.Document, tokens []string, opts Options) []index.Document {
	if len(tokens) == 0 {
		return nil
	}

	type scored struct {
		doc   index.Document
		score float64
	}

	qualified := make([]scored, 0, len(docs))
	for _, doc := range docs {
		score, ok := scoreDocument(doc, tokens, opts.Fields)
		if !ok {
			continue
		}
		qualified = append(qualified, scored{doc: doc, score: score})
	}

	sort.SliceStable(qualified, func(i, j int) bool {
		return qualified[i].score > qualified[j].score
	})

	if opts.MaxResults > 0 && len(qualified) > opts.MaxResults {
		qualified = qualified[:opts.MaxResults]
	}

	out := make([]index.Document, len(qualified))
	for i, q := range qualified {
		out[i] = q.doc
	}
	return out
}

// scoreDocument accumulates the per-token contributions for one document.
// The boolean result is false when any token fails to match, which
// disqualifies the document outright regardless of partial score.
func scoreDocument(doc index.Document, tokens []string, fields Fields) (float64, bool) {
	var score float64
	for _, token := range tokens {
		matched := false

		if fields.Title {
			if strings.HasPrefix(doc.SearchTitle, token) {
				score += weightTitlePrefix
				matched = true
			} else if ok, _ := Match(doc.SearchTitle, token); ok {
				score += weightTitleMatch
				matched = true
			}
		}

		if !matched {
			if fields.Description && strings.Contains(doc.SearchDescription, token) {
				score += weightSecondary
				matched = true
			}
			if fields.Section && strings.Contains(doc.SearchSection, token) {
				score += weightSecondary
				matched = true
			}
		}

		if !matched {
			return 0, false
		}
	}
	return score, true
}
