package search

import (
	"strings"
	"unicode/utf8"
)

// Tokens shorter than this never fuzzy-match; a two-character subsequence
// hits far too much of any index to be useful.
const minFuzzyLen = 3

// Match reports whether token matches fieldText. Both arguments must
// already be lower-cased; matching is case-sensitive at this layer, the
// document projections and the query tokenizer do the folding.
//
// A contiguous substring hit is an exact match. Otherwise tokens of at
// least three characters fall back to a greedy in-order subsequence scan:
// every token character must appear in fieldText in order, not necessarily
// adjacent. Insertions inside the field are tolerated, reordered or missing
// token characters are not.
func Match(fieldText, token string) (matched, exact bool) {
	if strings.Contains(fieldText, token) {
		return true, true
	}
	if utf8.RuneCountInString(token) < minFuzzyLen {
		return false, false
	}
	return subsequenceMatch(fieldText, token), false
}

func subsequenceMatch(text, token string) bool {
	want := []rune(token)
	i := 0
	for _, ch := range text {
		if i < len(want) && want[i] == ch {
			i++
			if i == len(want) {
				return true
			}
		}
	}
	return i == len(want)
}
