package search

import "testing"

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fieldText   string
		token       string
		wantMatched bool
		wantExact   bool
	}{
		{
			name:        "substring is exact",
			fieldText:   "search index",
			token:       "index",
			wantMatched: true,
			wantExact:   true,
		},
		{
			name:        "two char substring is exact",
			fieldText:   "cat",
			token:       "ca",
			wantMatched: true,
			wantExact:   true,
		},
		{
			name:        "short token never fuzzy matches",
			fieldText:   "cat",
			token:       "ct",
			wantMatched: false,
		},
		{
			name:        "subsequence in order",
			fieldText:   "search index",
			token:       "sidx",
			wantMatched: true,
			wantExact:   false,
		},
		{
			name:        "reordered subsequence fails",
			fieldText:   "search index",
			token:       "xis",
			wantMatched: false,
		},
		{
			name:        "missing character fails",
			fieldText:   "search",
			token:       "srz",
			wantMatched: false,
		},
		{
			name:        "empty field never matches",
			fieldText:   "",
			token:       "abc",
			wantMatched: false,
		},
		{
			name:        "insertions inside field tolerated",
			fieldText:   "hugo static site",
			token:       "hss",
			wantMatched: true,
			wantExact:   false,
		},
		{
			name:        "repeated token characters need repeats in field",
			fieldText:   "aba",
			token:       "aaa",
			wantMatched: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			matched, exact := Match(tt.fieldText, tt.token)
			if matched != tt.wantMatched {
				t.Errorf("Match(%q, %q) matched = %v, want %v", tt.fieldText, tt.token, matched, tt.wantMatched)
			}
			if exact != tt.wantExact {
				t.Errorf("Match(%q, %q) exact = %v, want %v", tt.fieldText, tt.token, exact, tt.wantExact)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "simple", query: "Hello World", want: []string{"hello", "world"}},
		{name: "collapses whitespace runs", query: "  a \t b\n c  ", want: []string{"a", "b", "c"}},
		{name: "blank yields nothing", query: "   ", want: nil},
		{name: "empty yields nothing", query: "", want: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Tokenize(tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.query, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
