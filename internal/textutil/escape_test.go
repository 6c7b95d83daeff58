package textutil

import "testing"

func TestEscapeHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain text untouched", in: "hello world", want: "hello world"},
		{name: "angle brackets", in: "<script>", want: "&lt;script&gt;"},
		{name: "ampersand first", in: "a & b", want: "a &amp; b"},
		{name: "quotes", in: `say "hi" y'all`, want: "say &quot;hi&quot; y&#039;all"},
		{name: "already escaped doubles", in: "&amp;", want: "&amp;amp;"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := EscapeHTML(tt.in); got != tt.want {
				t.Errorf("EscapeHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
