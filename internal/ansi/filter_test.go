package ansi

import "testing"

func TestFilterSafe(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "safe sequences pass through",
			text: "\x1b[31mRed\x1b[0m",
			want: "\x1b[31mRed\x1b[0m",
		},
		{
			name: "osc title dropped",
			text: "\x1b[31mRed\x1b]0;Title\x07",
			want: "\x1b[31mRed",
		},
		{
			name: "osc mid-stream dropped",
			text: "before\x1b]52;c;payload\x07after",
			want: "beforeafter",
		},
		{
			name: "unknown csi dropped",
			text: "a\x1b[3gb",
			want: "ab",
		},
		{
			name: "cursor and erase sequences kept",
			text: "\x1b[2J\x1b[10;20H\x1b[2A\x1b[s\x1b[u\x1b[K",
			want: "\x1b[2J\x1b[10;20H\x1b[2A\x1b[s\x1b[u\x1b[K",
		},
		{
			name: "dec private modes kept",
			text: "\x1b[?25lhide\x1b[?25h",
			want: "\x1b[?25lhide\x1b[?25h",
		},
		{
			name: "plain text untouched",
			text: "no sequences at all",
			want: "no sequences at all",
		},
		{
			name: "empty input",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilterSafe(tt.text); got != tt.want {
				t.Errorf("FilterSafe(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestFilterSafeIdempotent(t *testing.T) {
	inputs := []string{
		"\x1b[31mRed\x1b]0;Title\x07",
		"mixed\x1b[3g content \x1b[44mkept\x1b[0m",
		"\x1b]0;no terminator",
		"plain",
	}

	for _, text := range inputs {
		once := FilterSafe(text)
		twice := FilterSafe(once)
		if once != twice {
			t.Errorf("FilterSafe not idempotent on %q: %q != %q", text, once, twice)
		}
	}
}
