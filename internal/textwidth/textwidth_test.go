// ABOUTME: Tests for display-width measurement and ellipsis truncation
// ABOUTME: Covers ASCII, CJK, emoji, control bytes, and narrow viewports

package textwidth

import "testing"

func TestWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "ascii", input: "hello", want: 5},
		{name: "cjk", input: "你好", want: 4},
		{name: "mixed", input: "go语言", want: 6},
		{name: "emoji", input: "👍", want: 2},
		{name: "tab counts zero", input: "a\tb", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Width(tt.input); got != tt.want {
				t.Errorf("Width(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		w     int
		want  string
	}{
		{name: "fits untouched", input: "short", w: 10, want: "short"},
		{name: "exact fit", input: "12345", w: 5, want: "12345"},
		{name: "cut with ellipsis", input: "abcdefgh", w: 5, want: "abcd…"},
		{name: "zero width", input: "abc", w: 0, want: ""},
		{name: "width one", input: "abc", w: 1, want: "…"},
		{name: "wide rune does not split", input: "ab你好", w: 5, want: "ab你…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Truncate(tt.input, tt.w)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.w, got, tt.want)
			}
			if Width(got) > tt.w {
				t.Errorf("Truncate(%q, %d) overflows: width %d", tt.input, tt.w, Width(got))
			}
		})
	}
}
