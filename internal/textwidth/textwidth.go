// ABOUTME: Display-width measurement and truncation for result rows
// ABOUTME: Grapheme-aware via uniseg/runewidth with a fast path for plain ASCII

package textwidth

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Width returns the number of terminal columns s occupies. Control bytes
// count as zero; wide runes (CJK, emoji) count per grapheme cluster.
func Width(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w += clusterWidth(cluster)
	}
	return w
}

// Truncate shortens s so that it occupies at most w columns. When s is cut,
// the last column is replaced by an ellipsis character.
func Truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if Width(s) <= w {
		return s
	}

	var b strings.Builder
	used := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		cw := clusterWidth(cluster)
		if used+cw > w-1 {
			break
		}
		b.WriteString(cluster)
		used += cw
	}
	b.WriteString("…")
	return b.String()
}

// isPlainASCII reports whether s is printable ASCII only, in which case
// byte length equals display width.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

// clusterWidth returns the display width of one grapheme cluster, taken
// from its first rune.
func clusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	if r < 0x20 {
		return 0
	}
	return runewidth.RuneWidth(r)
}
