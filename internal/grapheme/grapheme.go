package grapheme

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Span is the half-open byte range [Start, End) of one grapheme cluster.
type Span struct {
	Start int
	End   int
}

// Bounds returns the byte spans of the grapheme clusters in text, in logical
// order. The spans tile [0, len(text)).
func Bounds(text []byte) []Span {
	if len(text) == 0 {
		return nil
	}
	out := make([]Span, 0, len(text))
	state := -1
	rest := text
	off := 0
	for len(rest) > 0 {
		var cluster []byte
		cluster, rest, _, state = uniseg.Step(rest, state)
		out = append(out, Span{Start: off, End: off + len(cluster)})
		off += len(cluster)
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Truncate returns the prefix of text holding at most n grapheme clusters.
func Truncate(text string, n int) string {
	if n <= 0 || text == "" {
		return ""
	}
	var sb strings.Builder
	state := -1
	rest := text
	for i := 0; i < n && rest != ""; i++ {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		sb.WriteString(cluster)
	}
	return sb.String()
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
