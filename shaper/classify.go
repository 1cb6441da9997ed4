package shaper

import (
	"unicode/utf8"

	unibidi "golang.org/x/text/unicode/bidi"

	"github.com/VincentWei/MiniGUI-sub011/bidi"
)

var asciiTypes = func() (t [utf8.RuneSelf]bidi.CharType) {
	for c := 'a'; c <= 'z'; c++ {
		t[c] = bidi.TypeLTR
		t[c-'a'+'A'] = bidi.TypeLTR
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = bidi.TypeWeak
	}
	return t
}()

// Classify returns the bidi category of the first character of ch. ASCII is
// answered from a table; other runes use their Unicode bidi class.
func Classify(ch []byte) bidi.CharType {
	if len(ch) == 0 {
		return bidi.TypeNeutral
	}
	if ch[0] < utf8.RuneSelf {
		return asciiTypes[ch[0]]
	}
	r, size := utf8.DecodeRune(ch)
	if r == utf8.RuneError && size <= 1 {
		return bidi.TypeNeutral
	}
	return classifyRune(r)
}

func classifyRune(r rune) bidi.CharType {
	if r < utf8.RuneSelf {
		return asciiTypes[r]
	}
	p, _ := unibidi.LookupRune(r)
	switch p.Class() {
	case unibidi.L:
		return bidi.TypeLTR
	case unibidi.R, unibidi.AL:
		return bidi.TypeRTL
	case unibidi.EN, unibidi.AN:
		return bidi.TypeWeak
	default:
		return bidi.TypeNeutral
	}
}
