package bidi

// Insertion is where, and in which direction, typed text joins the logical
// text.
type Insertion struct {
	Offset int
	Dir    Direction
}

// ResolveInsertion decides the logical splice offset and run direction for
// ins typed with the caret at glyph index caret.
//
// The direction comes from the first character of ins when it is strong or
// weak. Neutral characters take the direction of the caret's neighbors when
// they agree and the paragraph direction otherwise. A lone neighbor that is
// itself weak (a digit) lends its direction to the neutral, so separators
// typed after a number stay in the number's run.
//
// The splice offset keeps new text attached to the run it visually extends:
// RTL text goes logically before a left RTL neighbor or after a right RTL
// neighbor, and LTR text mirrors that.
//
// On an empty line the paragraph direction is c's base direction when c
// implements BaseDirectioner.
func ResolveInsertion(text []byte, m GlyphMap, c Classifier, caret int, ins []byte) Insertion {
	caret = clampInt(caret, 0, len(m))
	n := neighbors{
		text:  text,
		m:     m,
		left:  caret - 1,
		right: caret,
		para:  ParagraphDirectionOr(m, BaseDirectionOf(c)),
	}
	n.leftDir = m.Dir(n.left)
	n.rightDir = m.Dir(n.right)

	dir := Neutral
	if len(ins) > 0 && c != nil {
		dir = c.Classify(ins).Direction()
	}
	if !dir.Known() {
		dir = n.resolveNeutral(c)
	}
	if !dir.Known() {
		dir = n.para
	}

	return Insertion{Offset: n.spliceOffset(dir), Dir: dir}
}

// CaretAfterInsert returns the caret glyph index once ins, n bytes long, has
// been spliced and the text re-shaped into m.
//
// The caret lands on the glyph holding the last inserted byte; for LTR text
// it moves past that glyph.
func CaretAfterInsert(m GlyphMap, ins Insertion, n int) int {
	if n <= 0 {
		if g, ok := ByteToGlyph(m, ins.Offset); ok {
			return g
		}
		return len(m)
	}
	g, ok := ByteToGlyph(m, ins.Offset+n-1)
	if !ok {
		return len(m)
	}
	if ins.Dir == RTL {
		return g
	}
	return g + 1
}

type neighbors struct {
	text []byte
	m    GlyphMap

	left, right       int
	leftDir, rightDir Direction
	para              Direction
}

func (n neighbors) resolveNeutral(c Classifier) Direction {
	switch {
	case n.leftDir == n.rightDir:
		if n.leftDir.Known() {
			return n.leftDir
		}
		return n.para
	case n.leftDir.Known() && !n.rightDir.Known():
		if n.isWeak(c, n.left) {
			return n.leftDir
		}
		return n.para
	case n.rightDir.Known() && !n.leftDir.Known():
		if n.isWeak(c, n.right) {
			return n.rightDir
		}
		return n.para
	default:
		return n.para
	}
}

func (n neighbors) isWeak(c Classifier, i int) bool {
	if c == nil || i < 0 || i >= len(n.m) {
		return false
	}
	e := n.m[i]
	if e.ByteOffset < 0 || e.End() > len(n.text) {
		return false
	}
	return c.Classify(n.text[e.ByteOffset:e.End()]) == TypeWeak
}

func (n neighbors) spliceOffset(dir Direction) int {
	if dir == RTL {
		switch {
		case n.leftDir == RTL:
			return n.m[n.left].ByteOffset
		case n.rightDir == RTL:
			return n.m[n.right].End()
		case n.leftDir == LTR:
			return n.m[n.left].End()
		case n.rightDir == LTR:
			if n.para == LTR {
				return 0
			}
			return len(n.text)
		default:
			return 0
		}
	}

	switch {
	case n.rightDir == LTR:
		return n.m[n.right].ByteOffset
	case n.leftDir == LTR:
		return n.m[n.left].End()
	case n.rightDir == RTL:
		return n.m[n.right].End()
	case n.leftDir == RTL:
		if n.para == RTL {
			return 0
		}
		return len(n.text)
	default:
		return 0
	}
}
