package shaper

import "github.com/VincentWei/MiniGUI-sub011/bidi"

// resolveLevels assigns an embedding level to every character.
//
// Digits count as the preceding strong direction when neutrals are resolved
// (W7), neutrals between runs of one direction take it and all others take
// the paragraph direction (N1, N2). Levels follow I1 and I2.
func resolveLevels(types []bidi.CharType, base bidi.Direction) []uint8 {
	n := len(types)
	eff := make([]bidi.Direction, n)
	prev := base
	for i, t := range types {
		switch t {
		case bidi.TypeLTR:
			eff[i], prev = bidi.LTR, bidi.LTR
		case bidi.TypeRTL:
			eff[i], prev = bidi.RTL, bidi.RTL
		case bidi.TypeWeak:
			eff[i] = prev
		default:
			eff[i] = bidi.Neutral
		}
	}

	for i := 0; i < n; {
		if eff[i] != bidi.Neutral {
			i++
			continue
		}
		j := i
		for j < n && eff[j] == bidi.Neutral {
			j++
		}
		before, after := base, base
		if i > 0 {
			before = eff[i-1]
		}
		if j < n {
			after = eff[j]
		}
		d := base
		if before == after {
			d = before
		}
		for k := i; k < j; k++ {
			eff[k] = d
		}
		i = j
	}

	var baseLevel uint8
	if base == bidi.RTL {
		baseLevel = 1
	}
	levels := make([]uint8, n)
	for i := range types {
		switch {
		case types[i] == bidi.TypeWeak:
			if baseLevel == 0 && eff[i] == bidi.LTR {
				levels[i] = 0
			} else {
				levels[i] = 2
			}
		case eff[i] == bidi.RTL:
			levels[i] = 1
		default:
			levels[i] = baseLevel * 2
		}
	}
	return levels
}

// visualOrder returns logical indices in visual order (rule L2): from the
// highest level down to 1, every maximal run at that level or above is
// reversed.
func visualOrder(levels []uint8) []int {
	n := len(levels)
	order := make([]int, n)
	lv := make([]uint8, n)
	var maxLevel uint8
	for i, l := range levels {
		order[i] = i
		lv[i] = l
		if l > maxLevel {
			maxLevel = l
		}
	}

	for level := maxLevel; level >= 1; level-- {
		for i := 0; i < n; {
			if lv[i] < level {
				i++
				continue
			}
			j := i
			for j < n && lv[j] >= level {
				j++
			}
			reverseRange(order, lv, i, j)
			i = j
		}
	}
	return order
}

func reverseRange(order []int, lv []uint8, start, end int) {
	for i, j := start, end-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
		lv[i], lv[j] = lv[j], lv[i]
	}
}
