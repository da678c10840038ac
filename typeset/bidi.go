package typeset

import (
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
)

var rtlScripts = map[string]bool{
	"Adlm": true,
	"Arab": true,
	"Hebr": true,
	"Mand": true,
	"Nkoo": true,
	"Rohg": true,
	"Samr": true,
	"Syrc": true,
	"Thaa": true,
	"Yezi": true,
}

// DirectionForLocale returns the paragraph direction for tag: right to left
// when its script is written right to left, left to right otherwise.
func DirectionForLocale(tag language.Tag) bidi.Direction {
	script, _ := tag.Script()
	if rtlScripts[script.String()] {
		return bidi.RightToLeft
	}
	return bidi.LeftToRight
}

// strongDirection returns the direction of c's first character, or
// bidi.Neutral when it is not strongly directional. Numbers count as left
// to right.
func strongDirection(c *cluster) bidi.Direction {
	if c.isImage() || c.bc != 0 {
		return bidi.Neutral
	}
	p, _ := bidi.LookupString(c.text)
	switch p.Class() {
	case bidi.L, bidi.EN, bidi.AN:
		return bidi.LeftToRight
	case bidi.R, bidi.AL:
		return bidi.RightToLeft
	}
	return bidi.Neutral
}

// paragraphDirection returns the direction of the first strong cluster,
// left to right when there is none.
func paragraphDirection(cs []cluster) bidi.Direction {
	for i := range cs {
		if d := strongDirection(&cs[i]); d != bidi.Neutral {
			return d
		}
	}
	return bidi.LeftToRight
}

// resolveDirections sets the direction of every cluster. A neutral takes
// the direction of the strong clusters around it when both agree and the
// paragraph direction otherwise. Newlines separate paragraphs.
func resolveDirections(cs []cluster, para bidi.Direction) {
	strong := make([]bidi.Direction, len(cs))
	next := make([]bidi.Direction, len(cs))
	n := para
	for i := len(cs) - 1; i >= 0; i-- {
		strong[i] = strongDirection(&cs[i])
		if cs[i].isNewline() {
			n = para
		}
		next[i] = n
		if strong[i] != bidi.Neutral {
			n = strong[i]
		}
	}
	prev := para
	for i := range cs {
		c := &cs[i]
		switch {
		case c.isNewline():
			c.dir = para
			prev = para
		case strong[i] != bidi.Neutral:
			c.dir = strong[i]
			prev = strong[i]
		case prev == next[i]:
			c.dir = prev
		default:
			c.dir = para
		}
	}
}

// embeddingLevel returns the level of a run of direction d in a paragraph
// of direction para.
func embeddingLevel(d, para bidi.Direction) int {
	switch {
	case d == bidi.RightToLeft:
		return 1
	case para == bidi.RightToLeft:
		return 2
	}
	return 0
}

// visualOrder returns the indices of runs with the given levels in display
// order: from the highest level down to the lowest odd level, every
// maximal sequence at that level or above is reversed.
func visualOrder(levels []int) []int {
	order := make([]int, len(levels))
	hi, lo := 0, -1
	for i, l := range levels {
		order[i] = i
		hi = max(hi, l)
		if l%2 == 1 && (lo < 0 || l < lo) {
			lo = l
		}
	}
	if lo < 0 {
		return order
	}
	for lvl := hi; lvl >= lo; lvl-- {
		for i := 0; i < len(order); {
			if levels[order[i]] < lvl {
				i++
				continue
			}
			j := i
			for j < len(order) && levels[order[j]] >= lvl {
				j++
			}
			slices.Reverse(order[i:j])
			i = j
		}
	}
	return order
}
