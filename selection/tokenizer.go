package selection

import "strings"

// Granularity is the unit a Tokenizer moves or measures by.
type Granularity int

const (
	Character Granularity = iota
	Word
	Sentence
	LineUnit
	Block
	Document
)

func (g Granularity) String() string {
	switch g {
	case Character:
		return "character"
	case Word:
		return "word"
	case Sentence:
		return "sentence"
	case LineUnit:
		return "line"
	case Block:
		return "block"
	case Document:
		return "document"
	}
	return "unknown"
}

// Direction is a storage direction for tokenizer queries.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Tokenizer answers platform text-input tokenizer queries. Word and
// sentence analysis runs over the text of the whole document, so raw
// results may span blocks; every answer is cut back at the block holding
// the query position.
type Tokenizer struct {
	m *Model
}

// NewTokenizer returns a tokenizer over m's snapshot.
func NewTokenizer(m *Model) *Tokenizer {
	return &Tokenizer{m: m}
}

// document is the concatenated layout text with each layout's start offset.
type document struct {
	text   string
	starts []int
}

func (t *Tokenizer) document() document {
	var sb strings.Builder
	c := t.m.c
	d := document{starts: make([]int, c.NumLayouts())}
	for l := 0; l < c.NumLayouts(); l++ {
		d.starts[l] = sb.Len()
		sb.WriteString(c.Layout(l).Text())
	}
	d.text = sb.String()
	return d
}

// global maps p to its document offset. It reports false when p does not
// resolve in the current snapshot.
func (t *Tokenizer) global(d document, p Position) (int, bool) {
	if !Valid(t.m.c, p.Index) {
		return 0, false
	}
	c, ok := localChar(t.m.c, p)
	if !ok {
		return 0, false
	}
	return d.starts[p.Layout] + c, true
}

// local maps a document offset back to a position. An offset on a layout
// seam resolves to the end of the earlier layout.
func (t *Tokenizer) local(d document, g int) (Position, bool) {
	c := t.m.c
	for l := 0; l < c.NumLayouts(); l++ {
		if _, ok := LayoutFirst(c, l); !ok {
			continue
		}
		end := d.starts[l] + len(c.Layout(l).Text())
		if g <= end {
			return positionAt(c, l, g-d.starts[l])
		}
	}
	return t.m.End()
}

func (t *Tokenizer) segments(g Granularity, text string) []Segment {
	if g == Sentence {
		return t.m.segmenter.Sentences(text)
	}
	return t.m.segmenter.Words(text)
}

// RangeEnclosingPosition returns the unit of granularity g holding p,
// clamped to p's block.
func (t *Tokenizer) RangeEnclosingPosition(p Position, g Granularity, dir Direction) (Range, bool) {
	m := t.m
	if !Valid(m.c, p.Index) {
		return Range{}, false
	}
	switch g {
	case Character:
		i := p.Index
		var ok bool
		switch {
		case dir == Forward && p.Affinity == Upstream:
			i, ok = Next(m.c, i)
		case dir == Backward && p.Affinity == Downstream:
			i, ok = Previous(m.c, i)
		default:
			ok = Valid(m.c, i)
		}
		if !ok {
			return Range{}, false
		}
		return Range{start: Down(i), end: Up(i)}, true
	case LineUnit:
		first, ok1 := firstFrom(m.c, Index{Layout: p.Layout, Line: p.Line})
		last, ok2 := m.lineLast(p.Layout, p.Line)
		if !ok1 || !ok2 {
			return Range{}, false
		}
		return Range{start: Down(first), end: Up(last)}, true
	case Block:
		return m.BlockRange(p)
	case Document:
		return m.DocumentRange()
	}
	d := t.document()
	gp, ok := t.global(d, p)
	if !ok {
		return Range{}, false
	}
	s, ok := segmentAt(t.segments(g, d.text), gp)
	if !ok {
		return Range{}, false
	}
	start, _ := t.local(d, s.Start)
	end, _ := t.local(d, s.End)
	return m.ClampRange(Range{start: start, end: end}, p.Layout)
}

func (m *Model) lineLast(l, n int) (Index, bool) {
	if l < 0 || l >= m.c.NumLayouts() || n < 0 || n >= m.c.Layout(l).NumLines() {
		return Index{}, false
	}
	ln := m.c.Layout(l).Line(n)
	for r := ln.NumRuns() - 1; r >= 0; r-- {
		if k := ln.Run(r).NumSlices(); k > 0 {
			return Index{Layout: l, Line: n, Run: r, Slice: k - 1}, true
		}
	}
	return Index{}, false
}

// IsPositionAtBoundary reports whether p is at a boundary of unit g when
// looking in dir. Block boundaries count as boundaries of every unit.
func (t *Tokenizer) IsPositionAtBoundary(p Position, g Granularity, dir Direction) bool {
	m := t.m
	if g != Character && m.IsPositionAtBlockBoundary(p) {
		return true
	}
	switch g {
	case Character:
		return Valid(m.c, p.Index)
	case LineUnit:
		r, ok := t.RangeEnclosingPosition(p, LineUnit, dir)
		return ok && (p == r.start || p == r.end)
	case Block, Document:
		r, ok := t.RangeEnclosingPosition(p, g, dir)
		return ok && (p == r.start || p == r.end)
	}
	d := t.document()
	gp, ok := t.global(d, p)
	if !ok {
		return false
	}
	for _, s := range t.segments(g, d.text) {
		if !s.IsWord {
			continue
		}
		if dir == Forward && s.End == gp || dir == Backward && s.Start == gp {
			return true
		}
	}
	return false
}

// IsPositionWithinTextUnit reports whether the character next to p in dir
// belongs to a unit of granularity g. Stepping out of a block is never
// within a unit.
func (t *Tokenizer) IsPositionWithinTextUnit(p Position, g Granularity, dir Direction) bool {
	m := t.m
	if br, ok := m.BlockRange(p); ok {
		if dir == Forward && p == br.end || dir == Backward && p == br.start {
			return false
		}
	}
	switch g {
	case Character, LineUnit, Block, Document:
		return Valid(m.c, p.Index)
	}
	d := t.document()
	gp, ok := t.global(d, p)
	if !ok {
		return false
	}
	at := gp
	if dir == Backward {
		at--
	}
	for _, s := range t.segments(g, d.text) {
		if s.Contains(at) {
			return s.IsWord
		}
	}
	return false
}

// PositionToBoundary moves from p to the next boundary of unit g in dir.
// Moves that would leave p's block stop at the block's start or end.
func (t *Tokenizer) PositionToBoundary(p Position, g Granularity, dir Direction) (Position, bool) {
	m := t.m
	switch g {
	case Character:
		step := 1
		if dir == Backward {
			step = -1
		}
		return m.Position(p, step)
	case LineUnit, Block, Document:
		r, ok := t.RangeEnclosingPosition(p, g, dir)
		if !ok {
			return Position{}, false
		}
		if dir == Backward {
			return r.start, true
		}
		return r.end, true
	}
	d := t.document()
	gp, ok := t.global(d, p)
	if !ok {
		return Position{}, false
	}
	segs := t.segments(g, d.text)
	target := -1
	if dir == Forward {
		for _, s := range segs {
			if s.IsWord && s.End > gp {
				target = s.End
				break
			}
		}
	} else {
		for k := len(segs) - 1; k >= 0; k-- {
			if s := segs[k]; s.IsWord && s.Start < gp {
				target = s.Start
				break
			}
		}
	}
	br, _ := m.BlockRange(p)
	if target < 0 {
		if dir == Backward {
			return br.start, true
		}
		return br.end, true
	}
	blockLo := d.starts[p.Layout]
	blockHi := blockLo + len(m.c.Layout(p.Layout).Text())
	switch {
	case target <= blockLo:
		return br.start, true
	case target >= blockHi:
		return br.end, true
	}
	return positionAt(m.c, p.Layout, target-blockLo)
}
