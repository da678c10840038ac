package selection

// BlockRange returns the range spanning the whole layout holding p.
func (m *Model) BlockRange(p Position) (Range, bool) {
	return m.layoutRange(p.Layout)
}

func (m *Model) layoutRange(l int) (Range, bool) {
	first, ok := LayoutFirst(m.c, l)
	if !ok {
		return Range{}, false
	}
	last, _ := LayoutLast(m.c, l)
	return Range{start: Down(first), end: Up(last)}, true
}

// BlockStart returns the first position of p's block.
func (m *Model) BlockStart(p Position) (Position, bool) {
	r, ok := m.BlockRange(p)
	return r.start, ok
}

// BlockEnd returns the last position of p's block.
func (m *Model) BlockEnd(p Position) (Position, bool) {
	r, ok := m.BlockRange(p)
	return r.end, ok
}

// IsPositionAtBlockBoundary reports whether p is its block's start or end.
func (m *Model) IsPositionAtBlockBoundary(p Position) bool {
	r, ok := m.BlockRange(p)
	return ok && (p == r.start || p == r.end)
}

// MoveToBlockStart returns the start of p's block, or of the previous block
// when p is already at its block's start.
func (m *Model) MoveToBlockStart(p Position) (Position, bool) {
	start, ok := m.BlockStart(p)
	if !ok {
		return Position{}, false
	}
	if p != start {
		return start, true
	}
	for l := p.Layout - 1; l >= 0; l-- {
		if r, ok := m.layoutRange(l); ok {
			return r.start, true
		}
	}
	return start, true
}

// MoveToBlockEnd returns the end of p's block, or of the next block when p
// is already at its block's end.
func (m *Model) MoveToBlockEnd(p Position) (Position, bool) {
	end, ok := m.BlockEnd(p)
	if !ok {
		return Position{}, false
	}
	if p != end {
		return end, true
	}
	for l := p.Layout + 1; l < m.c.NumLayouts(); l++ {
		if r, ok := m.layoutRange(l); ok {
			return r.end, true
		}
	}
	return end, true
}

// ClampRange intersects r with the block range of layout l.
func (m *Model) ClampRange(r Range, l int) (Range, bool) {
	b, ok := m.layoutRange(l)
	if !ok {
		return Range{}, false
	}
	return r.Clamp(b)
}

// segmentRange maps the segment of p's layout text holding p back to
// positions, clamped to the block.
func (m *Model) segmentRange(p Position, segs func(string) []Segment) (Range, bool) {
	c, ok := localChar(m.c, p)
	if !ok {
		return Range{}, false
	}
	s, ok := segmentAt(segs(m.c.Layout(p.Layout).Text()), c)
	if !ok {
		return Range{}, false
	}
	start, _ := positionAt(m.c, p.Layout, s.Start)
	end, _ := positionAt(m.c, p.Layout, s.End)
	return m.ClampRange(Range{start: start, end: end}, p.Layout)
}

// WordRange returns the word (or inter-word run) holding p.
func (m *Model) WordRange(p Position) (Range, bool) {
	return m.segmentRange(p, m.segmenter.Words)
}

// SentenceRange returns the sentence holding p.
func (m *Model) SentenceRange(p Position) (Range, bool) {
	return m.segmentRange(p, m.segmenter.Sentences)
}

// NextWord returns the end of the first word ending after p. From the end of
// a block it moves to the start of the next block.
func (m *Model) NextWord(p Position) (Position, bool) {
	c, ok := localChar(m.c, p)
	if !ok {
		return Position{}, false
	}
	text := m.c.Layout(p.Layout).Text()
	for _, s := range m.segmenter.Words(text) {
		if s.IsWord && s.End > c {
			return positionAt(m.c, p.Layout, s.End)
		}
	}
	if end, _ := m.BlockEnd(p); p != end {
		return end, true
	}
	for l := p.Layout + 1; l < m.c.NumLayouts(); l++ {
		if r, ok := m.layoutRange(l); ok {
			return r.start, true
		}
	}
	return p, true
}

// PreviousWord returns the start of the last word starting before p. From
// the start of a block it moves to the last word start of the previous
// block.
func (m *Model) PreviousWord(p Position) (Position, bool) {
	c, ok := localChar(m.c, p)
	if !ok {
		return Position{}, false
	}
	if ws, ok := m.lastWordStart(p.Layout, c); ok {
		return ws, true
	}
	if start, _ := m.BlockStart(p); p != start {
		return start, true
	}
	for l := p.Layout - 1; l >= 0; l-- {
		if _, ok := LayoutFirst(m.c, l); !ok {
			continue
		}
		if ws, ok := m.lastWordStart(l, len(m.c.Layout(l).Text())+1); ok {
			return ws, true
		}
		r, _ := m.layoutRange(l)
		return r.start, true
	}
	return p, true
}

func (m *Model) lastWordStart(l, before int) (Position, bool) {
	segs := m.segmenter.Words(m.c.Layout(l).Text())
	for k := len(segs) - 1; k >= 0; k-- {
		if s := segs[k]; s.IsWord && s.Start < before {
			return positionAt(m.c, l, s.Start)
		}
	}
	return Position{}, false
}
