package selection

// PositionAbove returns the position on the line above p nearest the
// horizontal position of anchor's caret. On the first line it returns the
// document start.
func (m *Model) PositionAbove(p, anchor Position) (Position, bool) {
	return m.verticalStep(p, anchor, -1)
}

// PositionBelow is PositionAbove in the other direction, stopping at the
// document end.
func (m *Model) PositionBelow(p, anchor Position) (Position, bool) {
	return m.verticalStep(p, anchor, +1)
}

func (m *Model) verticalStep(p, anchor Position, dir int) (Position, bool) {
	if !Valid(m.c, p.Index) {
		return Position{}, false
	}
	x, _, ok := m.caretEdge(anchor)
	if !ok {
		x, _, _ = m.caretEdge(p)
	}
	l, n, ok := m.adjacentLine(p.Layout, p.Line, dir)
	if !ok {
		if dir < 0 {
			return m.Start()
		}
		return m.End()
	}
	return m.closestOnLine(l, n, x)
}

// adjacentLine steps one non-empty line up or down, crossing layouts.
func (m *Model) adjacentLine(l, n, dir int) (int, int, bool) {
	for {
		n += dir
		for n < 0 || n >= m.c.Layout(l).NumLines() {
			l += dir
			if l < 0 || l >= m.c.NumLayouts() {
				return 0, 0, false
			}
			if dir < 0 {
				n = m.c.Layout(l).NumLines() - 1
			} else {
				n = 0
			}
		}
		if lineSlices(m.c.Layout(l).Line(n)) > 0 {
			return l, n, true
		}
	}
}
