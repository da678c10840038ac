package selection

import (
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// SelectionRect is one highlight rectangle of a range.
type SelectionRect struct {
	Rect          fixed.Rectangle26_6
	Direction     bidi.Direction
	ContainsStart bool
	ContainsEnd   bool
}

func contains(r fixed.Rectangle26_6, p fixed.Point26_6) bool {
	return r.Min.X <= p.X && p.X < r.Max.X && r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// caretEdge returns the x coordinate of p in collection space and the
// vertical extent of its line.
func (m *Model) caretEdge(p Position) (x fixed.Int26_6, line fixed.Rectangle26_6, ok bool) {
	lay, ln, run, s, ok := lookup(m.c, p.Index)
	if !ok {
		return 0, fixed.Rectangle26_6{}, false
	}
	o := lay.Origin()
	b := s.TypographicBounds().Add(o)
	leading := p.Affinity == Downstream
	if run.Direction() == bidi.RightToLeft {
		leading = !leading
	}
	x = b.Max.X
	if leading {
		x = b.Min.X
	}
	return x, ln.TypographicBounds().Add(o), true
}

// CaretRect returns the caret rectangle for p: at the slice's leading edge
// for downstream, trailing edge for upstream, spanning the line vertically.
func (m *Model) CaretRect(p Position) fixed.Rectangle26_6 {
	x, line, ok := m.caretEdge(p)
	if !ok {
		return fixed.Rectangle26_6{}
	}
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: x, Y: line.Min.Y},
		Max: fixed.Point26_6{X: x + m.caretWidth, Y: line.Max.Y},
	}
}

// SelectionRects returns highlight rectangles for r: one per stretch of
// same-direction slices on each line, in storage order.
func (m *Model) SelectionRects(r Range) []SelectionRect {
	var rects []SelectionRect
	var line Index
	for i := range Indices(m.c, r) {
		lay, ln, run, s, _ := lookup(m.c, i)
		o := lay.Origin()
		sb := s.TypographicBounds().Add(o)
		lb := ln.TypographicBounds().Add(o)
		rect := fixed.Rectangle26_6{
			Min: fixed.Point26_6{X: sb.Min.X, Y: lb.Min.Y},
			Max: fixed.Point26_6{X: sb.Max.X, Y: lb.Max.Y},
		}
		dir := run.Direction()
		if n := len(rects); n > 0 && line.Layout == i.Layout && line.Line == i.Line && rects[n-1].Direction == dir {
			rects[n-1].Rect = rects[n-1].Rect.Union(rect)
			continue
		}
		line = i
		rects = append(rects, SelectionRect{Rect: rect, Direction: dir})
	}
	if len(rects) > 0 {
		rects[0].ContainsStart = true
		rects[len(rects)-1].ContainsEnd = true
	}
	return rects
}

// FirstRect returns the caret rectangle for a collapsed range, otherwise the
// bounding box of r on the first line it touches.
func (m *Model) FirstRect(r Range) fixed.Rectangle26_6 {
	if r.IsCollapsed() {
		return m.CaretRect(r.start)
	}
	var out fixed.Rectangle26_6
	var line Index
	first := true
	for i := range Indices(m.c, r) {
		if first {
			line, first = i, false
		} else if i.Layout != line.Layout || i.Line != line.Line {
			break
		}
		lay, ln, _, s, _ := lookup(m.c, i)
		o := lay.Origin()
		sb := s.TypographicBounds().Add(o)
		lb := ln.TypographicBounds().Add(o)
		out = out.Union(fixed.Rectangle26_6{
			Min: fixed.Point26_6{X: sb.Min.X, Y: lb.Min.Y},
			Max: fixed.Point26_6{X: sb.Max.X, Y: lb.Max.Y},
		})
	}
	return out
}

func verticalDistance(y, top, bottom fixed.Int26_6) fixed.Int26_6 {
	switch {
	case y < top:
		return top - y
	case y >= bottom:
		return y - bottom
	}
	return 0
}

// closestLine returns the layout and line vertically nearest pt.
func (m *Model) closestLine(pt fixed.Point26_6) (layout, line int, ok bool) {
	best := fixed.Int26_6(-1)
	for l := 0; l < m.c.NumLayouts(); l++ {
		lay := m.c.Layout(l)
		if lay.NumLines() == 0 {
			continue
		}
		f := Frame(lay)
		if d := verticalDistance(pt.Y, f.Min.Y, f.Max.Y); best < 0 || d < best {
			best, layout, ok = d, l, true
		}
	}
	if !ok {
		return 0, 0, false
	}
	lay := m.c.Layout(layout)
	o := lay.Origin()
	best = -1
	for n := 0; n < lay.NumLines(); n++ {
		b := lay.Line(n).TypographicBounds().Add(o)
		if d := verticalDistance(pt.Y, b.Min.Y, b.Max.Y); best < 0 || d < best {
			best, line = d, n
		}
	}
	return layout, line, true
}

// closestOnLine picks the slice of the line at x: the one containing x, or
// failing that the one with the nearest edge. The position's affinity comes
// from which half of the slice x is in, honoring the run's direction.
func (m *Model) closestOnLine(layout, line int, x fixed.Int26_6) (Position, bool) {
	lay := m.c.Layout(layout)
	o := lay.Origin()
	ln := lay.Line(line)
	var (
		found bool
		hit   Index
		hitB  fixed.Rectangle26_6
		hitD  bidi.Direction
		best  fixed.Int26_6
	)
	for r := 0; r < ln.NumRuns(); r++ {
		run := ln.Run(r)
		for s := 0; s < run.NumSlices(); s++ {
			b := run.Slice(s).TypographicBounds().Add(o)
			var d fixed.Int26_6
			switch {
			case x < b.Min.X:
				d = b.Min.X - x
			case x >= b.Max.X:
				// A point on the shared edge belongs to the following slice.
				d = x - b.Max.X + 1
			}
			if !found || d < best {
				found, best = true, d
				hit = Index{Layout: layout, Line: line, Run: r, Slice: s}
				hitB, hitD = b, run.Direction()
			}
		}
	}
	if !found {
		return Position{}, false
	}
	mid := (hitB.Min.X + hitB.Max.X) / 2
	leftHalf := x < mid
	if hitD == bidi.RightToLeft {
		leftHalf = !leftHalf
	}
	if leftHalf {
		return Down(hit), true
	}
	return Up(hit), true
}

// ClosestPosition returns the caret position nearest pt. Points above the
// first layout resolve to the document start and points below the last to
// its end.
func (m *Model) ClosestPosition(pt fixed.Point26_6) (Position, bool) {
	first, ok := First(m.c)
	if !ok {
		return Position{}, false
	}
	last, _ := Last(m.c)
	if pt.Y < Frame(m.c.Layout(first.Layout)).Min.Y {
		return Down(first), true
	}
	if pt.Y >= Frame(m.c.Layout(last.Layout)).Max.Y {
		return Up(last), true
	}
	l, n, ok := m.closestLine(pt)
	if !ok {
		return Position{}, false
	}
	return m.closestOnLine(l, n, pt.X)
}

// ClosestPositionWithin returns the position nearest pt, clamped into r.
func (m *Model) ClosestPositionWithin(pt fixed.Point26_6, r Range) (Position, bool) {
	p, ok := m.ClosestPosition(pt)
	if !ok {
		return Position{}, false
	}
	return minPosition(maxPosition(p, r.start), r.end), true
}

// CharacterRange returns the range covering the single slice under pt.
func (m *Model) CharacterRange(pt fixed.Point26_6) (Range, bool) {
	p, ok := m.ClosestPosition(pt)
	if !ok {
		return Range{}, false
	}
	return Range{start: Down(p.Index), end: Up(p.Index)}, true
}

// runAt returns the run whose bounds contain pt.
func (m *Model) runAt(pt fixed.Point26_6) (Run, bool) {
	for l := 0; l < m.c.NumLayouts(); l++ {
		lay := m.c.Layout(l)
		o := lay.Origin()
		if !contains(Frame(lay), pt) {
			continue
		}
		for n := 0; n < lay.NumLines(); n++ {
			ln := lay.Line(n)
			for r := 0; r < ln.NumRuns(); r++ {
				run := ln.Run(r)
				if contains(run.TypographicBounds().Add(o), pt) {
					return run, true
				}
			}
		}
	}
	return nil, false
}

// URLAt returns the link target of the run under pt, or "".
func (m *Model) URLAt(pt fixed.Point26_6) string {
	if run, ok := m.runAt(pt); ok {
		return run.URL()
	}
	return ""
}

// AttachmentAt returns the inline object of the run under pt.
func (m *Model) AttachmentAt(pt fixed.Point26_6) (Attachment, bool) {
	if run, ok := m.runAt(pt); ok && run.Attachment() != nil {
		return run.Attachment(), true
	}
	return nil, false
}
