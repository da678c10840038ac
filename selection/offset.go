package selection

// ordinal is the flat caret number of p: the count of slices before p's
// slice, plus one when p is upstream.
func ordinal(c Collection, p Position) (int, bool) {
	if !Valid(c, p.Index) {
		return 0, false
	}
	n := 0
	for l := 0; l < p.Layout; l++ {
		n += layoutSlices(c.Layout(l))
	}
	lay := c.Layout(p.Layout)
	for k := 0; k < p.Line; k++ {
		n += lineSlices(lay.Line(k))
	}
	ln := lay.Line(p.Line)
	for r := 0; r < p.Run; r++ {
		n += ln.Run(r).NumSlices()
	}
	n += p.Slice
	if p.Affinity == Upstream {
		n++
	}
	return n, true
}

// positionAtOrdinal inverts ordinal: 0 is downstream of the first slice and
// k is upstream of slice k-1.
func positionAtOrdinal(c Collection, k int) (Position, bool) {
	if k < 0 {
		return Position{}, false
	}
	if k == 0 {
		i, ok := First(c)
		return Down(i), ok
	}
	k--
	for l := 0; l < c.NumLayouts(); l++ {
		lay := c.Layout(l)
		for n := 0; n < lay.NumLines(); n++ {
			ln := lay.Line(n)
			for r := 0; r < ln.NumRuns(); r++ {
				ns := ln.Run(r).NumSlices()
				if k < ns {
					return Up(Index{Layout: l, Line: n, Run: r, Slice: k}), true
				}
				k -= ns
			}
		}
	}
	return Position{}, false
}

func layoutSlices(l Layout) int {
	n := 0
	for k := 0; k < l.NumLines(); k++ {
		n += lineSlices(l.Line(k))
	}
	return n
}

func lineSlices(ln Line) int {
	n := 0
	for r := 0; r < ln.NumRuns(); r++ {
		n += ln.Run(r).NumSlices()
	}
	return n
}

// Offset returns the signed number of caret steps from from to to. It
// reports false when either position does not resolve in c.
func Offset(c Collection, from, to Position) (int, bool) {
	a, ok := ordinal(c, from)
	if !ok {
		return 0, false
	}
	b, ok := ordinal(c, to)
	if !ok {
		return 0, false
	}
	return b - a, true
}

// PositionFromOffset moves n caret steps from p. It reports false when the
// result falls outside the document rather than clamping.
func PositionFromOffset(c Collection, p Position, n int) (Position, bool) {
	k, ok := ordinal(c, p)
	if !ok {
		return Position{}, false
	}
	return positionAtOrdinal(c, k+n)
}
