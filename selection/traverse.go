package selection

import "iter"

// First returns the index of the first slice of c.
func First(c Collection) (Index, bool) {
	for l := 0; l < c.NumLayouts(); l++ {
		if i, ok := LayoutFirst(c, l); ok {
			return i, true
		}
	}
	return Index{}, false
}

// Last returns the index of the last slice of c.
func Last(c Collection) (Index, bool) {
	for l := c.NumLayouts() - 1; l >= 0; l-- {
		if i, ok := LayoutLast(c, l); ok {
			return i, true
		}
	}
	return Index{}, false
}

// LayoutFirst returns the first slice of layout l.
func LayoutFirst(c Collection, l int) (Index, bool) {
	if l < 0 || l >= c.NumLayouts() {
		return Index{}, false
	}
	return firstFrom(c, Index{Layout: l})
}

// LayoutLast returns the last slice of layout l.
func LayoutLast(c Collection, l int) (Index, bool) {
	if l < 0 || l >= c.NumLayouts() {
		return Index{}, false
	}
	lay := c.Layout(l)
	for n := lay.NumLines() - 1; n >= 0; n-- {
		ln := lay.Line(n)
		for r := ln.NumRuns() - 1; r >= 0; r-- {
			if k := ln.Run(r).NumSlices(); k > 0 {
				return Index{Layout: l, Line: n, Run: r, Slice: k - 1}, true
			}
		}
	}
	return Index{}, false
}

// firstFrom returns the first slice at or after the line/run/slice named by
// i within layout i.Layout.
func firstFrom(c Collection, i Index) (Index, bool) {
	lay := c.Layout(i.Layout)
	for n := i.Line; n < lay.NumLines(); n++ {
		ln := lay.Line(n)
		r0 := 0
		if n == i.Line {
			r0 = i.Run
		}
		for r := r0; r < ln.NumRuns(); r++ {
			s0 := 0
			if n == i.Line && r == i.Run {
				s0 = i.Slice
			}
			if s0 < ln.Run(r).NumSlices() {
				return Index{Layout: i.Layout, Line: n, Run: r, Slice: s0}, true
			}
		}
	}
	return Index{}, false
}

// Next returns the slice after i, carrying into the next run, line and
// layout as each level is exhausted. Empty containers are skipped.
func Next(c Collection, i Index) (Index, bool) {
	if !Valid(c, i) {
		return Index{}, false
	}
	if j, ok := firstFrom(c, Index{Layout: i.Layout, Line: i.Line, Run: i.Run, Slice: i.Slice + 1}); ok {
		return j, true
	}
	for l := i.Layout + 1; l < c.NumLayouts(); l++ {
		if j, ok := LayoutFirst(c, l); ok {
			return j, true
		}
	}
	return Index{}, false
}

// Previous returns the slice before i, borrowing from the previous run,
// line and layout.
func Previous(c Collection, i Index) (Index, bool) {
	if !Valid(c, i) {
		return Index{}, false
	}
	if i.Slice > 0 {
		i.Slice--
		return i, true
	}
	lay := c.Layout(i.Layout)
	for n := i.Line; n >= 0; n-- {
		ln := lay.Line(n)
		r0 := ln.NumRuns() - 1
		if n == i.Line {
			r0 = i.Run - 1
		}
		for r := r0; r >= 0; r-- {
			if k := ln.Run(r).NumSlices(); k > 0 {
				return Index{Layout: i.Layout, Line: n, Run: r, Slice: k - 1}, true
			}
		}
	}
	for l := i.Layout - 1; l >= 0; l-- {
		if j, ok := LayoutLast(c, l); ok {
			return j, true
		}
	}
	return Index{}, false
}

// Indices yields, in storage order, the index of every slice inside r.
func Indices(c Collection, r Range) iter.Seq[Index] {
	return func(yield func(Index) bool) {
		start, end := r.start.Index, r.end.Index
		if r.start.Affinity == Upstream {
			var ok bool
			if start, ok = Next(c, start); !ok {
				return
			}
		}
		if r.end.Affinity == Downstream {
			var ok bool
			if end, ok = Previous(c, end); !ok {
				return
			}
		}
		for i, ok := start, Valid(c, start); ok && !end.Less(i); i, ok = Next(c, i) {
			if !yield(i) {
				return
			}
		}
	}
}
