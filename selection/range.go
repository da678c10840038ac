package selection

import "fmt"

// Range is an ordered pair of positions with start <= end.
type Range struct {
	start, end Position
}

// NewRange returns the range spanning a and b in either order.
func NewRange(a, b Position) Range {
	if b.Less(a) {
		a, b = b, a
	}
	return Range{start: a, end: b}
}

// Collapsed returns the empty range at p.
func Collapsed(p Position) Range { return Range{start: p, end: p} }

// MustRange returns [start, end]. It panics if end sorts before start.
func MustRange(start, end Position) Range {
	if end.Less(start) {
		panic(fmt.Sprintf("selection: range start %v after end %v", start, end))
	}
	return Range{start: start, end: end}
}

func (r Range) Start() Position { return r.start }
func (r Range) End() Position   { return r.end }

// IsCollapsed reports whether start and end are the same position.
func (r Range) IsCollapsed() bool { return r.start == r.end }

// Contains reports whether the slice at i lies inside r. An upstream start
// excludes its own slice and a downstream end excludes its own slice.
func (r Range) Contains(i Index) bool {
	lo := r.start.Index.Compare(i)
	if lo > 0 || (lo == 0 && r.start.Affinity == Upstream) {
		return false
	}
	hi := i.Compare(r.end.Index)
	if hi > 0 || (hi == 0 && r.end.Affinity == Downstream) {
		return false
	}
	return true
}

// ContainsPosition reports whether p lies within r in position order,
// boundaries included.
func (r Range) ContainsPosition(p Position) bool {
	return r.start.Compare(p) <= 0 && p.Compare(r.end) <= 0
}

func (r Range) String() string {
	return fmt.Sprintf("[%v, %v]", r.start, r.end)
}

// Clamp returns the intersection of r and bounds, or false when they do not
// overlap.
func (r Range) Clamp(bounds Range) (Range, bool) {
	start := maxPosition(r.start, bounds.start)
	end := minPosition(r.end, bounds.end)
	if end.Less(start) {
		return Range{}, false
	}
	return Range{start: start, end: end}, true
}
