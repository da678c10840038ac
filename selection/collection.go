package selection

import (
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// Collection is one render pass worth of laid-out blocks. Implementations
// are immutable snapshots.
type Collection interface {
	NumLayouts() int
	Layout(i int) Layout

	// Equal reports whether other describes the same content and geometry.
	Equal(other Collection) bool

	// NeedsPositionReconciliation reports whether positions derived from the
	// receiver may address different text in other.
	NeedsPositionReconciliation(other Collection) bool
}

// Layout is one semantic block. Geometry of its lines, runs and slices is in
// layout space; Origin translates layout space into collection space.
type Layout interface {
	Text() string
	Origin() fixed.Point26_6
	Bounds() fixed.Rectangle26_6
	NumLines() int
	Line(i int) Line
}

// Line is a visual line of a Layout.
type Line interface {
	Origin() fixed.Point26_6
	TypographicBounds() fixed.Rectangle26_6
	NumRuns() int
	Run(i int) Run
}

// Run is a stretch of a line with uniform direction and attributes. Slices
// are in storage order, so the first slice of a right-to-left run is its
// rightmost.
type Run interface {
	Direction() bidi.Direction
	TypographicBounds() fixed.Rectangle26_6
	URL() string
	Attachment() Attachment
	NumSlices() int
	Slice(i int) Slice
}

// Slice is the smallest selectable unit, usually one grapheme cluster.
type Slice interface {
	TypographicBounds() fixed.Rectangle26_6
	Characters() CharRange
}

// Attachment is an inline object such as an image.
type Attachment interface {
	Description() string
}

// CharRange is a half-open byte range into a Layout's text.
type CharRange struct {
	Start, End int
}

func (r CharRange) Len() int { return r.End - r.Start }

// Contains reports whether byte offset c falls in r.
func (r CharRange) Contains(c int) bool { return r.Start <= c && c < r.End }

// Frame returns the bounds of l in collection space.
func Frame(l Layout) fixed.Rectangle26_6 {
	return l.Bounds().Add(l.Origin())
}

func lookup(c Collection, i Index) (Layout, Line, Run, Slice, bool) {
	if i.Layout < 0 || i.Layout >= c.NumLayouts() {
		return nil, nil, nil, nil, false
	}
	l := c.Layout(i.Layout)
	if i.Line < 0 || i.Line >= l.NumLines() {
		return nil, nil, nil, nil, false
	}
	ln := l.Line(i.Line)
	if i.Run < 0 || i.Run >= ln.NumRuns() {
		return nil, nil, nil, nil, false
	}
	r := ln.Run(i.Run)
	if i.Slice < 0 || i.Slice >= r.NumSlices() {
		return nil, nil, nil, nil, false
	}
	return l, ln, r, r.Slice(i.Slice), true
}

// Valid reports whether i addresses an existing slice of c.
func Valid(c Collection, i Index) bool {
	_, _, _, _, ok := lookup(c, i)
	return ok
}
