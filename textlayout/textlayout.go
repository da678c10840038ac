// Package textlayout is an in-memory implementation of the selection
// layout hierarchy. The typesetter produces it and tests build it directly
// or load it from YAML.
package textlayout

import (
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/rjkroege/richselect/selection"
)

// Collection is a laid-out document, one Layout per block.
type Collection struct {
	Layouts []*Layout
}

// Layout is one laid-out block.
type Layout struct {
	Content string
	Block   int // ordinal of the source block
	Pos     fixed.Point26_6
	Rect    fixed.Rectangle26_6
	Lines   []*Line
}

// Line is one visual line. Pos is the start of its baseline.
type Line struct {
	Pos  fixed.Point26_6
	Rect fixed.Rectangle26_6
	Runs []*Run
}

// Run is a stretch of one direction and one set of attributes.
type Run struct {
	Dir    bidi.Direction
	Rect   fixed.Rectangle26_6
	Link   string
	Attach selection.Attachment
	Slices []Slice
}

// Slice is one selectable cluster.
type Slice struct {
	Rect  fixed.Rectangle26_6
	Chars selection.CharRange
}

var (
	_ selection.Collection = (*Collection)(nil)
	_ selection.Layout     = (*Layout)(nil)
	_ selection.Line       = (*Line)(nil)
	_ selection.Run        = (*Run)(nil)
	_ selection.Slice      = Slice{}
)

func (c *Collection) NumLayouts() int                  { return len(c.Layouts) }
func (c *Collection) Layout(i int) selection.Layout    { return c.Layouts[i] }
func (l *Layout) Text() string                         { return l.Content }
func (l *Layout) Origin() fixed.Point26_6              { return l.Pos }
func (l *Layout) Bounds() fixed.Rectangle26_6          { return l.Rect }
func (l *Layout) NumLines() int                        { return len(l.Lines) }
func (l *Layout) Line(i int) selection.Line            { return l.Lines[i] }
func (l *Line) Origin() fixed.Point26_6                { return l.Pos }
func (l *Line) TypographicBounds() fixed.Rectangle26_6 { return l.Rect }
func (l *Line) NumRuns() int                           { return len(l.Runs) }
func (l *Line) Run(i int) selection.Run                { return l.Runs[i] }
func (r *Run) Direction() bidi.Direction               { return r.Dir }
func (r *Run) TypographicBounds() fixed.Rectangle26_6  { return r.Rect }
func (r *Run) URL() string                             { return r.Link }
func (r *Run) Attachment() selection.Attachment        { return r.Attach }
func (r *Run) NumSlices() int                          { return len(r.Slices) }
func (r *Run) Slice(i int) selection.Slice             { return r.Slices[i] }
func (s Slice) TypographicBounds() fixed.Rectangle26_6 { return s.Rect }
func (s Slice) Characters() selection.CharRange        { return s.Chars }

// Equal reports whether other is a *Collection with identical content and
// geometry.
func (c *Collection) Equal(other selection.Collection) bool {
	o, ok := other.(*Collection)
	if !ok {
		return false
	}
	if c == o {
		return true
	}
	if !c.sameStructure(o) {
		return false
	}
	for i, l := range c.Layouts {
		ol := o.Layouts[i]
		if l.Block != ol.Block || l.Pos != ol.Pos || l.Rect != ol.Rect {
			return false
		}
		for j, ln := range l.Lines {
			oln := ol.Lines[j]
			if ln.Pos != oln.Pos || ln.Rect != oln.Rect {
				return false
			}
			for k, r := range ln.Runs {
				or := oln.Runs[k]
				if r.Dir != or.Dir || r.Rect != or.Rect || r.Link != or.Link || !sameAttachment(r.Attach, or.Attach) {
					return false
				}
				for s := range r.Slices {
					if r.Slices[s].Rect != or.Slices[s].Rect {
						return false
					}
				}
			}
		}
	}
	return true
}

// NeedsPositionReconciliation reports whether positions in c might address
// different text in other. Any change to text or to the shape of the
// hierarchy counts; geometry alone does not.
func (c *Collection) NeedsPositionReconciliation(other selection.Collection) bool {
	o, ok := other.(*Collection)
	if !ok {
		return true
	}
	return !c.sameStructure(o)
}

func (c *Collection) sameStructure(o *Collection) bool {
	if len(c.Layouts) != len(o.Layouts) {
		return false
	}
	for i, l := range c.Layouts {
		ol := o.Layouts[i]
		if l.Content != ol.Content || len(l.Lines) != len(ol.Lines) {
			return false
		}
		for j, ln := range l.Lines {
			oln := ol.Lines[j]
			if len(ln.Runs) != len(oln.Runs) {
				return false
			}
			for k, r := range ln.Runs {
				or := oln.Runs[k]
				if len(r.Slices) != len(or.Slices) {
					return false
				}
				for s := range r.Slices {
					if r.Slices[s].Chars != or.Slices[s].Chars {
						return false
					}
				}
			}
		}
	}
	return true
}

func sameAttachment(a, b selection.Attachment) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Description() == b.Description()
}

// Placeholder is an attachment known only by its description.
type Placeholder string

func (p Placeholder) Description() string { return string(p) }
