package selection_test

import (
	"testing"

	"golang.org/x/image/math/fixed"

	"github.com/rjkroege/richselect/selection"
	"github.com/rjkroege/richselect/textlayout"
)

const exampleURL = "https://example.com"

func pt(x, y int) fixed.Point26_6 { return fixed.P(x, y) }

func rect(x0, y0, x1, y1 int) fixed.Rectangle26_6 {
	return fixed.R(x0, y0, x1, y1)
}

func idx(l, n, r, s int) selection.Index {
	return selection.Index{Layout: l, Line: n, Run: r, Slice: s}
}

func down(l, n, r, s int) selection.Position { return selection.Down(idx(l, n, r, s)) }
func up(l, n, r, s int) selection.Position   { return selection.Up(idx(l, n, r, s)) }

// twoParagraphs is a two block document drawn at 10px per rune and 20px
// per line. The second line of the first block holds a right-to-left run.
//
//	layout 0 at (16, 16):
//	  "This is a " "sample" " " "link" " "
//	  "Another " "שלום" "."
//	layout 1 at (16, 76):
//	  "Second paragraph"
//	  "ends here."
func twoParagraphs() *textlayout.Collection {
	adv, h := fixed.I(10), fixed.I(20)
	return &textlayout.Collection{Layouts: []*textlayout.Layout{
		textlayout.FixedPitch(pt(16, 16), adv, h,
			[]textlayout.RunSpec{
				textlayout.LTR("This is a "),
				textlayout.LTR("sample"),
				textlayout.LTR(" "),
				textlayout.Link("link", exampleURL),
				textlayout.LTR(" "),
			},
			[]textlayout.RunSpec{
				textlayout.LTR("Another "),
				textlayout.RTL("שלום"),
				textlayout.LTR("."),
			},
		),
		textlayout.FixedPitch(pt(16, 76), adv, h,
			[]textlayout.RunSpec{textlayout.LTR("Second paragraph")},
			[]textlayout.RunSpec{textlayout.LTR("ends here.")},
		),
	}}
}

// helloWorld is a single block wrapped onto two lines.
func helloWorld() *textlayout.Collection {
	return &textlayout.Collection{Layouts: []*textlayout.Layout{
		textlayout.FixedPitch(pt(0, 0), fixed.I(10), fixed.I(20),
			[]textlayout.RunSpec{textlayout.LTR("Hello ")},
			[]textlayout.RunSpec{textlayout.LTR("world")},
		),
	}}
}

func singleLine(texts ...string) *textlayout.Collection {
	c := &textlayout.Collection{}
	for i, t := range texts {
		c.Layouts = append(c.Layouts, textlayout.FixedPitch(pt(0, 40*i), fixed.I(10), fixed.I(20),
			[]textlayout.RunSpec{textlayout.LTR(t)}))
	}
	return c
}

// allPositions lists both positions of every slice in storage order.
func allPositions(t *testing.T, c selection.Collection) []selection.Position {
	t.Helper()
	var out []selection.Position
	i, ok := selection.First(c)
	for ok {
		out = append(out, selection.Down(i), selection.Up(i))
		i, ok = selection.Next(c, i)
	}
	return out
}
