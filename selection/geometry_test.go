package selection_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/rjkroege/richselect/selection"
	"github.com/rjkroege/richselect/textlayout"
)

func TestCaretRect(t *testing.T) {
	m := selection.NewModel(twoParagraphs())
	tests := []struct {
		name string
		p    selection.Position
		want fixed.Rectangle26_6
	}{
		{"start", down(0, 0, 0, 0), rect(16, 16, 18, 36)},
		{"upstream", up(0, 0, 0, 0), rect(26, 16, 28, 36)},
		{"right to left downstream", down(0, 1, 1, 0), rect(136, 36, 138, 56)},
		{"right to left upstream", up(0, 1, 1, 0), rect(126, 36, 128, 56)},
		{"second block", up(1, 1, 0, 9), rect(116, 96, 118, 116)},
		{"invalid", down(5, 0, 0, 0), fixed.Rectangle26_6{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.CaretRect(tc.p); got != tc.want {
				t.Errorf("CaretRect(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestCaretWidthOption(t *testing.T) {
	m := selection.NewModel(twoParagraphs(), selection.WithCaretWidth(fixed.I(1)))
	if got, want := m.CaretRect(down(0, 0, 0, 0)), rect(16, 16, 17, 36); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSelectionRects(t *testing.T) {
	m := selection.NewModel(twoParagraphs())
	ltr, rtl := bidi.LeftToRight, bidi.RightToLeft
	tests := []struct {
		name string
		r    selection.Range
		want []selection.SelectionRect
	}{
		{
			name: "first block",
			r:    selection.NewRange(down(0, 0, 0, 0), up(0, 1, 2, 0)),
			want: []selection.SelectionRect{
				{Rect: rect(16, 16, 236, 36), Direction: ltr, ContainsStart: true},
				{Rect: rect(16, 36, 96, 56), Direction: ltr},
				{Rect: rect(96, 36, 136, 56), Direction: rtl},
				{Rect: rect(136, 36, 146, 56), Direction: ltr, ContainsEnd: true},
			},
		},
		{
			name: "inside right to left run",
			r:    selection.NewRange(down(0, 1, 1, 1), up(0, 1, 1, 2)),
			want: []selection.SelectionRect{
				{Rect: rect(106, 36, 126, 56), Direction: rtl, ContainsStart: true, ContainsEnd: true},
			},
		},
		{
			name: "across blocks",
			r:    selection.NewRange(down(0, 1, 2, 0), up(1, 0, 0, 1)),
			want: []selection.SelectionRect{
				{Rect: rect(136, 36, 146, 56), Direction: ltr, ContainsStart: true},
				{Rect: rect(16, 76, 36, 96), Direction: ltr, ContainsEnd: true},
			},
		},
		{
			name: "collapsed",
			r:    selection.Collapsed(down(0, 0, 0, 3)),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, m.SelectionRects(tc.r)); diff != "" {
				t.Errorf("SelectionRects(%v) mismatch (-want +got):\n%s", tc.r, diff)
			}
		})
	}
}

func TestSelectionRectsFollowRunOrder(t *testing.T) {
	// The right-to-left run sits left of the left-to-right run on screen but
	// comes second in storage order.
	c := &textlayout.Collection{Layouts: []*textlayout.Layout{
		textlayout.FixedPitch(pt(0, 0), fixed.I(10), fixed.I(20),
			[]textlayout.RunSpec{textlayout.LTR("abc"), textlayout.RTL("אבג")}),
	}}
	runs := c.Layouts[0].Lines[0].Runs
	runs[0], runs[1] = shift(runs[0], 30), shift(runs[1], -30)
	m := selection.NewModel(c)
	rects := m.SelectionRects(selection.NewRange(down(0, 0, 0, 0), up(0, 0, 1, 2)))
	if len(rects) < 2 {
		t.Fatalf("got %d rects, want at least 2", len(rects))
	}
	if got, want := rects[0].Direction, bidi.LeftToRight; got != want {
		t.Errorf("first rect direction %v, want %v", got, want)
	}
	if got, want := rects[1].Direction, bidi.RightToLeft; got != want {
		t.Errorf("second rect direction %v, want %v", got, want)
	}
	if !(rects[1].Rect.Min.X < rects[0].Rect.Min.X) {
		t.Errorf("rects were reordered by position: %v", rects)
	}
}

func shift(r *textlayout.Run, dx int) *textlayout.Run {
	d := fixed.Point26_6{X: fixed.I(dx)}
	out := *r
	out.Rect = r.Rect.Add(d)
	out.Slices = nil
	for _, s := range r.Slices {
		s.Rect = s.Rect.Add(d)
		out.Slices = append(out.Slices, s)
	}
	return &out
}

func TestFirstRect(t *testing.T) {
	m := selection.NewModel(twoParagraphs())
	if got, want := m.FirstRect(selection.NewRange(down(0, 0, 0, 2), up(1, 0, 0, 3))), rect(36, 16, 236, 36); got != want {
		t.Errorf("multi-line: got %v, want %v", got, want)
	}
	if got, want := m.FirstRect(selection.NewRange(down(0, 1, 0, 6), up(0, 1, 1, 0))), rect(76, 36, 136, 56); got != want {
		t.Errorf("mixed direction: got %v, want %v", got, want)
	}
	p := down(0, 1, 1, 0)
	if got, want := m.FirstRect(selection.Collapsed(p)), m.CaretRect(p); got != want {
		t.Errorf("collapsed: got %v, want %v", got, want)
	}
}

func TestClosestPosition(t *testing.T) {
	m := selection.NewModel(twoParagraphs())
	tests := []struct {
		name string
		pt   fixed.Point26_6
		want selection.Position
	}{
		{"left of start", pt(6, 25), down(0, 0, 0, 0)},
		{"left half", pt(38, 25), down(0, 0, 0, 2)},
		{"right half", pt(44, 25), up(0, 0, 0, 2)},
		{"right to left, right half", pt(133, 45), down(0, 1, 1, 0)},
		{"right to left, left half", pt(128, 45), up(0, 1, 1, 0)},
		{"second block", pt(30, 100), down(1, 1, 0, 1)},
		{"between blocks", pt(30, 60), down(0, 1, 0, 1)},
		{"right of line", pt(500, 25), up(0, 0, 4, 0)},
		{"on an edge", pt(136, 25), down(0, 0, 1, 2)},
		{"above document", pt(30, 5), down(0, 0, 0, 0)},
		{"below document", pt(30, 500), up(1, 1, 0, 9)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := m.ClosestPosition(tc.pt)
			if !ok || got != tc.want {
				t.Errorf("ClosestPosition(%v) = %v, %v, want %v", tc.pt, got, ok, tc.want)
			}
		})
	}
}

func TestClosestPositionEmpty(t *testing.T) {
	m := selection.NewModel(&textlayout.Collection{})
	if p, ok := m.ClosestPosition(pt(0, 0)); ok {
		t.Errorf("got %v in an empty collection", p)
	}
	if m.HasText() {
		t.Errorf("empty collection has text")
	}
}

func TestClosestPositionWithin(t *testing.T) {
	m := selection.NewModel(twoParagraphs())
	r := selection.NewRange(down(0, 0, 1, 0), up(0, 0, 1, 5))
	tests := []struct {
		pt   fixed.Point26_6
		want selection.Position
	}{
		{pt(6, 25), down(0, 0, 1, 0)},
		{pt(140, 25), down(0, 0, 1, 2)},
		{pt(30, 100), up(0, 0, 1, 5)},
	}
	for _, tc := range tests {
		got, ok := m.ClosestPositionWithin(tc.pt, r)
		if !ok || got != tc.want {
			t.Errorf("ClosestPositionWithin(%v) = %v, %v, want %v", tc.pt, got, ok, tc.want)
		}
	}
}

func TestCharacterRange(t *testing.T) {
	m := selection.NewModel(twoParagraphs())
	got, ok := m.CharacterRange(pt(30, 100))
	if want := selection.NewRange(down(1, 1, 0, 1), up(1, 1, 0, 1)); !ok || got != want {
		t.Errorf("got %v, %v, want %v", got, ok, want)
	}
	if got, want := m.Text(got), "n"; got != want {
		t.Errorf("text %q, want %q", got, want)
	}
}

func TestURLAt(t *testing.T) {
	m := selection.NewModel(twoParagraphs())
	tests := []struct {
		pt   fixed.Point26_6
		want string
	}{
		{pt(200, 25), exampleURL},
		{pt(40, 25), ""},
		{pt(10, 10), ""},
	}
	for _, tc := range tests {
		if got := m.URLAt(tc.pt); got != tc.want {
			t.Errorf("URLAt(%v) = %q, want %q", tc.pt, got, tc.want)
		}
	}
}

func TestAttachmentAt(t *testing.T) {
	c := &textlayout.Collection{Layouts: []*textlayout.Layout{
		textlayout.FixedPitch(pt(0, 0), fixed.I(10), fixed.I(20), []textlayout.RunSpec{
			textlayout.LTR("see "),
			{Text: "\uFFFC", Attach: textlayout.Placeholder("diagram")},
		}),
	}}
	m := selection.NewModel(c)
	a, ok := m.AttachmentAt(pt(45, 10))
	if !ok || a.Description() != "diagram" {
		t.Errorf("AttachmentAt = %v, %v", a, ok)
	}
	if _, ok := m.AttachmentAt(pt(5, 10)); ok {
		t.Errorf("found an attachment on plain text")
	}
}
