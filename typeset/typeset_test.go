package typeset

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"

	"github.com/rjkroege/richselect/markdown"
	"github.com/rjkroege/richselect/rich"
	"github.com/rjkroege/richselect/selection"
	"github.com/rjkroege/richselect/textlayout"
)

func cell() Font { return FixedFont(10, 20) }

func paragraph(text string) []rich.Block {
	return []rich.Block{{Kind: rich.Paragraph, Content: rich.Plain(text)}}
}

// lineTexts returns the text of every line of l, read from its slices in
// logical order.
func lineTexts(l *textlayout.Layout) []string {
	var lines []string
	for _, ln := range l.Lines {
		var sb strings.Builder
		for _, r := range ln.Runs {
			for _, s := range r.Slices {
				sb.WriteString(l.Content[s.Chars.Start:s.Chars.End])
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}

func sliceXs(r *textlayout.Run) [][2]int {
	var xs [][2]int
	for _, s := range r.Slices {
		xs = append(xs, [2]int{s.Rect.Min.X.Round(), s.Rect.Max.X.Round()})
	}
	return xs
}

func TestLayoutSingleLine(t *testing.T) {
	c := New(cell()).Layout(paragraph("Hello world"))
	if got, want := len(c.Layouts), 1; got != want {
		t.Fatalf("got %d layouts, want %d", got, want)
	}
	l := c.Layouts[0]
	if got, want := l.Content, "Hello world"; got != want {
		t.Errorf("content %q, want %q", got, want)
	}
	if got, want := l.Rect, fixed.R(0, 0, 110, 20); got != want {
		t.Errorf("bounds %v, want %v", got, want)
	}
	if got, want := len(l.Lines), 1; got != want {
		t.Fatalf("got %d lines, want %d", got, want)
	}
	ln := l.Lines[0]
	if got, want := ln.Pos, fixed.P(0, 15); got != want {
		t.Errorf("baseline origin %v, want %v", got, want)
	}
	if got, want := len(ln.Runs), 1; got != want {
		t.Fatalf("got %d runs, want %d", got, want)
	}
	s := ln.Runs[0].Slices[6]
	if got, want := s.Rect, fixed.R(60, 0, 70, 20); got != want {
		t.Errorf("slice 6 at %v, want %v", got, want)
	}
	if got, want := s.Chars, (selection.CharRange{Start: 6, End: 7}); got != want {
		t.Errorf("slice 6 chars %v, want %v", got, want)
	}
}

func TestLineBreaking(t *testing.T) {
	tt := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"no wrap", "aaa bbb ccc", 0, []string{"aaa bbb ccc"}},
		{"fill", "aaa bbb ccc", 70, []string{"aaa bbb ", "ccc"}},
		{"trailing space hangs", "aaa bbb", 30, []string{"aaa ", "bbb"}},
		{"overlong word", "abcdefghij", 40, []string{"abcd", "efgh", "ij"}},
		{"mandatory", "ab\ncd", 0, []string{"ab\n", "cd"}},
		{"blank line", "ab\n\ncd", 0, []string{"ab\n", "\n", "cd"}},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			c := New(cell(), WithWidth(fixed.I(tc.width))).Layout(paragraph(tc.text))
			if diff := cmp.Diff(tc.want, lineTexts(c.Layouts[0])); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLineGeometry(t *testing.T) {
	c := New(cell(), WithWidth(fixed.I(70))).Layout(paragraph("aaa bbb ccc"))
	l := c.Layouts[0]
	if got, want := l.Lines[1].Rect, fixed.R(0, 20, 30, 40); got != want {
		t.Errorf("second line %v, want %v", got, want)
	}
	if got, want := l.Rect, fixed.R(0, 0, 80, 40); got != want {
		t.Errorf("bounds %v, want %v", got, want)
	}
}

func TestNewlineAndTab(t *testing.T) {
	c := New(cell()).Layout(paragraph("ab\ncd"))
	if diff := cmp.Diff([][2]int{{0, 10}, {10, 20}, {20, 30}}, sliceXs(c.Layouts[0].Lines[0].Runs[0])); diff != "" {
		t.Errorf("newline slices mismatch (-want +got):\n%s", diff)
	}

	c = New(cell()).Layout(paragraph("a\tb"))
	if diff := cmp.Diff([][2]int{{0, 10}, {10, 80}, {80, 90}}, sliceXs(c.Layouts[0].Lines[0].Runs[0])); diff != "" {
		t.Errorf("tab slices mismatch (-want +got):\n%s", diff)
	}

	c = New(cell(), WithTabStop(fixed.I(30))).Layout(paragraph("a\tb"))
	if diff := cmp.Diff([][2]int{{0, 10}, {10, 30}, {30, 40}}, sliceXs(c.Layouts[0].Lines[0].Runs[0])); diff != "" {
		t.Errorf("tab stop slices mismatch (-want +got):\n%s", diff)
	}
}

func TestBidiLeftToRightParagraph(t *testing.T) {
	c := New(cell()).Layout(paragraph("abc שלום def"))
	ln := c.Layouts[0].Lines[0]
	if got, want := len(ln.Runs), 3; got != want {
		t.Fatalf("got %d runs, want %d", got, want)
	}
	dirs := []bidi.Direction{ln.Runs[0].Dir, ln.Runs[1].Dir, ln.Runs[2].Dir}
	if diff := cmp.Diff([]bidi.Direction{bidi.LeftToRight, bidi.RightToLeft, bidi.LeftToRight}, dirs); diff != "" {
		t.Errorf("directions mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][2]int{{70, 80}, {60, 70}, {50, 60}, {40, 50}}, sliceXs(ln.Runs[1])); diff != "" {
		t.Errorf("right-to-left slices mismatch (-want +got):\n%s", diff)
	}
	if got, want := ln.Runs[1].Slices[0].Chars, (selection.CharRange{Start: 4, End: 6}); got != want {
		t.Errorf("first hebrew letter chars %v, want %v", got, want)
	}
}

func TestBidiRightToLeftParagraph(t *testing.T) {
	c := New(cell(), WithWidth(fixed.I(200))).Layout(paragraph("שלום abc"))
	ln := c.Layouts[0].Lines[0]
	if got, want := len(ln.Runs), 2; got != want {
		t.Fatalf("got %d runs, want %d", got, want)
	}
	// Runs stay in logical order; the Latin run is displayed on the left.
	if got, want := ln.Runs[0].Rect, fixed.R(150, 0, 200, 20); got != want {
		t.Errorf("hebrew run %v, want %v", got, want)
	}
	if got, want := ln.Runs[1].Rect, fixed.R(120, 0, 150, 20); got != want {
		t.Errorf("latin run %v, want %v", got, want)
	}
	if got, want := ln.Runs[0].Slices[0].Rect, fixed.R(190, 0, 200, 20); got != want {
		t.Errorf("first letter %v, want %v", got, want)
	}
	if got, want := ln.Rect, fixed.R(120, 0, 200, 20); got != want {
		t.Errorf("line %v, want %v", got, want)
	}

	// A forced direction overrides the first strong character.
	c = New(cell(), WithDirection(bidi.LeftToRight)).Layout(paragraph("שלום abc"))
	if got, want := c.Layouts[0].Lines[0].Runs[1].Rect, fixed.R(40, 0, 80, 20); got != want {
		t.Errorf("forced left-to-right: latin run %v, want %v", got, want)
	}
}

func TestVisualOrder(t *testing.T) {
	tt := []struct {
		levels []int
		want   []int
	}{
		{[]int{0, 0}, []int{0, 1}},
		{[]int{0, 1, 1, 0}, []int{0, 2, 1, 3}},
		{[]int{1, 2, 1}, []int{2, 1, 0}},
		{[]int{1, 2, 2, 1}, []int{3, 1, 2, 0}},
	}
	for _, tc := range tt {
		if diff := cmp.Diff(tc.want, visualOrder(tc.levels)); diff != "" {
			t.Errorf("visualOrder(%v) mismatch (-want +got):\n%s", tc.levels, diff)
		}
	}
}

func TestDirectionForLocale(t *testing.T) {
	tt := []struct {
		tag  string
		want bidi.Direction
	}{
		{"en", bidi.LeftToRight},
		{"ja", bidi.LeftToRight},
		{"he", bidi.RightToLeft},
		{"ar", bidi.RightToLeft},
		{"fa", bidi.RightToLeft},
		{"ur", bidi.RightToLeft},
	}
	for _, tc := range tt {
		if got := DirectionForLocale(language.MustParse(tc.tag)); got != tc.want {
			t.Errorf("DirectionForLocale(%s) = %v, want %v", tc.tag, got, tc.want)
		}
	}
}

func TestBlockPlacement(t *testing.T) {
	blocks := []rich.Block{
		{Kind: rich.Paragraph, Content: rich.Plain("one")},
		{Kind: rich.ThematicBreak},
		{Kind: rich.ListItem, Marker: "•", Content: rich.Plain("two")},
		{Kind: rich.BlockQuote, Depth: 1, Content: rich.Plain("three")},
	}
	c := New(cell(), WithOrigin(fixed.P(16, 16)), WithBlockSpacing(fixed.I(5))).Layout(blocks)

	type placed struct {
		Block int
		X, Y  int
	}
	var got []placed
	for _, l := range c.Layouts {
		got = append(got, placed{l.Block, l.Pos.X.Round(), l.Pos.Y.Round()})
	}
	want := []placed{{0, 16, 16}, {2, 36, 41}, {3, 36, 66}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("placement mismatch (-want +got):\n%s", diff)
	}
}

func TestFontForStyle(t *testing.T) {
	ts := New(cell(),
		WithBoldFont(FixedFont(12, 20)),
		WithScaledFont(2.0, FixedFont(20, 40)),
	)

	c := ts.Layout([]rich.Block{{Content: rich.Content{
		{Text: "a", Style: rich.StyleBold},
		{Text: "b", Style: rich.DefaultStyle()},
	}}})
	ln := c.Layouts[0].Lines[0]
	if got, want := len(ln.Runs), 2; got != want {
		t.Fatalf("got %d runs, want %d", got, want)
	}
	if got, want := ln.Runs[1].Slices[0].Rect, fixed.R(12, 0, 22, 20); got != want {
		t.Errorf("plain slice after bold %v, want %v", got, want)
	}

	c = ts.Layout([]rich.Block{{Kind: rich.Heading, Level: 1, Content: rich.Content{{Text: "H", Style: rich.StyleH1}}}})
	ln = c.Layouts[0].Lines[0]
	if got, want := ln.Rect, fixed.R(0, 0, 20, 40); got != want {
		t.Errorf("heading line %v, want %v", got, want)
	}
	if got, want := ln.Pos.Y, fixed.I(30); got != want {
		t.Errorf("heading baseline %v, want %v", got, want)
	}
}

func TestLinksAndImages(t *testing.T) {
	img := &rich.Image{URL: "diagram.png", Alt: "diagram"}
	c := New(cell()).Layout([]rich.Block{{Content: rich.Content{
		{Text: "see ", Style: rich.DefaultStyle()},
		{Text: rich.ObjectReplacement, Style: rich.Style{Scale: 1.0, Image: img}},
		{Text: "docs", Style: rich.LinkStyle(rich.DefaultStyle(), "https://example.com")},
	}}})
	ln := c.Layouts[0].Lines[0]
	if got, want := len(ln.Runs), 3; got != want {
		t.Fatalf("got %d runs, want %d", got, want)
	}
	if ln.Runs[0].Attach != nil {
		t.Errorf("text run has attachment %v", ln.Runs[0].Attach)
	}
	if got, want := ln.Runs[1].Attach.Description(), "diagram"; got != want {
		t.Errorf("attachment %q, want %q", got, want)
	}
	if got, want := ln.Runs[1].Rect, fixed.R(40, 0, 60, 20); got != want {
		t.Errorf("image run %v, want %v", got, want)
	}
	if got, want := ln.Runs[2].Link, "https://example.com"; got != want {
		t.Errorf("link %q, want %q", got, want)
	}
}

func TestSelectTypesetMarkdown(t *testing.T) {
	c := New(cell()).Layout(markdown.Parse("Hello *world*\n\nSecond"))
	m := selection.NewModel(c)
	defer m.Close()

	r, ok := m.DocumentRange()
	if !ok {
		t.Fatal("no document range")
	}
	if got, want := m.Text(r), "Hello worldSecond"; got != want {
		t.Errorf("document text %q, want %q", got, want)
	}

	p, ok := m.ClosestPosition(fixed.P(62, 5))
	if !ok {
		t.Fatal("no closest position")
	}
	want := selection.Down(selection.Index{Layout: 0, Line: 0, Run: 1, Slice: 0})
	if p != want {
		t.Errorf("closest position %v, want %v", p, want)
	}
	wr, ok := m.WordRange(p)
	if !ok {
		t.Fatal("no word range")
	}
	if got, want := m.Text(wr), "world"; got != want {
		t.Errorf("word %q, want %q", got, want)
	}
}
