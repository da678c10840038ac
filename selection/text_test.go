package selection_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/unicode/bidi"

	"github.com/rjkroege/richselect/selection"
)

func TestText(t *testing.T) {
	c := twoParagraphs()
	tests := []struct {
		name string
		r    selection.Range
		want string
	}{
		{"document", selection.NewRange(down(0, 0, 0, 0), up(1, 1, 0, 9)), "This is a sample link Another שלום.Second paragraphends here."},
		{"one run", selection.NewRange(down(0, 0, 1, 0), up(0, 0, 1, 5)), "sample"},
		{"upstream start", selection.NewRange(up(0, 0, 0, 9), up(0, 0, 1, 5)), "sample"},
		{"right to left", selection.NewRange(down(0, 1, 1, 1), up(0, 1, 1, 2)), "לו"},
		{"across blocks", selection.NewRange(down(0, 1, 2, 0), up(1, 0, 0, 5)), ".Second"},
		{"block seam", selection.NewRange(up(0, 1, 2, 0), down(1, 0, 0, 0)), ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := selection.Text(c, tc.r); got != tc.want {
				t.Errorf("Text(%v) = %q, want %q", tc.r, got, tc.want)
			}
		})
	}
}

type fragment struct {
	Text, URL string
	Dir       bidi.Direction
}

func TestAttributedText(t *testing.T) {
	c := twoParagraphs()
	r := selection.NewRange(down(0, 0, 1, 0), up(0, 1, 2, 0))
	var got []fragment
	for _, f := range selection.AttributedText(c, r) {
		got = append(got, fragment{f.Text, f.URL, f.Direction})
	}
	want := []fragment{
		{"sample", "", bidi.LeftToRight},
		{" ", "", bidi.LeftToRight},
		{"link", exampleURL, bidi.LeftToRight},
		{" ", "", bidi.LeftToRight},
		{"Another ", "", bidi.LeftToRight},
		{"שלום", "", bidi.RightToLeft},
		{".", "", bidi.LeftToRight},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AttributedText mismatch (-want +got):\n%s", diff)
	}
}

func TestHelloWorld(t *testing.T) {
	m := selection.NewModel(helloWorld())
	start, ok := m.Start()
	if !ok {
		t.Fatalf("no start")
	}
	end, _ := m.End()
	if got, ok := m.Offset(start, down(0, 1, 0, 0)); !ok || got != 6 {
		t.Errorf("offset to second line: got %d, %v, want 6", got, ok)
	}
	var text string
	for _, f := range m.AttributedText(selection.NewRange(start, end)) {
		text += f.Text
	}
	if got, want := text, "Hello world"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	for _, p := range []selection.Position{start, down(0, 0, 0, 3), up(0, 1, 0, 2), end} {
		r, ok := m.BlockRange(p)
		if want := selection.NewRange(start, end); !ok || r != want {
			t.Errorf("BlockRange(%v) = %v, %v, want %v", p, r, ok, want)
		}
	}
}
