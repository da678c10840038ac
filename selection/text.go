package selection

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// Fragment is a piece of selected text sharing one run's attributes.
type Fragment struct {
	Text       string
	URL        string
	Attachment Attachment
	Direction  bidi.Direction
}

// localChar returns the byte offset into p's layout text that p stands for.
func localChar(c Collection, p Position) (int, bool) {
	_, _, _, s, ok := lookup(c, p.Index)
	if !ok {
		return 0, false
	}
	if p.Affinity == Upstream {
		return s.Characters().End, true
	}
	return s.Characters().Start, true
}

// positionAt maps byte offset ch of layout l back to a Position: 0 is
// downstream of the first slice, anything else upstream of the slice
// holding ch-1. Offsets past the end clamp to the layout's end.
func positionAt(c Collection, l int, ch int) (Position, bool) {
	first, ok := LayoutFirst(c, l)
	if !ok {
		return Position{}, false
	}
	if ch <= 0 {
		return Down(first), true
	}
	slices := layoutIndices(c, l)
	// Character ranges increase in storage order.
	k := sort.Search(len(slices), func(k int) bool {
		_, _, _, s, _ := lookup(c, slices[k])
		return s.Characters().End > ch-1
	})
	if k == len(slices) {
		return Up(slices[len(slices)-1]), true
	}
	return Up(slices[k]), true
}

func layoutIndices(c Collection, l int) []Index {
	var out []Index
	lay := c.Layout(l)
	for n := 0; n < lay.NumLines(); n++ {
		ln := lay.Line(n)
		for r := 0; r < ln.NumRuns(); r++ {
			for s := 0; s < ln.Run(r).NumSlices(); s++ {
				out = append(out, Index{Layout: l, Line: n, Run: r, Slice: s})
			}
		}
	}
	return out
}

// Text returns the characters between the ends of r, concatenated across
// layouts without separators.
func Text(c Collection, r Range) string {
	if r.IsCollapsed() {
		return ""
	}
	from, ok := localChar(c, r.start)
	if !ok {
		return ""
	}
	to, ok := localChar(c, r.end)
	if !ok {
		return ""
	}
	var sb strings.Builder
	for l := r.start.Layout; l <= r.end.Layout; l++ {
		text := c.Layout(l).Text()
		lo, hi := 0, len(text)
		if l == r.start.Layout {
			lo = from
		}
		if l == r.end.Layout {
			hi = to
		}
		if lo < hi {
			sb.WriteString(text[lo:hi])
		}
	}
	return sb.String()
}

// AttributedText returns the text of r split into fragments, one per
// stretch of consecutive slices from the same run.
func AttributedText(c Collection, r Range) []Fragment {
	var frags []Fragment
	var cur Index
	var lo, hi int
	have := false
	flush := func() {
		if !have {
			return
		}
		lay, _, run, _, _ := lookup(c, cur)
		frags = append(frags, Fragment{
			Text:       lay.Text()[lo:hi],
			URL:        run.URL(),
			Attachment: run.Attachment(),
			Direction:  run.Direction(),
		})
		have = false
	}
	for i := range Indices(c, r) {
		_, _, _, s, _ := lookup(c, i)
		cr := s.Characters()
		if have && sameRun(cur, i) {
			lo, hi = min(lo, cr.Start), max(hi, cr.End)
			continue
		}
		flush()
		cur, lo, hi, have = i, cr.Start, cr.End, true
	}
	flush()
	return frags
}

func sameRun(a, b Index) bool {
	return a.Layout == b.Layout && a.Line == b.Line && a.Run == b.Run
}
