// Package typeset lays out rich text blocks into a textlayout.Collection.
//
// Each block with text becomes one layout. Clusters are Unicode grapheme
// clusters, lines break greedily at line break opportunities and the runs
// of a line are ordered for display by their bidi embedding levels.
package typeset

import (
	"io"
	"log/slog"
	"math"

	"github.com/rivo/uniseg"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/rjkroege/richselect/rich"
	"github.com/rjkroege/richselect/selection"
	"github.com/rjkroege/richselect/textlayout"
)

// Typesetter lays out blocks with a set of fonts.
type Typesetter struct {
	font           Font
	boldFont       Font
	italicFont     Font
	boldItalicFont Font
	codeFont       Font
	scaledFonts    map[float64]Font

	width        fixed.Int26_6
	origin       fixed.Point26_6
	blockSpacing fixed.Int26_6
	indent       fixed.Int26_6
	tabStop      fixed.Int26_6
	direction    bidi.Direction

	log *slog.Logger
}

// New returns a Typesetter using regular for unstyled text. Without a
// WithTabStop option, tab stops are eight spaces apart; without
// WithIndent, nesting indents by two.
func New(regular Font, opts ...Option) *Typesetter {
	space := regular.Advance(" ")
	t := &Typesetter{
		font:      regular,
		tabStop:   8 * space,
		indent:    2 * space,
		direction: bidi.Neutral,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Layout lays out blocks top to bottom. Blocks without text produce no
// layout; every layout records the ordinal of its block.
func (t *Typesetter) Layout(blocks []rich.Block) *textlayout.Collection {
	c := &textlayout.Collection{}
	y := t.origin.Y
	for i, b := range blocks {
		if !b.HasText() {
			continue
		}
		indent := t.blockIndent(b)
		l := t.layoutBlock(b, t.width-indent)
		l.Block = i
		l.Pos = fixed.Point26_6{X: t.origin.X + indent, Y: y}
		c.Layouts = append(c.Layouts, l)
		t.log.Debug("laid out block", "block", i, "kind", b.Kind, "lines", len(l.Lines))
		y += l.Rect.Max.Y + t.blockSpacing
	}
	return c
}

// blockIndent returns the left indentation of b. List items leave one
// more step for their marker.
func (t *Typesetter) blockIndent(b rich.Block) fixed.Int26_6 {
	switch b.Kind {
	case rich.ListItem:
		return t.indent * fixed.Int26_6(b.Depth+1)
	case rich.BlockQuote:
		return t.indent * fixed.Int26_6(b.Depth)
	}
	return 0
}

func (t *Typesetter) layoutBlock(b rich.Block, width fixed.Int26_6) *textlayout.Layout {
	if t.width <= 0 {
		width = math.MaxInt32
	}
	text := b.Content.String()
	cs := t.contentToClusters(b.Content)
	para := t.direction
	if para != bidi.LeftToRight && para != bidi.RightToLeft {
		para = paragraphDirection(cs)
	}
	resolveDirections(cs, para)

	l := &textlayout.Layout{Content: text}
	var top, right fixed.Int26_6
	for _, lc := range t.breakLines(text, cs, width) {
		ln := t.buildLine(lc, top, para, width)
		l.Lines = append(l.Lines, ln)
		top = ln.Rect.Max.Y
		right = max(right, ln.Rect.Max.X)
	}
	l.Rect = fixed.Rectangle26_6{Max: fixed.Point26_6{X: right, Y: top}}
	return l
}

// breakLines fills lines greedily with the segments between line break
// opportunities. Trailing whitespace hangs past the width, a mandatory
// break ends the line and a segment wider than a whole line is broken
// between clusters.
func (t *Typesetter) breakLines(text string, cs []cluster, width fixed.Int26_6) [][]cluster {
	var lines [][]cluster
	var cur []cluster
	var x fixed.Int26_6
	flush := func() {
		lines = append(lines, cur)
		cur = nil
		x = 0
	}
	place := func(c cluster) {
		c.wid = t.advance(&c, x)
		cur = append(cur, c)
		x += c.wid
	}

	k, off, state := 0, 0, -1
	for rest := text; rest != ""; {
		var seg string
		var must bool
		seg, rest, must, state = uniseg.FirstLineSegmentInString(rest, state)
		off += len(seg)
		j := k
		for j < len(cs) && cs[j].start < off {
			j++
		}
		segment := cs[k:j]
		k = j

		if len(cur) > 0 && x+t.inkWidth(segment, x) > width {
			flush()
		}
		if t.inkWidth(segment, x) > width {
			for _, c := range segment {
				if len(cur) > 0 && !c.isSpace() && x+t.advance(&c, x) > width {
					flush()
				}
				place(c)
			}
		} else {
			for _, c := range segment {
				place(c)
			}
		}
		if must && rest != "" {
			flush()
		}
	}
	if len(cur) > 0 {
		flush()
	}
	return lines
}

// inkWidth returns the width of segment placed at x, less its trailing
// whitespace.
func (t *Typesetter) inkWidth(segment []cluster, x fixed.Int26_6) fixed.Int26_6 {
	var w, ink fixed.Int26_6
	for i := range segment {
		w += t.advance(&segment[i], x+w)
		if !segment[i].isSpace() {
			ink = w
		}
	}
	return ink
}

// logicalRun is a maximal sequence of clusters from one span in one
// direction.
type logicalRun struct {
	clusters []cluster
	dir      bidi.Direction
}

func groupRuns(cs []cluster) []logicalRun {
	var runs []logicalRun
	for i, c := range cs {
		if n := len(runs); n > 0 && cs[i-1].span == c.span && cs[i-1].dir == c.dir && !c.isImage() {
			runs[n-1].clusters = append(runs[n-1].clusters, c)
			continue
		}
		runs = append(runs, logicalRun{clusters: []cluster{c}, dir: c.dir})
	}
	return runs
}

// buildLine places the clusters of one line. Runs keep their logical
// order in the line; their boxes are placed in display order and the
// slices of a right-to-left run run right to left.
func (t *Typesetter) buildLine(cs []cluster, top fixed.Int26_6, para bidi.Direction, width fixed.Int26_6) *textlayout.Line {
	m := t.font.Metrics()
	ascent, height := m.Ascent, m.Height
	var total fixed.Int26_6
	for i := range cs {
		cm := cs[i].font.Metrics()
		ascent = max(ascent, cm.Ascent)
		height = max(height, cm.Height)
		total += cs[i].wid
	}
	bottom := top + height

	runs := groupRuns(cs)
	levels := make([]int, len(runs))
	for i, r := range runs {
		levels[i] = embeddingLevel(r.dir, para)
	}

	var x fixed.Int26_6
	if para == bidi.RightToLeft && width < math.MaxInt32 {
		x = max(width-total, 0)
	}
	left := x

	ln := &textlayout.Line{Runs: make([]*textlayout.Run, len(runs))}
	for _, i := range visualOrder(levels) {
		lr := runs[i]
		style := lr.clusters[0].style
		run := &textlayout.Run{Dir: lr.dir, Link: style.Link}
		if style.Image != nil {
			run.Attach = style.Image
		}
		var w fixed.Int26_6
		for _, c := range lr.clusters {
			w += c.wid
		}
		run.Rect = fixed.Rectangle26_6{
			Min: fixed.Point26_6{X: x, Y: top},
			Max: fixed.Point26_6{X: x + w, Y: bottom},
		}

		sx := x
		if lr.dir == bidi.RightToLeft {
			sx = x + w
		}
		for _, c := range lr.clusters {
			if lr.dir == bidi.RightToLeft {
				sx -= c.wid
			}
			run.Slices = append(run.Slices, textlayout.Slice{
				Rect: fixed.Rectangle26_6{
					Min: fixed.Point26_6{X: sx, Y: top},
					Max: fixed.Point26_6{X: sx + c.wid, Y: bottom},
				},
				Chars: selection.CharRange{Start: c.start, End: c.end()},
			})
			if lr.dir != bidi.RightToLeft {
				sx += c.wid
			}
		}
		ln.Runs[i] = run
		x += w
	}

	ln.Pos = fixed.Point26_6{X: left, Y: top + ascent}
	ln.Rect = fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: left, Y: top},
		Max: fixed.Point26_6{X: x, Y: bottom},
	}
	return ln
}
