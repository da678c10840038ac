package textlayout

import (
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/rjkroege/richselect/selection"
)

// RunSpec describes one run for FixedPitch.
type RunSpec struct {
	Text   string
	Dir    bidi.Direction
	URL    string
	Attach selection.Attachment
}

// FixedPitch lays out lines of runs in a fixed-pitch font: every rune is
// one slice advance wide and every line height tall. Runs are placed left
// to right in the order given; the runes of a right-to-left run are placed
// right to left within it.
func FixedPitch(origin fixed.Point26_6, advance, height fixed.Int26_6, lines ...[]RunSpec) *Layout {
	l := &Layout{Pos: origin}
	off := 0
	var width fixed.Int26_6
	for n, specs := range lines {
		top := height * fixed.Int26_6(n)
		ln := &Line{
			Pos: fixed.Point26_6{Y: top + height*3/4},
		}
		x := fixed.Int26_6(0)
		for _, rs := range specs {
			runes := []rune(rs.Text)
			run := &Run{
				Dir:    rs.Dir,
				Link:   rs.URL,
				Attach: rs.Attach,
				Rect: fixed.Rectangle26_6{
					Min: fixed.Point26_6{X: x, Y: top},
					Max: fixed.Point26_6{X: x + advance*fixed.Int26_6(len(runes)), Y: top + height},
				},
			}
			for k, r := range runes {
				pos := k
				if rs.Dir == bidi.RightToLeft {
					pos = len(runes) - 1 - k
				}
				sx := x + advance*fixed.Int26_6(pos)
				size := len(string(r))
				run.Slices = append(run.Slices, Slice{
					Rect: fixed.Rectangle26_6{
						Min: fixed.Point26_6{X: sx, Y: top},
						Max: fixed.Point26_6{X: sx + advance, Y: top + height},
					},
					Chars: selection.CharRange{Start: off, End: off + size},
				})
				off += size
			}
			l.Content += rs.Text
			x = run.Rect.Max.X
			ln.Runs = append(ln.Runs, run)
		}
		ln.Rect = fixed.Rectangle26_6{
			Min: fixed.Point26_6{Y: top},
			Max: fixed.Point26_6{X: x, Y: top + height},
		}
		width = max(width, x)
		l.Lines = append(l.Lines, ln)
	}
	l.Rect = fixed.Rectangle26_6{Max: fixed.Point26_6{X: width, Y: height * fixed.Int26_6(len(lines))}}
	return l
}

// LTR and RTL return left-to-right and right-to-left plain run specs.
func LTR(text string) RunSpec { return RunSpec{Text: text, Dir: bidi.LeftToRight} }
func RTL(text string) RunSpec { return RunSpec{Text: text, Dir: bidi.RightToLeft} }

// Link returns a left-to-right run linking to url.
func Link(text, url string) RunSpec {
	return RunSpec{Text: text, Dir: bidi.LeftToRight, URL: url}
}
