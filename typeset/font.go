package typeset

import (
	"github.com/rivo/uniseg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Font measures clusters for the typesetter.
type Font interface {
	Metrics() font.Metrics
	// Advance returns the horizontal advance of one grapheme cluster.
	Advance(cluster string) fixed.Int26_6
}

// FaceFont adapts a font.Face.
func FaceFont(face font.Face) Font {
	return faceFont{face}
}

type faceFont struct {
	face font.Face
}

func (f faceFont) Metrics() font.Metrics { return f.face.Metrics() }

func (f faceFont) Advance(cluster string) fixed.Int26_6 {
	return font.MeasureString(f.face, cluster)
}

// FixedFont returns a fixed-pitch font whose cells are width by height
// pixels. East Asian wide clusters take two cells.
func FixedFont(width, height int) Font {
	return fixedFont{width: width, height: height}
}

type fixedFont struct {
	width, height int
}

func (f fixedFont) Metrics() font.Metrics {
	descent := f.height / 4
	return font.Metrics{
		Height:  fixed.I(f.height),
		Ascent:  fixed.I(f.height - descent),
		Descent: fixed.I(descent),
	}
}

func (f fixedFont) Advance(cluster string) fixed.Int26_6 {
	if cluster == "" {
		return 0
	}
	cells := max(uniseg.StringWidth(cluster), 1)
	return fixed.I(f.width * cells)
}
