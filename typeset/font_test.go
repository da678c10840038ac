package typeset

import (
	"testing"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func TestFaceFont(t *testing.T) {
	f := FaceFont(basicfont.Face7x13)
	if got, want := f.Advance("a"), fixed.I(7); got != want {
		t.Errorf("Advance(a) = %v, want %v", got, want)
	}
	if got, want := f.Advance("abc"), fixed.I(21); got != want {
		t.Errorf("Advance(abc) = %v, want %v", got, want)
	}
	if got, want := f.Metrics().Height, fixed.I(13); got != want {
		t.Errorf("height %v, want %v", got, want)
	}
}

func TestFixedFont(t *testing.T) {
	f := FixedFont(10, 20)
	tt := []struct {
		cluster string
		want    fixed.Int26_6
	}{
		{"", 0},
		{"a", fixed.I(10)},
		{"é", fixed.I(10)},
		{"日", fixed.I(20)},
	}
	for _, tc := range tt {
		if got := f.Advance(tc.cluster); got != tc.want {
			t.Errorf("Advance(%q) = %v, want %v", tc.cluster, got, tc.want)
		}
	}
	m := f.Metrics()
	if got, want := m.Ascent+m.Descent, m.Height; got != want {
		t.Errorf("ascent+descent %v, want height %v", got, want)
	}
}
