package typeset

import (
	"log/slog"

	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// Option configures a Typesetter.
type Option func(*Typesetter)

// WithBoldFont is an Option that sets the bold font variant.
func WithBoldFont(f Font) Option {
	return func(t *Typesetter) {
		t.boldFont = f
	}
}

// WithItalicFont is an Option that sets the italic font variant.
func WithItalicFont(f Font) Option {
	return func(t *Typesetter) {
		t.italicFont = f
	}
}

// WithBoldItalicFont is an Option that sets the bold-italic font variant.
func WithBoldItalicFont(f Font) Option {
	return func(t *Typesetter) {
		t.boldItalicFont = f
	}
}

// WithCodeFont is an Option that sets the monospace font for code spans
// and code blocks.
func WithCodeFont(f Font) Option {
	return func(t *Typesetter) {
		t.codeFont = f
	}
}

// WithScaledFont is an Option that sets the font for a specific scale factor.
// Common scale factors: 2.0 for H1, 1.5 for H2, 1.25 for H3.
func WithScaledFont(scale float64, f Font) Option {
	return func(t *Typesetter) {
		if t.scaledFonts == nil {
			t.scaledFonts = make(map[float64]Font)
		}
		t.scaledFonts[scale] = f
	}
}

// WithWidth sets the wrap width. Zero or less disables wrapping.
func WithWidth(w fixed.Int26_6) Option {
	return func(t *Typesetter) {
		t.width = w
	}
}

// WithOrigin sets where the first layout is placed.
func WithOrigin(p fixed.Point26_6) Option {
	return func(t *Typesetter) {
		t.origin = p
	}
}

// WithBlockSpacing sets the vertical gap between consecutive layouts.
func WithBlockSpacing(s fixed.Int26_6) Option {
	return func(t *Typesetter) {
		t.blockSpacing = s
	}
}

// WithIndent sets the indentation step for list and quote nesting.
func WithIndent(i fixed.Int26_6) Option {
	return func(t *Typesetter) {
		t.indent = i
	}
}

// WithTabStop sets the distance between tab stops.
func WithTabStop(w fixed.Int26_6) Option {
	return func(t *Typesetter) {
		t.tabStop = w
	}
}

// WithDirection forces the paragraph direction of every block. By default
// each block takes the direction of its first strong character.
func WithDirection(d bidi.Direction) Option {
	return func(t *Typesetter) {
		t.direction = d
	}
}

// WithLogger sets the logger for layout diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(t *Typesetter) {
		t.log = l
	}
}
