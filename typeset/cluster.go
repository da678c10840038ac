package typeset

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/rjkroege/richselect/rich"
)

// cluster is one selectable unit of a block: a grapheme cluster, a
// newline, a tab or an image.
type cluster struct {
	text  string
	start int // byte offset in the block text
	span  int // index of the span it came from
	style rich.Style
	font  Font
	bc    rune // '\n', '\t' or 0
	wid   fixed.Int26_6
	dir   bidi.Direction
}

func (c *cluster) end() int { return c.start + len(c.text) }

func (c *cluster) isNewline() bool { return c.bc == '\n' }

func (c *cluster) isTab() bool { return c.bc == '\t' }

func (c *cluster) isImage() bool { return c.style.Image != nil }

func (c *cluster) isSpace() bool {
	r, _ := utf8.DecodeRuneInString(c.text)
	return unicode.IsSpace(r)
}

// contentToClusters splits styled spans into clusters. Newlines and tabs
// become their own clusters and an image span is a single cluster.
func (t *Typesetter) contentToClusters(content rich.Content) []cluster {
	var cs []cluster
	off := 0
	for i, span := range content {
		if span.Text == "" {
			continue
		}
		f := t.fontForStyle(span.Style)
		if span.Style.Image != nil {
			cs = append(cs, cluster{text: span.Text, start: off, span: i, style: span.Style, font: f})
			off += len(span.Text)
			continue
		}
		state := -1
		for rest := span.Text; rest != ""; {
			var g string
			g, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
			c := cluster{text: g, start: off, span: i, style: span.Style, font: f}
			switch g {
			case "\n", "\r\n":
				c.bc = '\n'
			case "\t":
				c.bc = '\t'
			}
			cs = append(cs, c)
			off += len(g)
		}
	}
	return cs
}

// advance returns the width of c when it starts at x, measured from the
// line start.
func (t *Typesetter) advance(c *cluster, x fixed.Int26_6) fixed.Int26_6 {
	switch {
	case c.isTab():
		return tabWidth(x, t.tabStop)
	case c.isNewline():
		return c.font.Advance(" ")
	case c.isImage():
		return max(c.font.Advance(c.text), c.font.Metrics().Height)
	}
	return c.font.Advance(c.text)
}

// tabWidth returns the distance from x to the next tab stop.
func tabWidth(x, stop fixed.Int26_6) fixed.Int26_6 {
	if stop <= 0 {
		return 0
	}
	return stop - x%stop
}

// fontForStyle returns the font for the given style. Scale takes precedence
// because heading layout requires the scaled metrics.
func (t *Typesetter) fontForStyle(style rich.Style) Font {
	if style.Scale != 1.0 && t.scaledFonts != nil {
		if f, ok := t.scaledFonts[style.Scale]; ok {
			return f
		}
	}
	if style.Code && t.codeFont != nil {
		return t.codeFont
	}
	if style.Bold && style.Italic {
		if t.boldItalicFont != nil {
			return t.boldItalicFont
		}
	} else if style.Bold {
		if t.boldFont != nil {
			return t.boldFont
		}
	} else if style.Italic {
		if t.italicFont != nil {
			return t.italicFont
		}
	}
	return t.font
}
