package rich

import "unicode/utf8"

// Span represents a run of text with uniform style.
// This is the input model - what markdown parsing produces.
type Span struct {
	Text  string
	Style Style
}

// Content is a sequence of styled spans making up one block.
type Content []Span

// Plain creates Content from unstyled text.
func Plain(text string) Content {
	return Content{{Text: text, Style: DefaultStyle()}}
}

// Len returns total rune count.
func (c Content) Len() int {
	n := 0
	for _, s := range c {
		n += utf8.RuneCountInString(s.Text)
	}
	return n
}

// String returns the concatenated text of all spans.
func (c Content) String() string {
	n := 0
	for _, s := range c {
		n += len(s.Text)
	}
	b := make([]byte, 0, n)
	for _, s := range c {
		b = append(b, s.Text...)
	}
	return string(b)
}

// Merge returns c with empty spans dropped and adjacent spans of equal
// style joined.
func (c Content) Merge() Content {
	var out Content
	for _, s := range c {
		if s.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Style == s.Style && s.Style.Image == nil {
			out[n-1].Text += s.Text
			continue
		}
		out = append(out, s)
	}
	return out
}
