package rich

// Style defines visual attributes for a span of text.
type Style struct {
	// Font variations
	Bold   bool
	Italic bool
	Code   bool // Monospace font for code spans
	Strike bool

	// Link is the target URL of a hyperlink span, empty otherwise.
	Link string

	// Image is set on the single object replacement character that stands
	// in for an inline image.
	Image *Image

	// Size multiplier (1.0 = normal body text)
	// Used for headings: H1=2.0, H2=1.5, H3=1.25, etc.
	Scale float64
}

// DefaultStyle returns the default body text style.
func DefaultStyle() Style {
	return Style{Scale: 1.0}
}

// Common styles
var (
	StyleH1     = Style{Bold: true, Scale: 2.0}
	StyleH2     = Style{Bold: true, Scale: 1.5}
	StyleH3     = Style{Bold: true, Scale: 1.25}
	StyleBold   = Style{Bold: true, Scale: 1.0}
	StyleItalic = Style{Italic: true, Scale: 1.0}
	StyleCode   = Style{Code: true, Scale: 1.0}
)

// HeadingStyle returns the style for a heading of the given level.
func HeadingStyle(level int) Style {
	switch level {
	case 1:
		return StyleH1
	case 2:
		return StyleH2
	case 3:
		return StyleH3
	}
	return StyleBold
}

// LinkStyle returns s turned into a hyperlink to url.
func LinkStyle(s Style, url string) Style {
	s.Link = url
	return s
}

// Image is an inline image reference.
type Image struct {
	URL string
	Alt string
}

// ObjectReplacement is the character laid out in place of an image.
const ObjectReplacement = "\uFFFC"

// Description returns the alternate text, or the URL when there is none.
func (im *Image) Description() string {
	if im.Alt != "" {
		return im.Alt
	}
	return im.URL
}
