package selection

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Segment is one unit found by boundary analysis. IsWord is false for
// whitespace and punctuation between words.
type Segment struct {
	CharRange
	IsWord bool
}

// Segmenter finds word and sentence boundaries in a string.
type Segmenter interface {
	Words(text string) []Segment
	Sentences(text string) []Segment
}

// UnicodeSegmenter implements Segmenter with the default Unicode text
// segmentation rules.
type UnicodeSegmenter struct{}

func (UnicodeSegmenter) Words(text string) []Segment {
	var segs []Segment
	state, off := -1, 0
	for text != "" {
		var w string
		w, text, state = uniseg.FirstWordInString(text, state)
		segs = append(segs, Segment{
			CharRange: CharRange{Start: off, End: off + len(w)},
			IsWord:    isWordLike(w),
		})
		off += len(w)
	}
	return segs
}

func (UnicodeSegmenter) Sentences(text string) []Segment {
	var segs []Segment
	state, off := -1, 0
	for text != "" {
		var s string
		s, text, state = uniseg.FirstSentenceInString(text, state)
		segs = append(segs, Segment{
			CharRange: CharRange{Start: off, End: off + len(s)},
			IsWord:    true,
		})
		off += len(s)
	}
	return segs
}

func isWordLike(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// segmentAt returns the segment containing byte c. At the very end of the
// text the last segment is returned.
func segmentAt(segs []Segment, c int) (Segment, bool) {
	for _, s := range segs {
		if s.Contains(c) {
			return s, true
		}
	}
	if n := len(segs); n > 0 && c == segs[n-1].End {
		return segs[n-1], true
	}
	return Segment{}, false
}
