package textlayout

import (
	"fmt"
	"io"
	"math"

	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
	"gopkg.in/yaml.v3"

	"github.com/rjkroege/richselect/selection"
)

// Geometry is serialized in pixels: points as [x, y] and rectangles as
// [x, y, width, height].

type yamlCollection struct {
	Layouts []yamlLayout `yaml:"layouts"`
}

type yamlLayout struct {
	Text   string     `yaml:"text"`
	Block  int        `yaml:"block,omitempty"`
	Origin [2]float64 `yaml:"origin,flow"`
	Bounds [4]float64 `yaml:"bounds,flow"`
	Lines  []yamlLine `yaml:"lines"`
}

type yamlLine struct {
	Origin [2]float64 `yaml:"origin,flow"`
	Bounds [4]float64 `yaml:"bounds,flow"`
	Runs   []yamlRun  `yaml:"runs"`
}

type yamlRun struct {
	Direction  string      `yaml:"direction"`
	Bounds     [4]float64  `yaml:"bounds,flow"`
	URL        string      `yaml:"url,omitempty"`
	Attachment string      `yaml:"attachment,omitempty"`
	Slices     []yamlSlice `yaml:"slices"`
}

type yamlSlice struct {
	Bounds [4]float64 `yaml:"bounds,flow"`
	Chars  [2]int     `yaml:"chars,flow"`
}

func toPixels(v fixed.Int26_6) float64 { return float64(v) / 64 }

func fromPixels(v float64) fixed.Int26_6 { return fixed.Int26_6(math.Round(v * 64)) }

func encodePoint(p fixed.Point26_6) [2]float64 {
	return [2]float64{toPixels(p.X), toPixels(p.Y)}
}

func encodeRect(r fixed.Rectangle26_6) [4]float64 {
	return [4]float64{toPixels(r.Min.X), toPixels(r.Min.Y), toPixels(r.Max.X - r.Min.X), toPixels(r.Max.Y - r.Min.Y)}
}

func decodePoint(v [2]float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fromPixels(v[0]), Y: fromPixels(v[1])}
}

func decodeRect(v [4]float64) fixed.Rectangle26_6 {
	lo := fixed.Point26_6{X: fromPixels(v[0]), Y: fromPixels(v[1])}
	return fixed.Rectangle26_6{
		Min: lo,
		Max: fixed.Point26_6{X: lo.X + fromPixels(v[2]), Y: lo.Y + fromPixels(v[3])},
	}
}

func directionName(d bidi.Direction) string {
	if d == bidi.RightToLeft {
		return "rtl"
	}
	return "ltr"
}

func parseDirection(s string) (bidi.Direction, error) {
	switch s {
	case "ltr", "":
		return bidi.LeftToRight, nil
	case "rtl":
		return bidi.RightToLeft, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// MarshalYAML implements yaml.Marshaler.
func (c *Collection) MarshalYAML() (interface{}, error) {
	var yc yamlCollection
	for _, l := range c.Layouts {
		yl := yamlLayout{
			Text:   l.Content,
			Block:  l.Block,
			Origin: encodePoint(l.Pos),
			Bounds: encodeRect(l.Rect),
		}
		for _, ln := range l.Lines {
			yln := yamlLine{Origin: encodePoint(ln.Pos), Bounds: encodeRect(ln.Rect)}
			for _, r := range ln.Runs {
				yr := yamlRun{
					Direction: directionName(r.Dir),
					Bounds:    encodeRect(r.Rect),
					URL:       r.Link,
				}
				if r.Attach != nil {
					yr.Attachment = r.Attach.Description()
				}
				for _, s := range r.Slices {
					yr.Slices = append(yr.Slices, yamlSlice{
						Bounds: encodeRect(s.Rect),
						Chars:  [2]int{s.Chars.Start, s.Chars.End},
					})
				}
				yln.Runs = append(yln.Runs, yr)
			}
			yl.Lines = append(yl.Lines, yln)
		}
		yc.Layouts = append(yc.Layouts, yl)
	}
	return yc, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Attachments come back as
// Placeholders.
func (c *Collection) UnmarshalYAML(value *yaml.Node) error {
	var yc yamlCollection
	if err := value.Decode(&yc); err != nil {
		return err
	}
	c.Layouts = c.Layouts[:0]
	for i, yl := range yc.Layouts {
		l := &Layout{
			Content: yl.Text,
			Block:   yl.Block,
			Pos:     decodePoint(yl.Origin),
			Rect:    decodeRect(yl.Bounds),
		}
		for _, yln := range yl.Lines {
			ln := &Line{Pos: decodePoint(yln.Origin), Rect: decodeRect(yln.Bounds)}
			for _, yr := range yln.Runs {
				dir, err := parseDirection(yr.Direction)
				if err != nil {
					return fmt.Errorf("layout %d: %w", i, err)
				}
				r := &Run{Dir: dir, Rect: decodeRect(yr.Bounds), Link: yr.URL}
				if yr.Attachment != "" {
					r.Attach = Placeholder(yr.Attachment)
				}
				for _, ys := range yr.Slices {
					cr := selection.CharRange{Start: ys.Chars[0], End: ys.Chars[1]}
					if cr.Start < 0 || cr.End < cr.Start || cr.End > len(l.Content) {
						return fmt.Errorf("layout %d: slice characters %v outside text", i, ys.Chars)
					}
					r.Slices = append(r.Slices, Slice{Rect: decodeRect(ys.Bounds), Chars: cr})
				}
				ln.Runs = append(ln.Runs, r)
			}
			l.Lines = append(l.Lines, ln)
		}
		c.Layouts = append(c.Layouts, l)
	}
	return nil
}

// Decode reads a YAML collection from r.
func Decode(r io.Reader) (*Collection, error) {
	var c Collection
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("decoding layout collection: %w", err)
	}
	return &c, nil
}

// Encode writes c to w as YAML.
func (c *Collection) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encoding layout collection: %w", err)
	}
	return enc.Close()
}
