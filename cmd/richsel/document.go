package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"

	"github.com/rjkroege/richselect/markdown"
	"github.com/rjkroege/richselect/rich"
	"github.com/rjkroege/richselect/selection"
	"github.com/rjkroege/richselect/textlayout"
	"github.com/rjkroege/richselect/typeset"
)

// document is a parsed and laid-out Markdown file.
type document struct {
	path   string
	blocks []rich.Block
	layout *textlayout.Collection
	model  *selection.Model
}

// readSource reads path, or standard input when path is "-".
func readSource(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// load parses and lays out the Markdown file at path.
func (a *app) load(path string) (*document, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	ts, err := a.typesetter()
	if err != nil {
		return nil, err
	}

	d := &document{path: path, blocks: markdownBlocks(src)}
	d.layout = ts.Layout(d.blocks)
	d.model = selection.NewModel(d.layout,
		selection.WithCaretWidth(pixels(a.cfg.Selection.CaretWidth)),
		selection.WithLogger(a.log),
	)
	a.log.Debug("loaded document", "path", path, "blocks", len(d.blocks), "layouts", len(d.layout.Layouts))
	return d, nil
}

func markdownBlocks(src []byte) []rich.Block {
	return markdown.Parse(string(src))
}

func (a *app) typesetter() (*typeset.Typesetter, error) {
	regular, opts, err := fonts(a.cfg.Font)
	if err != nil {
		return nil, err
	}
	lc := a.cfg.Layout
	space := regular.Advance(" ")
	opts = append(opts,
		typeset.WithWidth(fixed.I(lc.Width)),
		typeset.WithOrigin(fixed.P(lc.Padding, lc.Padding)),
		typeset.WithBlockSpacing(fixed.I(lc.BlockSpacing)),
		typeset.WithTabStop(space*fixed.Int26_6(lc.TabWidth)),
		typeset.WithLogger(a.log),
	)
	if d, ok := paragraphDirection(lc.Direction, lc.Locale); ok {
		opts = append(opts, typeset.WithDirection(d))
	}
	return typeset.New(regular, opts...), nil
}

// paragraphDirection resolves the configured direction. It reports false
// when every block should take the direction of its own text.
func paragraphDirection(direction, locale string) (bidi.Direction, bool) {
	switch direction {
	case "ltr":
		return bidi.LeftToRight, true
	case "rtl":
		return bidi.RightToLeft, true
	}
	if locale == "" {
		return bidi.Neutral, false
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return bidi.Neutral, false
	}
	return typeset.DirectionForLocale(tag), true
}

func pixels(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
