package main

import (
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/rjkroege/richselect/internal/config"
	"github.com/rjkroege/richselect/typeset"
)

// headingScales are the style scales markdown headings use.
var headingScales = []float64{2.0, 1.5, 1.25}

// fonts returns the regular font and the options installing the variants
// for the configured face.
func fonts(fc config.FontConfig) (typeset.Font, []typeset.Option, error) {
	switch fc.Face {
	case "basic":
		return typeset.FaceFont(basicfont.Face7x13), nil, nil
	case "fixed":
		// Cells are half as wide as the pixel size is tall.
		px := fc.Size * fc.DPI / 72
		cell := func(scale float64) typeset.Font {
			return typeset.FixedFont(int(math.Round(px*scale/2)), int(math.Round(px*scale)))
		}
		var opts []typeset.Option
		for _, s := range headingScales {
			opts = append(opts, typeset.WithScaledFont(s, cell(s)))
		}
		return cell(1), opts, nil
	}

	face := func(ttf []byte, scale float64) (typeset.Font, error) {
		f, err := opentype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("parse font: %w", err)
		}
		ff, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    fc.Size * scale,
			DPI:     fc.DPI,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("new face: %w", err)
		}
		return typeset.FaceFont(ff), nil
	}

	regular, err := face(goregular.TTF, 1)
	if err != nil {
		return nil, nil, err
	}
	variants := []struct {
		ttf []byte
		opt func(typeset.Font) typeset.Option
	}{
		{gobold.TTF, typeset.WithBoldFont},
		{goitalic.TTF, typeset.WithItalicFont},
		{gobolditalic.TTF, typeset.WithBoldItalicFont},
		{gomono.TTF, typeset.WithCodeFont},
	}
	var opts []typeset.Option
	for _, v := range variants {
		f, err := face(v.ttf, 1)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, v.opt(f))
	}
	for _, s := range headingScales {
		f, err := face(gobold.TTF, s)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, typeset.WithScaledFont(s, f))
	}
	return regular, opts, nil
}
