package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/image/math/fixed"
	"gopkg.in/yaml.v3"
)

// report is printed as YAML, or as a key/value table on a terminal.
type report interface {
	rows() [][]string
}

var (
	keyStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	valueStyle  = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// renderTable lays out the rows of r as a bordered two column table.
func renderTable(r report) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return keyStyle
			}
			return valueStyle
		}).
		Rows(r.rows()...).
		Render()
}

func (a *app) emit(r report) error {
	if a.terminal() {
		_, err := fmt.Fprintln(a.stdout, renderTable(r))
		return err
	}
	enc := yaml.NewEncoder(a.stdout)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}

func toPixels(v fixed.Int26_6) float64 { return float64(v) / 64 }

// pixelRect returns r as x, y, width, height in pixels.
func pixelRect(r fixed.Rectangle26_6) [4]float64 {
	return [4]float64{toPixels(r.Min.X), toPixels(r.Min.Y), toPixels(r.Max.X - r.Min.X), toPixels(r.Max.Y - r.Min.Y)}
}

// parsePoint parses integer pixel coordinates.
func parsePoint(xs, ys string) (fixed.Point26_6, error) {
	x, err := strconv.Atoi(xs)
	if err != nil {
		return fixed.Point26_6{}, fmt.Errorf("bad x coordinate %q: %w", xs, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return fixed.Point26_6{}, fmt.Errorf("bad y coordinate %q: %w", ys, err)
	}
	return fixed.P(x, y), nil
}
