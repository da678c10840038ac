package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/bidi"

	"github.com/rjkroege/richselect/selection"
)

type rectReport struct {
	Rect      [4]float64 `yaml:"rect,flow"`
	Direction string     `yaml:"direction"`
	Start     bool       `yaml:"start,omitempty"`
	End       bool       `yaml:"end,omitempty"`
}

type selectReport struct {
	Range  string       `yaml:"range"`
	Length int          `yaml:"length"`
	Text   string       `yaml:"text"`
	Rects  []rectReport `yaml:"rects"`
}

func (r *selectReport) rows() [][]string {
	rows := [][]string{
		{"range", r.Range},
		{"length", strconv.Itoa(r.Length)},
		{"text", strconv.Quote(r.Text)},
	}
	for _, rr := range r.Rects {
		v := fmt.Sprintf("%v %s", rr.Rect, rr.Direction)
		if rr.Start {
			v += " start"
		}
		if rr.End {
			v += " end"
		}
		rows = append(rows, []string{"rect", v})
	}
	return rows
}

// expanders widen a selection endpoint to the enclosing text unit.
var expanders = map[string]func(*selection.Model, selection.Position) (selection.Range, bool){
	"word":     (*selection.Model).WordRange,
	"sentence": (*selection.Model).SentenceRange,
	"block":    (*selection.Model).BlockRange,
}

func newSelectCmd(a *app) *cobra.Command {
	var by string
	cmd := &cobra.Command{
		Use:   "select FILE X0 Y0 X1 Y1",
		Short: "Select between two points and report the text and highlight",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			expand, ok := expanders[by]
			if !ok && by != "character" {
				return fmt.Errorf("unknown unit %q", by)
			}
			p0, err := parsePoint(args[1], args[2])
			if err != nil {
				return err
			}
			p1, err := parsePoint(args[3], args[4])
			if err != nil {
				return err
			}
			d, err := a.load(args[0])
			if err != nil {
				return err
			}
			defer d.model.Close()
			m := d.model

			start, ok := m.ClosestPosition(p0)
			if !ok {
				return errEmptyDocument
			}
			end, _ := m.ClosestPosition(p1)
			r := selection.NewRange(start, end)
			if expand != nil {
				if sr, ok := expand(m, r.Start()); ok {
					r = selection.NewRange(sr.Start(), r.End())
				}
				if er, ok := expand(m, r.End()); ok {
					r = selection.NewRange(r.Start(), er.End())
				}
			}
			m.SetSelectedRange(r)

			n, ok := m.Offset(r.Start(), r.End())
			if !ok {
				return fmt.Errorf("selection %v does not resolve", r)
			}
			rep := &selectReport{
				Range:  r.String(),
				Length: n,
				Text:   m.Text(r),
			}
			for _, sr := range m.SelectionRects(r) {
				dir := "ltr"
				if sr.Direction == bidi.RightToLeft {
					dir = "rtl"
				}
				rep.Rects = append(rep.Rects, rectReport{
					Rect:      pixelRect(sr.Rect),
					Direction: dir,
					Start:     sr.ContainsStart,
					End:       sr.ContainsEnd,
				})
			}
			return a.emit(rep)
		},
	}
	cmd.Flags().StringVar(&by, "by", "character", "extend the ends to a character, word, sentence or block")
	return cmd
}
