package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var errEmptyDocument = errors.New("document has no text")

type hitReport struct {
	Position   string     `yaml:"position"`
	Caret      [4]float64 `yaml:"caret,flow"`
	Character  string     `yaml:"character,omitempty"`
	Word       string     `yaml:"word,omitempty"`
	Sentence   string     `yaml:"sentence,omitempty"`
	Link       string     `yaml:"link,omitempty"`
	Attachment string     `yaml:"attachment,omitempty"`
}

func (r *hitReport) rows() [][]string {
	rows := [][]string{
		{"position", r.Position},
		{"caret", fmt.Sprint(r.Caret)},
		{"character", strconv.Quote(r.Character)},
		{"word", strconv.Quote(r.Word)},
		{"sentence", strconv.Quote(r.Sentence)},
	}
	if r.Link != "" {
		rows = append(rows, []string{"link", r.Link})
	}
	if r.Attachment != "" {
		rows = append(rows, []string{"attachment", r.Attachment})
	}
	return rows
}

func newHitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hit FILE X Y",
		Short: "Report the position and text units closest to a point",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pt, err := parsePoint(args[1], args[2])
			if err != nil {
				return err
			}
			d, err := a.load(args[0])
			if err != nil {
				return err
			}
			defer d.model.Close()
			m := d.model

			p, ok := m.ClosestPosition(pt)
			if !ok {
				return errEmptyDocument
			}
			r := &hitReport{
				Position: p.String(),
				Caret:    pixelRect(m.CaretRect(p)),
				Link:     m.URLAt(pt),
			}
			if cr, ok := m.CharacterRange(pt); ok {
				r.Character = m.Text(cr)
			}
			if wr, ok := m.WordRange(p); ok {
				r.Word = m.Text(wr)
			}
			if sr, ok := m.SentenceRange(p); ok {
				r.Sentence = m.Text(sr)
			}
			if att, ok := m.AttachmentAt(pt); ok {
				r.Attachment = att.Description()
			}
			return a.emit(r)
		},
	}
}
