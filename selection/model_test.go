package selection_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/rjkroege/richselect/selection"
)

func TestSetCollectionReconciliation(t *testing.T) {
	sel := selection.NewRange(down(0, 0, 1, 0), up(0, 0, 1, 5))
	tests := []struct {
		name string
		next func() selection.Collection
		keep bool
	}{
		{"equal", func() selection.Collection { return twoParagraphs() }, true},
		{"moved", func() selection.Collection {
			c := twoParagraphs()
			c.Layouts[0].Pos = pt(40, 40)
			return c
		}, true},
		{"text changed", func() selection.Collection {
			c := twoParagraphs()
			c.Layouts[0].Content = strings.Replace(c.Layouts[0].Content, "sample", "simple", 1)
			return c
		}, false},
		{"block removed", func() selection.Collection {
			c := twoParagraphs()
			c.Layouts = c.Layouts[1:]
			return c
		}, false},
		{"rewrapped", func() selection.Collection { return helloWorld() }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := selection.NewModel(twoParagraphs())
			m.SetSelectedRange(sel)
			m.SetCollection(tc.next())
			got, ok := m.SelectedRange()
			if ok != tc.keep {
				t.Fatalf("selection kept = %v, want %v", ok, tc.keep)
			}
			if ok && got != sel {
				t.Errorf("selection changed to %v", got)
			}
		})
	}
}

func TestModelLogsSelection(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := selection.NewModel(twoParagraphs(), selection.WithLogger(log))
	m.SetSelectedRange(selection.NewRange(down(0, 0, 0, 0), up(0, 0, 0, 3)))
	m.ClearSelection()
	out := buf.String()
	for _, want := range []string{"msg=selected", `range="[^(0, 0, 0, 0), (0, 0, 0, 3)^]"`, `msg="selection cleared"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestModelDocument(t *testing.T) {
	m := selection.NewModel(twoParagraphs())
	if !m.HasText() {
		t.Fatalf("HasText = false")
	}
	r, ok := m.DocumentRange()
	if want := selection.NewRange(down(0, 0, 0, 0), up(1, 1, 0, 9)); !ok || r != want {
		t.Errorf("DocumentRange = %v, %v, want %v", r, ok, want)
	}
	p, ok := m.Position(r.Start(), 7)
	if !ok || p != up(0, 0, 0, 6) {
		t.Errorf("Position(start, 7) = %v, %v", p, ok)
	}
	if got, want := m.CaretRect(r.End()).Max.X-m.CaretRect(r.End()).Min.X, selection.DefaultCaretWidth; got != want {
		t.Errorf("caret width %v, want %v", got, want)
	}
}
