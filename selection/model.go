package selection

import (
	"io"
	"log/slog"

	"golang.org/x/image/math/fixed"
)

// DefaultCaretWidth is the caret width used when none is configured.
const DefaultCaretWidth = fixed.Int26_6(2 << 6)

// Model owns one collection snapshot and at most one active selection range.
// Geometry and granularity queries are answered against the snapshot.
type Model struct {
	c          Collection
	selected   Range
	hasRange   bool
	caretWidth fixed.Int26_6
	segmenter  Segmenter
	log        *slog.Logger

	coord  *Coordinator
	handle Handle
}

// Option configures a Model.
type Option func(*Model)

// WithCaretWidth sets the width of rectangles returned by CaretRect.
func WithCaretWidth(w fixed.Int26_6) Option {
	return func(m *Model) {
		m.caretWidth = w
	}
}

// WithSegmenter replaces the word and sentence boundary analysis.
func WithSegmenter(s Segmenter) Option {
	return func(m *Model) {
		m.segmenter = s
	}
}

// WithLogger sets the logger for selection and reconciliation events.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		m.log = l
	}
}

// WithCoordinator registers the model with co so that selecting text here
// clears the selection of every other registered model.
func WithCoordinator(co *Coordinator) Option {
	return func(m *Model) {
		m.coord = co
	}
}

// NewModel returns a model over c with no selection.
func NewModel(c Collection, opts ...Option) *Model {
	m := &Model{
		c:          c,
		caretWidth: DefaultCaretWidth,
		segmenter:  UnicodeSegmenter{},
	}
	for _, o := range opts {
		o(m)
	}
	if m.log == nil {
		m.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if m.coord != nil {
		m.handle = m.coord.Register(m)
	}
	return m
}

// Close withdraws the model from its coordinator.
func (m *Model) Close() {
	if m.coord != nil {
		m.coord.Release(m.handle)
		m.coord = nil
	}
}

// Collection returns the current snapshot.
func (m *Model) Collection() Collection { return m.c }

// SetCollection replaces the snapshot. A held selection survives only when
// the new snapshot is equal, or needs no reconciliation and still resolves
// both ends; otherwise it is cleared.
func (m *Model) SetCollection(c Collection) {
	old := m.c
	m.c = c
	if !m.hasRange || old.Equal(c) {
		return
	}
	if !old.NeedsPositionReconciliation(c) && Valid(c, m.selected.start.Index) && Valid(c, m.selected.end.Index) {
		return
	}
	m.log.Debug("selection cleared by new layout", "range", m.selected)
	m.hasRange = false
	m.selected = Range{}
}

// SelectedRange returns the active range.
func (m *Model) SelectedRange() (Range, bool) { return m.selected, m.hasRange }

// SetSelectedRange makes r the active range. A non-empty range clears the
// selection of every other model sharing the coordinator.
func (m *Model) SetSelectedRange(r Range) {
	m.selected, m.hasRange = r, true
	m.log.Debug("selected", "range", r)
	if !r.IsCollapsed() && m.coord != nil {
		m.coord.DidSelect(m.handle)
	}
}

// ClearSelection drops the active range.
func (m *Model) ClearSelection() {
	if !m.hasRange {
		return
	}
	m.log.Debug("selection cleared", "range", m.selected)
	m.selected, m.hasRange = Range{}, false
}

// HasText reports whether the snapshot has any slice.
func (m *Model) HasText() bool {
	_, ok := First(m.c)
	return ok
}

// Start returns the document's first caret position.
func (m *Model) Start() (Position, bool) {
	i, ok := First(m.c)
	return Down(i), ok
}

// End returns the document's last caret position.
func (m *Model) End() (Position, bool) {
	i, ok := Last(m.c)
	return Up(i), ok
}

// DocumentRange spans the whole snapshot.
func (m *Model) DocumentRange() (Range, bool) {
	s, ok := m.Start()
	if !ok {
		return Range{}, false
	}
	e, _ := m.End()
	return Range{start: s, end: e}, true
}

func (m *Model) Text(r Range) string               { return Text(m.c, r) }
func (m *Model) AttributedText(r Range) []Fragment { return AttributedText(m.c, r) }
func (m *Model) Position(p Position, n int) (Position, bool) {
	return PositionFromOffset(m.c, p, n)
}

func (m *Model) Offset(from, to Position) (int, bool) {
	return Offset(m.c, from, to)
}
