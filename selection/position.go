package selection

// Affinity chooses which edge of a Slice a Position sits on. Downstream is
// the slice's leading edge in storage order, Upstream its trailing edge.
type Affinity int

const (
	Downstream Affinity = iota
	Upstream
)

func (a Affinity) String() string {
	if a == Upstream {
		return "upstream"
	}
	return "downstream"
}

// Position is a caret location: a slice plus the edge it is attached to.
// Upstream of slice k and downstream of slice k+1 are the same visual place
// but distinct Positions.
type Position struct {
	Index
	Affinity Affinity
}

// Down returns the downstream Position of i.
func Down(i Index) Position { return Position{Index: i, Affinity: Downstream} }

// Up returns the upstream Position of i.
func Up(i Index) Position { return Position{Index: i, Affinity: Upstream} }

// Compare orders positions by index, then Downstream before Upstream.
func (p Position) Compare(q Position) int {
	if c := p.Index.Compare(q.Index); c != 0 {
		return c
	}
	return cmpInt(int(p.Affinity), int(q.Affinity))
}

// Less reports whether p sorts before q.
func (p Position) Less(q Position) bool { return p.Compare(q) < 0 }

// String renders the caret on the side of the index it attaches to:
// "^(0, 0, 0, 0)" for downstream and "(0, 0, 0, 0)^" for upstream.
func (p Position) String() string {
	if p.Affinity == Upstream {
		return p.Index.String() + "^"
	}
	return "^" + p.Index.String()
}

func minPosition(p, q Position) Position {
	if q.Less(p) {
		return q
	}
	return p
}

func maxPosition(p, q Position) Position {
	if p.Less(q) {
		return q
	}
	return p
}
