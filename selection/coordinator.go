package selection

// Owner is a selection holder managed by a Coordinator.
type Owner interface {
	ClearSelection()
}

// Handle addresses a registration with a Coordinator. A handle whose slot
// was released and reused no longer matches.
type Handle struct {
	index int
	gen   uint32
}

type slot struct {
	gen      uint32
	owner    Owner
	released bool
}

// Coordinator enforces that at most one registered owner holds a non-empty
// selection. It does not keep owners alive beyond Release.
type Coordinator struct {
	slots []slot
	free  []int
	dirty bool
}

// NewCoordinator returns an empty coordinator.
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// Register adds o and returns its handle.
func (co *Coordinator) Register(o Owner) Handle {
	co.prune()
	if n := len(co.free); n > 0 {
		i := co.free[n-1]
		co.free = co.free[:n-1]
		co.slots[i].gen++
		co.slots[i].owner = o
		co.slots[i].released = false
		return Handle{index: i, gen: co.slots[i].gen}
	}
	co.slots = append(co.slots, slot{owner: o})
	return Handle{index: len(co.slots) - 1}
}

// Release withdraws the owner registered under h. The slot is reclaimed on
// a later Register or DidSelect.
func (co *Coordinator) Release(h Handle) {
	if !co.live(h) {
		return
	}
	co.slots[h.index].released = true
	co.slots[h.index].owner = nil
	co.dirty = true
}

// DidSelect records that the owner under h made a non-empty selection and
// clears the selection of every other live owner.
func (co *Coordinator) DidSelect(h Handle) {
	co.prune()
	if !co.live(h) {
		return
	}
	for i := range co.slots {
		s := &co.slots[i]
		if i == h.index || s.released {
			continue
		}
		s.owner.ClearSelection()
	}
}

// Len returns the number of live registrations.
func (co *Coordinator) Len() int {
	n := 0
	for _, s := range co.slots {
		if !s.released {
			n++
		}
	}
	return n
}

func (co *Coordinator) live(h Handle) bool {
	return h.index >= 0 && h.index < len(co.slots) &&
		co.slots[h.index].gen == h.gen && !co.slots[h.index].released
}

func (co *Coordinator) prune() {
	if !co.dirty {
		return
	}
	co.free = co.free[:0]
	for i, s := range co.slots {
		if s.released {
			co.free = append(co.free, i)
		}
	}
	co.dirty = false
}
