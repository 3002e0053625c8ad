package internal

import "fmt"

// Slot allocator for triangles. Handles of released triangles are recycled, so
// the arena stays proportional to the live mesh rather than to the total number
// of triangles ever created during insertion.
type arena struct {
	slots []*Triangle
	free  []Handle
}

func (a *arena) alloc(t *Triangle) Handle {
	var h Handle
	if n := len(a.free); n > 0 {
		h = a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[h] = t
	} else {
		h = Handle(len(a.slots))
		a.slots = append(a.slots, t)
	}
	t.handle = h
	return h
}

func (a *arena) release(h Handle) {
	t := a.get(h)
	t.handle = NoTriangle
	a.slots[h] = nil
	a.free = append(a.free, h)
}

func (a *arena) get(h Handle) *Triangle {
	if h < 0 || int(h) >= len(a.slots) || a.slots[h] == nil {
		panic(fmt.Sprintf("stale triangle handle %d", h))
	}
	return a.slots[h]
}

func (a *arena) len() int {
	return len(a.slots) - len(a.free)
}
