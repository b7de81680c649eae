package query

import (
	"iter"

	"github.com/brigid-void/OxyMap/event"
)

// View is the transient, ordered result of one filter call: a list of
// positions into the snapshot the filter ran against. Views are cheap to
// create, are not updated by later loads and are meant to be consumed
// immediately (exported or iterated), not persisted.
type View struct {
	events    []event.Event
	positions []uint32
}

// Len returns the number of matching events.
func (v *View) Len() int {
	if v == nil {
		return 0
	}
	return len(v.positions)
}

// Events yields the matching events in store order.
func (v *View) Events() iter.Seq[event.Event] {
	return func(yield func(event.Event) bool) {
		if v == nil {
			return
		}
		for _, pos := range v.positions {
			if !yield(v.events[pos]) {
				return
			}
		}
	}
}

// At returns the i-th matching event.
func (v *View) At(i int) event.Event {
	return v.events[v.positions[i]]
}

// IDs returns the ids of the matching events in store order.
func (v *View) IDs() []string {
	if v == nil {
		return nil
	}
	ids := make([]string, 0, len(v.positions))
	for _, pos := range v.positions {
		ids = append(ids, v.events[pos].ID)
	}
	return ids
}
