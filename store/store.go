// Package store owns the ordered event collection and its spatial index.
package store

import (
	"sync"
	"sync/atomic"

	"github.com/brigid-void/OxyMap/event"
	"github.com/brigid-void/OxyMap/index"
	"github.com/brigid-void/OxyMap/index/rtree"
	"github.com/brigid-void/OxyMap/internal/mem"
)

// Options contains configuration options for the store.
type Options struct {
	// LeafCapacity is the maximum number of entries per spatial index node.
	LeafCapacity int
}

// DefaultOptions contains the default configuration options for the store.
var DefaultOptions = Options{
	LeafCapacity: rtree.DefaultOptions.MaxEntries,
}

// snapshot holds the immutable state of the store for lock-free reads.
// Events and tree are always built together; readers never observe one
// without the matching other.
type snapshot struct {
	events []event.Event
	tree   *rtree.Tree
}

// Store holds the full ordered collection of events (input order) and the
// bounding-box tree over their locations. It uses a copy-on-write pattern:
// Load builds a complete new snapshot and swaps it in atomically, so reads
// are lock-free and a failed load leaves the previous contents intact.
//
// Load is the only mutator. It must not run concurrently with itself;
// callers provide that exclusion. Reads may run concurrently with each
// other and observe the last completed load.
type Store struct {
	state   atomic.Value // holds *snapshot for lock-free reads
	writeMu sync.Mutex   // serializes loads only
	opts    Options
}

// New creates an empty store.
func New(optFns ...func(o *Options)) *Store {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	s := &Store{opts: opts}
	s.state.Store(&snapshot{
		events: make([]event.Event, 0),
		tree:   rtree.Build(nil),
	})

	return s
}

// Load replaces the store's contents with the events coerced from records.
// Records whose geometry is not a single point are silently skipped. The
// event sequence and the spatial index are constructed in one pass and
// installed with a single atomic swap; no partial state is ever visible.
//
// It returns the number of events loaded.
func (s *Store) Load(records []event.Record) int {
	events := make([]event.Event, 0, len(records))
	entries := make([]index.Entry, 0, len(records))

	for _, r := range records {
		ev, ok := event.FromRecord(r)
		if !ok {
			continue
		}
		entries = append(entries, index.Entry{
			Bound: ev.Location.Bound(),
			Pos:   uint32(len(events)), //nolint:gosec // bounded by len(records)
		})
		events = append(events, ev)
	}

	tree := rtree.Build(entries, func(o *rtree.Options) {
		o.MaxEntries = s.opts.LeafCapacity
	})

	s.writeMu.Lock()
	s.state.Store(&snapshot{events: events, tree: tree})
	s.writeMu.Unlock()

	return len(events)
}

func (s *Store) getState() *snapshot {
	return s.state.Load().(*snapshot)
}

// Snapshot returns the current event sequence and the spatial index built
// over it, guaranteed to belong to the same load. The returned slice is
// shared and must be treated as read-only.
func (s *Store) Snapshot() ([]event.Event, index.Spatial) {
	st := s.getState()
	return st.events, st.tree
}

// Events returns the current event sequence in input order.
// The returned slice is shared and must be treated as read-only.
func (s *Store) Events() []event.Event {
	return s.getState().events
}

// At returns the event at position i of the current sequence.
func (s *Store) At(i int) event.Event {
	return s.getState().events[i]
}

// Len returns the number of currently loaded events.
func (s *Store) Len() int {
	return len(s.getState().events)
}

// MemoryFootprint estimates the bytes occupied by the event sequence as
// event count times the fixed per-event size. This is an approximation: it
// excludes the spatial index and the heap allocations behind the id and
// org strings. An empty store reports 0.
func (s *Store) MemoryFootprint() uint64 {
	return mem.SliceFixedSize[event.Event](s.Len())
}
