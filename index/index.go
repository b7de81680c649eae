// Package index provides interfaces and types for spatial indexes over
// event locations.
package index

import (
	"iter"

	"github.com/paulmach/orb"
)

// Entry pairs a bounding box with the store position of the event it was
// built from. The box always equals the event's location (degenerate to a
// point for point geometry); entries never carry a copy of the record.
type Entry struct {
	Bound orb.Bound
	Pos   uint32
}

// Spatial is a read-only spatial index built once per load.
//
// Search yields the position of every entry whose bounding box intersects
// the query box, in an order that is unspecified but deterministic for a
// fixed index. An empty index answers every query with an empty sequence.
type Spatial interface {
	Search(box orb.Bound) iter.Seq[uint32]
	Len() int
}
