// Package query combines spatial containment with attribute-range
// predicates to produce filtered views over a store.
package query

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/paulmach/orb"

	"github.com/brigid-void/OxyMap/event"
	"github.com/brigid-void/OxyMap/store"
)

// FullRange matches every value of a numeric attribute.
var FullRange = [2]float64{math.Inf(-1), math.Inf(1)}

// Request describes one filter call. A matching event must satisfy every
// supplied predicate (logical AND):
//
//   - Org: nil matches any org, otherwise exact equality.
//   - DateRange, SentimentRange: inclusive on both ends. A range with
//     min > max matches nothing; that is an empty result, not an error.
//   - MomentumRange: optional, same semantics as the other ranges.
//   - Within: optional bounding box over event locations. When present the
//     engine narrows candidates through the spatial index before attribute
//     checks; when absent it scans the store.
type Request struct {
	Org            *string
	DateRange      [2]float64
	SentimentRange [2]float64
	MomentumRange  *[2]float64
	Within         *orb.Bound
}

// Matches reports whether a single event satisfies every supplied
// predicate of the request.
func (r Request) Matches(ev event.Event) bool {
	if r.Org != nil && ev.Org != *r.Org {
		return false
	}
	if ev.Date < r.DateRange[0] || ev.Date > r.DateRange[1] {
		return false
	}

	s := float64(ev.Sentiment)
	if s < r.SentimentRange[0] || s > r.SentimentRange[1] {
		return false
	}

	if r.MomentumRange != nil {
		m := float64(ev.Momentum)
		if m < r.MomentumRange[0] || m > r.MomentumRange[1] {
			return false
		}
	}

	if r.Within != nil && !r.Within.Contains(ev.Location) {
		return false
	}

	return true
}

// Filter answers a request against the store's current snapshot and
// returns the matching events as a view in store order. An unmatched
// filter or an empty store yields an empty view; Filter never fails.
//
// With a Within box the candidate set comes from the spatial index first:
// index hits are collected into a bitmap whose ascending iteration order
// is exactly store order, then attribute predicates run over candidates
// only. Without a box every event is scanned.
func Filter(s *store.Store, req Request) *View {
	events, tree := s.Snapshot()

	var positions []uint32

	if req.Within != nil {
		candidates := roaring.New()
		for pos := range tree.Search(*req.Within) {
			candidates.Add(pos)
		}

		it := candidates.Iterator()
		for it.HasNext() {
			pos := it.Next()
			if req.Matches(events[pos]) {
				positions = append(positions, pos)
			}
		}
	} else {
		for i, ev := range events {
			if req.Matches(ev) {
				positions = append(positions, uint32(i)) //nolint:gosec // bounded by len(events)
			}
		}
	}

	return &View{events: events, positions: positions}
}

// All returns a view of every event in the store, in store order.
func All(s *store.Store) *View {
	events := s.Events()

	positions := make([]uint32, len(events))
	for i := range positions {
		positions[i] = uint32(i) //nolint:gosec // bounded by len(events)
	}

	return &View{events: events, positions: positions}
}
