package testutil

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/paulmach/orb"

	"github.com/brigid-void/OxyMap/event"
)

// WorldBound is the default coordinate range for generated data,
// lon/lat degrees.
var WorldBound = orb.Bound{
	Min: orb.Point{-180, -90},
	Max: orb.Point{180, 90},
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Float64InRange returns a pseudo-random number in [minVal,maxVal).
func (r *RNG) Float64InRange(minVal, maxVal float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return minVal + r.rand.Float64()*(maxVal-minVal)
}

// Point returns a pseudo-random point inside within.
func (r *RNG) Point(within orb.Bound) orb.Point {
	return orb.Point{
		r.Float64InRange(within.Min.X(), within.Max.X()),
		r.Float64InRange(within.Min.Y(), within.Max.Y()),
	}
}

// Points generates n pseudo-random points inside within.
func (r *RNG) Points(n int, within orb.Bound) []orb.Point {
	points := make([]orb.Point, n)
	for i := range points {
		points[i] = r.Point(within)
	}
	return points
}

// Box returns a pseudo-random box inside within.
func (r *RNG) Box(within orb.Bound) orb.Bound {
	a, b := r.Point(within), r.Point(within)
	return a.Bound().Union(b.Bound())
}

// Events generates n events with ids "e0", "e1", ... and attributes drawn
// from a small org set, date in [0,100), sentiment and momentum in [-1,1).
func (r *RNG) Events(n int, within orb.Bound) []event.Event {
	orgs := []string{"X", "Y", "Z"}

	events := make([]event.Event, n)
	for i := range events {
		events[i] = event.Event{
			ID:        fmt.Sprintf("e%d", i),
			Org:       orgs[r.Intn(len(orgs))],
			Date:      r.Float64InRange(0, 100),
			Sentiment: float32(r.Float64InRange(-1, 1)),
			Momentum:  float32(r.Float64InRange(-1, 1)),
			Location:  r.Point(within),
		}
	}
	return events
}

// Records converts events back into the raw record shape a format reader
// would produce.
func Records(events []event.Event) []event.Record {
	records := make([]event.Record, len(events))
	for i, ev := range events {
		records[i] = event.Record{
			ID: ev.ID,
			Properties: map[string]string{
				"org":       ev.Org,
				"date":      fmt.Sprintf("%g", ev.Date),
				"sentiment": fmt.Sprintf("%g", ev.Sentiment),
				"momentum":  fmt.Sprintf("%g", ev.Momentum),
			},
			Geometry: ev.Location,
		}
	}
	return records
}
