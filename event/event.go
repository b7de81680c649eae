// Package event defines the immutable activism event record and the raw
// parsed feature shape it is coerced from.
package event

import (
	"strconv"

	"github.com/paulmach/orb"
)

// Record is one decoded input feature: an identifier, a string-keyed
// attribute map and a geometry. Records are produced by an external format
// reader (see the ingest package for the built-in GeoJSON one) and consumed
// by a store load.
type Record struct {
	ID         string
	Properties map[string]string
	Geometry   orb.Geometry
}

// Event is an immutable geotagged activism event. Events are created once
// during a load and never mutated afterwards.
type Event struct {
	ID        string
	Org       string
	Date      float64
	Sentiment float32
	Momentum  float32
	Location  orb.Point
}

// FromRecord coerces a raw record into an Event.
//
// The second return value is false when the record's geometry is not a
// single point; such records are skipped by loads, not reported as errors.
// Attribute coercion never fails: org passes through (default ""), the
// numeric attributes parse as numbers and default to 0.0 when missing or
// unparsable.
func FromRecord(r Record) (Event, bool) {
	point, ok := r.Geometry.(orb.Point)
	if !ok {
		return Event{}, false
	}

	return Event{
		ID:        r.ID,
		Org:       r.Properties["org"],
		Date:      parseFloat64(r.Properties["date"]),
		Sentiment: parseFloat32(r.Properties["sentiment"]),
		Momentum:  parseFloat32(r.Properties["momentum"]),
		Location:  point,
	}, true
}

func parseFloat64(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseFloat32(s string) float32 {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0
	}
	return float32(v)
}
