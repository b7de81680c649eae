// Package ingest decodes raw input bytes into the record shape a store
// load consumes.
//
// The engine's load boundary is a sequence of (id, attribute-map, geometry)
// records; hosts with their own format reader can hand records to the
// processor directly and skip this package. The built-in reader accepts a
// GeoJSON FeatureCollection.
package ingest

import (
	"fmt"
	"strconv"

	"github.com/paulmach/orb/geojson"

	"github.com/brigid-void/OxyMap/event"
)

// Decode parses a GeoJSON FeatureCollection into raw records, one per
// feature, preserving input order. Attribute values of any JSON type are
// carried as strings; the store's coercion decides what they mean.
// Geometry is passed through untouched, including non-point geometry.
//
// A document that is not a decodable feature collection is an error; a
// collection with zero features is not.
func Decode(data []byte) ([]event.Record, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decode feature collection: %w", err)
	}

	records := make([]event.Record, 0, len(fc.Features))
	for _, f := range fc.Features {
		records = append(records, event.Record{
			ID:         featureID(f),
			Properties: stringProperties(f.Properties),
			Geometry:   f.Geometry,
		})
	}

	return records, nil
}

// featureID extracts the feature's identifier: the top-level "id" member
// when present, else the "id" property, else "".
func featureID(f *geojson.Feature) string {
	if s := stringValue(f.ID); s != "" {
		return s
	}
	return stringValue(f.Properties["id"])
}

func stringProperties(props geojson.Properties) map[string]string {
	out := make(map[string]string, len(props))
	for k, v := range props {
		out[k] = stringValue(v)
	}
	return out
}

func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
