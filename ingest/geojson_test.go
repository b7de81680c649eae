package ingest

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCollection = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"id": "a",
			"geometry": {"type": "Point", "coordinates": [13.4, 52.5]},
			"properties": {"org": "X", "date": 1.5, "sentiment": "0.5", "active": true}
		},
		{
			"type": "Feature",
			"geometry": {"type": "LineString", "coordinates": [[0, 0], [1, 1]]},
			"properties": {"id": "route", "org": "Y"}
		}
	]
}`

func TestDecode(t *testing.T) {
	t.Run("FeatureCollection", func(t *testing.T) {
		records, err := Decode([]byte(sampleCollection))
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, "a", records[0].ID)
		assert.Equal(t, orb.Point{13.4, 52.5}, records[0].Geometry)
		assert.Equal(t, "X", records[0].Properties["org"])
		// Numeric and boolean properties arrive as strings.
		assert.Equal(t, "1.5", records[0].Properties["date"])
		assert.Equal(t, "0.5", records[0].Properties["sentiment"])
		assert.Equal(t, "true", records[0].Properties["active"])

		// Non-point geometry passes through; the store decides to skip it.
		assert.IsType(t, orb.LineString{}, records[1].Geometry)
		// Identifier falls back to the "id" property.
		assert.Equal(t, "route", records[1].ID)
	})

	t.Run("EmptyCollection", func(t *testing.T) {
		records, err := Decode([]byte(`{"type": "FeatureCollection", "features": []}`))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, data := range []string{
			``,
			`not json`,
			`{"type": "FeatureCollection", "features": "nope"}`,
		} {
			_, err := Decode([]byte(data))
			assert.Error(t, err, "input %q", data)
		}
	})
}
