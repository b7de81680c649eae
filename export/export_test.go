package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brigid-void/OxyMap/codec"
	"github.com/brigid-void/OxyMap/event"
	"github.com/brigid-void/OxyMap/query"
	"github.com/brigid-void/OxyMap/store"
)

func viewOf(t *testing.T, records []event.Record) *query.View {
	t.Helper()

	s := store.New()
	s.Load(records)
	return query.All(s)
}

func sampleView(t *testing.T) *query.View {
	t.Helper()

	return viewOf(t, []event.Record{
		{ID: "a", Properties: map[string]string{"org": "X", "date": "1", "sentiment": "0.5", "momentum": "0.1"}, Geometry: orb.Point{13.4, 52.5}},
		{ID: "b", Properties: map[string]string{"org": "Y", "date": "2", "sentiment": "-0.2"}, Geometry: orb.Point{-73.9, 40.7}},
	})
}

func TestJSON(t *testing.T) {
	t.Run("DocumentShape", func(t *testing.T) {
		b, err := JSON(sampleView(t))
		require.NoError(t, err)

		var docs []map[string]any
		require.NoError(t, codec.Default.Unmarshal(b, &docs))
		require.Len(t, docs, 2)

		assert.Equal(t, "a", docs[0]["id"])
		assert.Equal(t, "X", docs[0]["org"])
		assert.Equal(t, 1.0, docs[0]["date"])
		assert.Equal(t, []any{13.4, 52.5}, docs[0]["geometry"])
	})

	t.Run("StableFieldOrder", func(t *testing.T) {
		b, err := JSON(sampleView(t))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(b), `[{"id":"a","org":"X","date":1,`))
	})

	t.Run("EmptyView", func(t *testing.T) {
		b, err := JSON(viewOf(t, nil))
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(b))
	})

	t.Run("Deterministic", func(t *testing.T) {
		v := sampleView(t)
		first, err := JSON(v)
		require.NoError(t, err)
		second, err := JSON(v)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("StdlibCodec", func(t *testing.T) {
		fast, err := JSON(sampleView(t))
		require.NoError(t, err)
		std, err := JSON(sampleView(t), WithCodec(codec.JSON{}))
		require.NoError(t, err)
		assert.JSONEq(t, string(fast), string(std))
	})
}

func TestCSV(t *testing.T) {
	t.Run("HeaderAndRows", func(t *testing.T) {
		b, err := CSV(sampleView(t))
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
		require.Len(t, lines, 3) // header + 2 rows
		assert.Equal(t, "id,org,date,sentiment,momentum,geometry", lines[0])
	})

	t.Run("RoundTrip", func(t *testing.T) {
		b, err := CSV(sampleView(t))
		require.NoError(t, err)

		rows, err := csv.NewReader(bytes.NewReader(b)).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, Header, rows[0])

		assert.Equal(t, "a", rows[1][0])
		assert.Equal(t, "X", rows[1][1])

		date, err := strconv.ParseFloat(rows[1][2], 64)
		require.NoError(t, err)
		assert.Equal(t, 1.0, date)

		sentiment, err := strconv.ParseFloat(rows[1][3], 32)
		require.NoError(t, err)
		assert.Equal(t, float32(0.5), float32(sentiment))

		assert.Equal(t, "13.4,52.5", rows[1][5])
	})

	t.Run("QuotesDelimiterInFields", func(t *testing.T) {
		v := viewOf(t, []event.Record{{
			ID:         "odd,id",
			Properties: map[string]string{"org": "Org \"A\",\nBerlin"},
			Geometry:   orb.Point{1, 2},
		}})

		b, err := CSV(v)
		require.NoError(t, err)

		rows, err := csv.NewReader(bytes.NewReader(b)).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "odd,id", rows[1][0])
		assert.Equal(t, "Org \"A\",\nBerlin", rows[1][1])
	})

	t.Run("EmptyView", func(t *testing.T) {
		b, err := CSV(viewOf(t, nil))
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
		assert.Len(t, lines, 1)
	})

	t.Run("Gzip", func(t *testing.T) {
		plain, err := CSV(sampleView(t))
		require.NoError(t, err)

		packed, err := CSV(sampleView(t), WithGzip())
		require.NoError(t, err)

		r, err := gzip.NewReader(bytes.NewReader(packed))
		require.NoError(t, err)

		var out bytes.Buffer
		_, err = out.ReadFrom(r)
		require.NoError(t, err)
		require.NoError(t, r.Close())

		assert.Equal(t, plain, out.Bytes())
	})
}
