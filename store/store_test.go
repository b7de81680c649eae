package store

import (
	"testing"
	"unsafe"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/brigid-void/OxyMap/event"
	"github.com/brigid-void/OxyMap/testutil"
)

func TestStore(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		s := New()
		assert.Equal(t, 0, s.Len())
		assert.Empty(t, s.Events())
		assert.Equal(t, uint64(0), s.MemoryFootprint())

		_, tree := s.Snapshot()
		for range tree.Search(testutil.WorldBound) {
			t.Fatal("empty index yielded a position")
		}
	})

	t.Run("Load", func(t *testing.T) {
		s := New()
		n := s.Load([]event.Record{
			{ID: "a", Properties: map[string]string{"org": "X", "date": "1"}, Geometry: orb.Point{1, 2}},
			{ID: "b", Properties: map[string]string{"org": "Y", "date": "2"}, Geometry: orb.Point{3, 4}},
		})
		require.Equal(t, 2, n)
		require.Equal(t, 2, s.Len())

		// Input order is preserved.
		assert.Equal(t, "a", s.At(0).ID)
		assert.Equal(t, "b", s.At(1).ID)
	})

	t.Run("NonPointRecordsSkipped", func(t *testing.T) {
		s := New()
		n := s.Load([]event.Record{
			{ID: "a", Geometry: orb.Point{1, 2}},
			{ID: "line", Geometry: orb.LineString{{0, 0}, {1, 1}}},
			{ID: "poly", Geometry: orb.Polygon{{{0, 0}, {1, 0}, {0, 1}, {0, 0}}}},
			{ID: "b", Geometry: orb.Point{3, 4}},
		})
		assert.Equal(t, 2, n)
		assert.Equal(t, 2, s.Len())

		// Index entry count matches the record count exactly.
		_, tree := s.Snapshot()
		assert.Equal(t, 2, tree.Len())
	})

	t.Run("ReplaceAll", func(t *testing.T) {
		s := New()
		s.Load([]event.Record{{ID: "a", Geometry: orb.Point{1, 2}}})
		s.Load([]event.Record{
			{ID: "c", Geometry: orb.Point{5, 6}},
			{ID: "d", Geometry: orb.Point{7, 8}},
		})

		require.Equal(t, 2, s.Len())
		assert.Equal(t, "c", s.At(0).ID)
	})

	t.Run("SnapshotConsistency", func(t *testing.T) {
		s := New()
		s.Load([]event.Record{{ID: "a", Geometry: orb.Point{1, 2}}})

		events, tree := s.Snapshot()

		// A later load must not disturb an already-taken snapshot.
		s.Load([]event.Record{
			{ID: "x", Geometry: orb.Point{9, 9}},
			{ID: "y", Geometry: orb.Point{8, 8}},
		})

		require.Len(t, events, 1)
		assert.Equal(t, 1, tree.Len())
		assert.Equal(t, "a", events[0].ID)
	})

	t.Run("MemoryFootprint", func(t *testing.T) {
		s := New()
		rng := testutil.NewRNG(1)
		s.Load(testutil.Records(rng.Events(10, testutil.WorldBound)))

		want := uint64(10) * uint64(unsafe.Sizeof(event.Event{}))
		assert.Equal(t, want, s.MemoryFootprint())
	})
}

// Reads against the latest snapshot may run concurrently with each other
// while loads happen; every read observes a complete snapshot where the
// index size equals the event count.
func TestStoreConcurrentReads(t *testing.T) {
	rng := testutil.NewRNG(5)
	small := testutil.Records(rng.Events(10, testutil.WorldBound))
	large := testutil.Records(rng.Events(100, testutil.WorldBound))

	s := New()
	s.Load(small)

	var g errgroup.Group

	g.Go(func() error {
		for i := 0; i < 50; i++ {
			if i%2 == 0 {
				s.Load(large)
			} else {
				s.Load(small)
			}
		}
		return nil
	})

	for r := 0; r < 4; r++ {
		g.Go(func() error {
			for i := 0; i < 200; i++ {
				events, tree := s.Snapshot()
				assert.Equal(t, len(events), tree.Len())

				seen := 0
				for range tree.Search(testutil.WorldBound) {
					seen++
				}
				assert.Equal(t, len(events), seen)
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}
