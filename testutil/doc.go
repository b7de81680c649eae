// Package testutil provides testing utilities for OxyMap.
//
// This package is intended for use in tests only. It provides a seeded,
// thread-safe RNG and helpers for generating random points, boxes and
// event records.
//
//	rng := testutil.NewRNG(seed)
//	points := rng.Points(1000, testutil.WorldBound)
//	events := rng.Events(100, testutil.WorldBound)
package testutil
