// Package oxymap provides an embeddable geospatial event engine for Go.
//
// OxyMap ingests a collection of geotagged activism events, builds an
// in-memory bounding-box tree over their locations and answers combined
// spatial/attribute range queries, producing filtered result sets and flat
// tabular exports. It is designed to run inside a constrained host (such
// as a browser tab) where both memory footprint and query latency matter.
//
// # Quick Start
//
//	p := oxymap.New()
//	if err := p.Load(geojsonBytes); err != nil { ... }
//
//	org := "X"
//	view := p.Filter(query.Request{
//	    Org:            &org,
//	    DateRange:      [2]float64{0, 3},
//	    SentimentRange: [2]float64{0, 1},
//	})
//
//	doc, _ := p.ExportJSON(view)
//	table, _ := p.ExportCSV(view)
//	bytesUsed := p.MemoryFootprint()
//
// # Loading
//
// Load is all-or-nothing: the event sequence and the spatial index are
// built together and installed with one atomic swap. A malformed input
// fails the whole call and leaves the previous contents untouched.
// Features whose geometry is not a single point are silently skipped.
// There are no per-record updates; every load replaces the store wholesale.
//
// # Concurrency
//
// Every operation is synchronous and runs to completion on the calling
// goroutine. Load is the only mutator and needs external exclusion against
// itself; queries and exports are read-only, lock-free and may run
// concurrently with each other against the last completed load.
//
// # Key Features
//
//   - STR bulk-packed R-tree, rebuilt once per load
//   - Conjunctive org/date/sentiment/momentum/bounding-box filters
//   - JSON and CSV exports, optionally gzip-compressed
//   - Approximate memory footprint reporting
package oxymap
