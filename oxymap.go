package oxymap

import (
	"time"

	"github.com/brigid-void/OxyMap/event"
	"github.com/brigid-void/OxyMap/export"
	"github.com/brigid-void/OxyMap/ingest"
	"github.com/brigid-void/OxyMap/query"
	"github.com/brigid-void/OxyMap/store"
)

// Processor is the engine facade: an event store with its spatial index
// plus the query and export entry points. The zero value is not usable;
// create instances with New.
type Processor struct {
	store *store.Store
	opts  options
}

// New creates an empty processor.
func New(optFns ...Option) *Processor {
	opts := applyOptions(optFns)

	return &Processor{
		store: store.New(func(o *store.Options) {
			if opts.leafCapacity >= 2 {
				o.LeafCapacity = opts.leafCapacity
			}
		}),
		opts: opts,
	}
}

// Load decodes a GeoJSON FeatureCollection and replaces the store's
// contents with its point features. Non-point features are silently
// skipped. The call is all-or-nothing: on a malformed document it returns
// *ErrMalformed and the previously loaded contents stay untouched.
//
// Load must not run concurrently with any other operation on the same
// processor; callers provide that exclusion.
func (p *Processor) Load(data []byte) error {
	start := time.Now()

	records, err := ingest.Decode(data)
	if err != nil {
		lerr := &ErrMalformed{Reason: "input is not a decodable feature collection", cause: err}
		p.opts.logger.LogLoad(0, 0, lerr)
		p.opts.metricsCollector.RecordLoad(0, 0, time.Since(start), lerr)
		return lerr
	}

	p.loadRecords(records, start)

	return nil
}

// LoadRecords replaces the store's contents from an already-decoded record
// sequence, for hosts that run their own format reader. Semantics match
// Load. It returns the number of events installed.
func (p *Processor) LoadRecords(records []event.Record) int {
	return p.loadRecords(records, time.Now())
}

func (p *Processor) loadRecords(records []event.Record, start time.Time) int {
	loaded := p.store.Load(records)
	skipped := len(records) - loaded

	p.opts.logger.LogLoad(loaded, skipped, nil)
	p.opts.metricsCollector.RecordLoad(loaded, skipped, time.Since(start), nil)

	return loaded
}

// Filter answers a combined spatial/attribute request and returns the
// matching events in store order. It never fails: an unmatched filter, an
// inverted range or an empty store all yield an empty view.
func (p *Processor) Filter(req query.Request) *query.View {
	start := time.Now()

	view := query.Filter(p.store, req)

	p.opts.logger.LogFilter(view.Len())
	p.opts.metricsCollector.RecordFilter(view.Len(), time.Since(start))

	return view
}

// All returns a view of every loaded event in store order.
func (p *Processor) All() *query.View {
	return query.All(p.store)
}

// ExportJSON renders a view as a structured-text document: an array of
// objects with fields id, org, date, sentiment, momentum and geometry as
// an [x, y] pair.
func (p *Processor) ExportJSON(view *query.View, optFns ...func(o *export.Options)) ([]byte, error) {
	start := time.Now()

	opts := append([]func(o *export.Options){export.WithCodec(p.opts.codec)}, optFns...)
	b, err := export.JSON(view, opts...)

	p.opts.logger.LogExport("json", len(b), err)
	p.opts.metricsCollector.RecordExport("json", len(b), time.Since(start), err)

	return b, err
}

// ExportCSV renders a view as delimited text with the header
// id,org,date,sentiment,momentum,geometry and one row per event.
func (p *Processor) ExportCSV(view *query.View, optFns ...func(o *export.Options)) ([]byte, error) {
	start := time.Now()

	b, err := export.CSV(view, optFns...)

	p.opts.logger.LogExport("csv", len(b), err)
	p.opts.metricsCollector.RecordExport("csv", len(b), time.Since(start), err)

	return b, err
}

// Len returns the number of currently loaded events.
func (p *Processor) Len() int {
	return p.store.Len()
}

// MemoryFootprint estimates the bytes occupied by the loaded event
// sequence (event count times fixed per-event size). The estimate excludes
// the spatial index and attribute-string heap allocations; treat it as a
// lower bound, not a precise measurement.
func (p *Processor) MemoryFootprint() uint64 {
	return p.store.MemoryFootprint()
}

// Store exposes the underlying event store for read-only use.
func (p *Processor) Store() *store.Store {
	return p.store
}
