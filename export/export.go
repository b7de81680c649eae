// Package export renders filtered views as structured text (JSON) and
// delimited tabular text (CSV). All exporters are pure functions of the
// view they are given: same view, same bytes.
package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/klauspost/compress/gzip"

	"github.com/brigid-void/OxyMap/codec"
	"github.com/brigid-void/OxyMap/query"
)

// Header is the column schema of the tabular export.
var Header = []string{"id", "org", "date", "sentiment", "momentum", "geometry"}

// Options contains configuration options for exports.
type Options struct {
	// Codec encodes the structured-text export. Nil falls back to
	// codec.Default.
	Codec codec.Codec

	// Gzip compresses the output byte stream. Intended for constrained
	// hosts that ship exports over a narrow boundary.
	Gzip bool
}

// DefaultOptions contains the default configuration options for exports.
var DefaultOptions = Options{
	Codec: codec.Default,
}

// WithCodec sets the structured-text codec. Nil keeps the default.
func WithCodec(c codec.Codec) func(o *Options) {
	return func(o *Options) {
		if c != nil {
			o.Codec = c
		}
	}
}

// WithGzip compresses the exported bytes.
func WithGzip() func(o *Options) {
	return func(o *Options) {
		o.Gzip = true
	}
}

// document is one exported record. Field order is the stable contract:
// id, org, date, sentiment, momentum, geometry as an [x, y] pair.
type document struct {
	ID        string    `json:"id"`
	Org       string    `json:"org"`
	Date      float64   `json:"date"`
	Sentiment float32   `json:"sentiment"`
	Momentum  float32   `json:"momentum"`
	Geometry  []float64 `json:"geometry"`
}

// JSON renders the view as an array of objects, one per matching event,
// in view order.
func JSON(v *query.View, optFns ...func(o *Options)) ([]byte, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	docs := make([]document, 0, v.Len())
	for ev := range v.Events() {
		docs = append(docs, document{
			ID:        ev.ID,
			Org:       ev.Org,
			Date:      ev.Date,
			Sentiment: ev.Sentiment,
			Momentum:  ev.Momentum,
			Geometry:  []float64{ev.Location.X(), ev.Location.Y()},
		})
	}

	b, err := opts.Codec.Marshal(docs)
	if err != nil {
		return nil, err
	}

	if opts.Gzip {
		return compress(b)
	}

	return b, nil
}

// CSV renders the view as delimited text: a header row followed by one row
// per matching event in view order. The geometry column holds "x,y"; cells
// containing the delimiter, quotes or newlines are quoted per RFC 4180.
func CSV(v *query.View, optFns ...func(o *Options)) ([]byte, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Header); err != nil {
		return nil, err
	}

	for ev := range v.Events() {
		row := []string{
			ev.ID,
			ev.Org,
			formatFloat(ev.Date),
			formatFloat32(ev.Sentiment),
			formatFloat32(ev.Momentum),
			formatFloat(ev.Location.X()) + "," + formatFloat(ev.Location.Y()),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	if opts.Gzip {
		return compress(buf.Bytes())
	}

	return buf.Bytes(), nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatFloat32(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func compress(b []byte) ([]byte, error) {
	var buf bytes.Buffer

	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(b); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
