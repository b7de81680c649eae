// Package codec centralizes export document encoding.
//
// The engine's structured-text export is JSON-shaped; the codec seam lets
// a host swap the encoder without touching the exporters.
package codec

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Default is the default codec used by the library.
var Default Codec = GoJSON{}
