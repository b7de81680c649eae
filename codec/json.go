package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Use it when the most portable option matters more than encoding speed;
// both built-in codecs produce the same document shape.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }
