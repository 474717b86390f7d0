package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// JSON snapshots are larger and slower to decode than CBOR ones, but
// they are human-readable, which makes them the right choice for
// fixtures and interchange with non-Go tooling. Note that JSON cannot
// represent IEEE-754 NaN or infinities; geometry containing them must
// use CBOR.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }
