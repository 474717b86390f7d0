package codec

import (
	"github.com/fxamacker/cbor/v2"
)

// CBOR is a binary codec backed by github.com/fxamacker/cbor. It honors
// `json` struct tags, so a type round-trips identically under both
// built-in codecs. Unlike JSON it preserves NaN and infinities, which
// geometry payloads can legitimately contain in unbounded domains.
//
// Persisted files store the codec name in their header and are opened
// by selecting the codec by name.
type CBOR struct{}

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	cborDec, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(err)
	}
}

// Marshal encodes the value to deterministic CBOR.
func (CBOR) Marshal(v any) ([]byte, error) { return cborEnc.Marshal(v) }

// Unmarshal decodes the CBOR data into v.
func (CBOR) Unmarshal(data []byte, v any) error { return cborDec.Unmarshal(data, v) }

// Name returns the unique name of the codec ("cbor").
func (CBOR) Name() string { return "cbor" }

// Default is the codec used for newly-created snapshots. Existing files
// are self-describing and are opened with the codec they were written
// with.
var Default Codec = CBOR{}
