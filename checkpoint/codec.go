package checkpoint

import (
	"github.com/fxamacker/cbor/v2"
)

// Codec pairs the deterministic encode mode used for checkpoint payloads
// with a matching decode mode. Determinism matters because seal
// verification re-encodes the state and checks the signature over the
// result; an encoder free to reorder map keys would fail verification for
// structurally equal states.
type Codec struct {
	em cbor.EncMode
	dm cbor.DecMode
}

func NewCodec() (Codec, error) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return Codec{}, err
	}
	dm, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return Codec{}, err
	}
	return Codec{em: em, dm: dm}, nil
}

func (c Codec) Marshal(v any) ([]byte, error) {
	return c.em.Marshal(v)
}

func (c Codec) UnmarshalInto(data []byte, v any) error {
	return c.dm.Unmarshal(data, v)
}
