package merkleroot

import (
	"bytes"
	"encoding/hex"
)

// Digest is the opaque output of a Hasher. Its width is fixed for any one
// hasher. A digest has no identity beyond its byte value; two digests are
// equal iff their bytes are equal.
type Digest []byte

func (d Digest) Equal(other Digest) bool {
	return bytes.Equal(d, other)
}

// Clone returns a copy backed by fresh memory. Digests returned by the
// package never share memory with caller inputs, and callers that retain a
// digest across further tree operations should clone it if they intend to
// mutate the original.
func (d Digest) Clone() Digest {
	if d == nil {
		return nil
	}
	out := make(Digest, len(d))
	copy(out, d)
	return out
}

// String renders the digest as lowercase hex.
func (d Digest) String() string {
	return hex.EncodeToString(d)
}
