// Package checkpoint persists and attests frontier states. A checkpoint is
// a frontier snapshot at a specific leaf count for a specific stream; it
// can be stored locally, restored to a live accumulator, and sealed with a
// COSE Sign1 signature whose published payload deliberately omits the root.
package checkpoint

import (
	"fmt"

	"github.com/google/uuid"

	merkleroot "github.com/forestrie/go-merkleroot"
)

const StateVersion1 = uint32(1)

// State is the serialized form of a frontier at a specific leaf count,
// scoped to a stream. The field numbers are the wire format; never
// renumber them.
type State struct {
	Version  uint32 `cbor:"1,keyasint"`
	StreamID []byte `cbor:"2,keyasint"`

	// LeafCount fixes the shape of the tree. Any later state of the same
	// stream can reproduce the peaks, and hence the root, for this count,
	// which is what makes detached root verification workable.
	LeafCount uint64 `cbor:"3,keyasint"`

	// Peaks are the occupied frontier slots from the lowest level upward,
	// exactly as merkleroot.Frontier.Peaks reports them.
	Peaks [][]byte `cbor:"4,keyasint"`

	// Root over all LeafCount leaves. Nil in published seals, see Sealer.
	Root []byte `cbor:"5,keyasint,omitempty"`

	// Timestamp is the unix time (milliseconds) read when the snapshot was
	// taken. Including it allows the same frontier state to be re-sealed.
	Timestamp int64 `cbor:"6,keyasint"`
}

// NewState snapshots f for the given stream. It fails when f is empty, the
// empty tree has no root to attest.
func NewState(f *merkleroot.Frontier, streamID uuid.UUID, timestamp int64) (State, error) {
	root, err := f.Root()
	if err != nil {
		return State{}, err
	}

	peaks := f.Peaks()
	encoded := make([][]byte, len(peaks))
	for i := range peaks {
		encoded[i] = peaks[i]
	}

	return State{
		Version:   StateVersion1,
		StreamID:  streamID[:],
		LeafCount: f.LeafCount(),
		Peaks:     encoded,
		Root:      root.Clone(),
		Timestamp: timestamp,
	}, nil
}

// Frontier reconstructs the accumulator this state snapshots, ready to
// resume appends.
func (s State) Frontier(h merkleroot.Hasher) (*merkleroot.Frontier, error) {
	peaks := make([]merkleroot.Digest, len(s.Peaks))
	for i := range s.Peaks {
		peaks[i] = merkleroot.Digest(s.Peaks[i])
	}
	return merkleroot.RestoreFrontier(h, s.LeafCount, peaks)
}

func (s State) streamUUID() (uuid.UUID, error) {
	id, err := uuid.FromBytes(s.StreamID)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("%w: %v", ErrStreamIDInvalid, err)
	}
	return id, nil
}
