package checkpoint

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	merkleroot "github.com/forestrie/go-merkleroot"
	"github.com/forestrie/go-merkleroot/merkletesting"
)

func testFrontier(t *testing.T, h merkleroot.Hasher, n int) *merkleroot.Frontier {
	t.Helper()
	f := merkleroot.New(h)
	for _, leaf := range merkletesting.PositionLeaves(h, n) {
		f.Append(leaf)
	}
	return f
}

func TestNewStateEmptyFrontier(t *testing.T) {
	f := merkleroot.New(merkleroot.NewSHA256Hasher())
	_, err := NewState(f, uuid.New(), 1234)
	require.ErrorIs(t, err, merkleroot.ErrEmptyTree)
}

func TestStateCodecRoundTrip(t *testing.T) {
	h := merkleroot.NewSHA256Hasher()
	f := testFrontier(t, h, 11)

	state, err := NewState(f, uuid.New(), 1234)
	require.NoError(t, err)
	require.Equal(t, StateVersion1, state.Version)
	require.Equal(t, uint64(11), state.LeafCount)
	require.Len(t, state.Peaks, 3)
	require.NotNil(t, state.Root)

	codec, err := NewCodec()
	require.NoError(t, err)

	encoded, err := codec.Marshal(state)
	require.NoError(t, err)

	var decoded State
	require.NoError(t, codec.UnmarshalInto(encoded, &decoded))
	assert.Equal(t, state, decoded)
}

// TestStateFrontierRoundTrip pins the recovery path: a frontier restored
// from a snapshot must agree with the original for all further appends.
func TestStateFrontierRoundTrip(t *testing.T) {
	h := merkleroot.NewSHA256Hasher()
	leaves := merkletesting.PositionLeaves(h, 40)

	f := merkleroot.New(h)
	for _, leaf := range leaves[:23] {
		f.Append(leaf)
	}

	state, err := NewState(f, uuid.New(), 99)
	require.NoError(t, err)

	g, err := state.Frontier(h)
	require.NoError(t, err)

	wantRoot, err := f.Root()
	require.NoError(t, err)
	gotRoot, err := g.Root()
	require.NoError(t, err)
	require.True(t, wantRoot.Equal(gotRoot))
	require.True(t, merkleroot.Digest(state.Root).Equal(gotRoot))

	for i, leaf := range leaves[23:] {
		require.True(t, f.Append(leaf).Equal(g.Append(leaf)), "diverged at leaf %d", 23+i)
	}
}

func TestStateFrontierBadPeaks(t *testing.T) {
	h := merkleroot.NewSHA256Hasher()
	f := testFrontier(t, h, 11)

	state, err := NewState(f, uuid.New(), 0)
	require.NoError(t, err)

	state.Peaks = state.Peaks[:2]
	_, err = state.Frontier(h)
	require.ErrorIs(t, err, merkleroot.ErrPeakCountMismatch)
}
