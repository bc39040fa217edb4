package merkletesting

import (
	"testing"

	"github.com/stretchr/testify/require"

	merkleroot "github.com/forestrie/go-merkleroot"
)

// HasherFactory returns a fresh hasher for each contract subtest.
type HasherFactory func() merkleroot.Hasher

// TestHasherContract checks a hasher implementation against the properties
// the tree algorithms assume: determinism, operand order sensitivity,
// leaf/node domain separation, stable output width, and outputs that do not
// alias the caller's buffers. Run it from a hasher's own tests:
//
//	func TestMyHasher(t *testing.T) {
//	    merkletesting.TestHasherContract(t, func() merkleroot.Hasher {
//	        return myHasher{}
//	    })
//	}
func TestHasherContract(t *testing.T, f HasherFactory) {
	t.Run("leaf is deterministic", func(t *testing.T) {
		h := f()
		a := h.HashLeaf([]byte("deterministic_data"))
		b := h.HashLeaf([]byte("deterministic_data"))
		require.Equal(t, a, b)
	})

	t.Run("node is deterministic", func(t *testing.T) {
		h := f()
		l := h.HashLeaf([]byte("l"))
		r := h.HashLeaf([]byte("r"))
		require.Equal(t, h.HashNode(l, r), h.HashNode(l, r))
	})

	t.Run("node respects operand order", func(t *testing.T) {
		h := f()
		l := h.HashLeaf([]byte("l"))
		r := h.HashLeaf([]byte("r"))
		require.NotEqual(t, h.HashNode(l, r), h.HashNode(r, l))
	})

	t.Run("leaf and node domains are separate", func(t *testing.T) {
		h := f()
		l := h.HashLeaf([]byte("l"))
		r := h.HashLeaf([]byte("r"))

		var cat []byte
		cat = append(cat, l...)
		cat = append(cat, r...)
		require.NotEqual(t, h.HashLeaf(cat), h.HashNode(l, r))
	})

	t.Run("output width is stable", func(t *testing.T) {
		h := f()
		short := h.HashLeaf([]byte{})
		long := h.HashLeaf(make([]byte, 1000))
		require.Equal(t, len(short), len(long))

		node := h.HashNode(short, long)
		require.Equal(t, len(short), len(node))
	})

	t.Run("outputs do not alias inputs", func(t *testing.T) {
		h := f()
		data := []byte("aliasing_check")
		leaf := h.HashLeaf(data)
		before := leaf.Clone()
		data[0] ^= 0xff
		require.Equal(t, before, leaf)

		l := h.HashLeaf([]byte("l"))
		r := h.HashLeaf([]byte("r"))
		node := h.HashNode(l, r)
		before = node.Clone()
		l[0] ^= 0xff
		r[0] ^= 0xff
		require.Equal(t, before, node)
	})
}
