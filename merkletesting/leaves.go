package merkletesting

import (
	"encoding/binary"

	merkleroot "github.com/forestrie/go-merkleroot"
)

// PositionLeaves returns n leaves derived from their position, leaf i
// hashing the big endian encoding of i. Deterministic from run to run, so
// tests built on it can pin digests across packages.
func PositionLeaves(h merkleroot.Hasher, n int) []merkleroot.Digest {
	leaves := make([]merkleroot.Digest, 0, n)
	for i := 0; i < n; i++ {
		var pos [8]byte
		binary.BigEndian.PutUint64(pos[:], uint64(i))
		leaves = append(leaves, h.HashLeaf(pos[:]))
	}
	return leaves
}

// LetterLeaves returns one leaf per byte of letters, in order. The classic
// worked example hashes the letters a through n.
func LetterLeaves(h merkleroot.Hasher, letters string) []merkleroot.Digest {
	leaves := make([]merkleroot.Digest, 0, len(letters))
	for i := 0; i < len(letters); i++ {
		leaves = append(leaves, h.HashLeaf([]byte{letters[i]}))
	}
	return leaves
}
