package merkleroot

import (
	"crypto/sha256"
	"hash"

	"golang.org/x/crypto/sha3"
)

// Domain separation prefixes for leaf and interior node hashes. Keeping the
// domains disjoint means HashLeaf can never be made to collide with
// HashNode, and the prefix on HashNode input makes the operand order part
// of the committed bytes.
const (
	leafPrefix = 0x00
	nodePrefix = 0x01
)

// TreeHasher adapts a stdlib hash constructor into a Hasher.
//
// Leaf digests commit to H( 0x00 || data ) and node digests to
// H( 0x01 || left || right ). A TreeHasher carries no state between calls
// and is safe for concurrent use.
type TreeHasher struct {
	newHash func() hash.Hash
}

func NewTreeHasher(newHash func() hash.Hash) TreeHasher {
	return TreeHasher{newHash: newHash}
}

// NewSHA256Hasher returns a TreeHasher over SHA-256.
func NewSHA256Hasher() TreeHasher {
	return NewTreeHasher(sha256.New)
}

// NewSHA3Hasher returns a TreeHasher over SHA3-256.
func NewSHA3Hasher() TreeHasher {
	return NewTreeHasher(sha3.New256)
}

// HashLeaf computes:
//
//	H( 0x00 || data )
func (t TreeHasher) HashLeaf(data []byte) Digest {
	h := t.newHash()
	_, _ = h.Write([]byte{leafPrefix})
	_, _ = h.Write(data)
	return h.Sum(nil)
}

// HashNode computes:
//
//	H( 0x01 || left || right )
func (t TreeHasher) HashNode(left, right Digest) Digest {
	h := t.newHash()
	_, _ = h.Write([]byte{nodePrefix})
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	return h.Sum(nil)
}

// Size returns the digest width in bytes.
func (t TreeHasher) Size() int {
	return t.newHash().Size()
}
