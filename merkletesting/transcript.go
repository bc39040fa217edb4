// Package merkletesting provides hashers, contract checks and leaf
// generators shared by this repo's tests and usable by consumers testing
// their own merkleroot integrations.
package merkletesting

import (
	merkleroot "github.com/forestrie/go-merkleroot"
)

// TranscriptHasher is a merkleroot.Hasher whose digests are readable
// transcripts of the calls that produced them: [x] for a leaf over x, (LR)
// for a node over L and R. A tree shape becomes a literal string, so a test
// can state an expected root outright instead of carrying digest fixtures.
//
// Transcript digests grow with their subtree, so TranscriptHasher does not
// satisfy the fixed width clause of the hasher contract; nothing in
// merkleroot relies on a fixed width.
type TranscriptHasher struct{}

func (TranscriptHasher) HashLeaf(data []byte) merkleroot.Digest {
	out := make(merkleroot.Digest, 0, len(data)+2)
	out = append(out, '[')
	out = append(out, data...)
	out = append(out, ']')
	return out
}

func (TranscriptHasher) HashNode(left, right merkleroot.Digest) merkleroot.Digest {
	out := make(merkleroot.Digest, 0, len(left)+len(right)+2)
	out = append(out, '(')
	out = append(out, left...)
	out = append(out, right...)
	out = append(out, ')')
	return out
}
