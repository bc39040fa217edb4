package merkleroot

import "encoding/binary"

// transcriptHasher is a Hasher whose digests are readable transcripts of
// the calls that produced them: [x] for a leaf over x, (LR) for a node over
// L and R. Tree shapes become literal strings, so tests can pin exact
// operand placement without digest fixtures. The variable digest width is
// legal, nothing in the package relies on a fixed width.
type transcriptHasher struct{}

func (transcriptHasher) HashLeaf(data []byte) Digest {
	out := make(Digest, 0, len(data)+2)
	out = append(out, '[')
	out = append(out, data...)
	out = append(out, ']')
	return out
}

func (transcriptHasher) HashNode(left, right Digest) Digest {
	out := make(Digest, 0, len(left)+len(right)+2)
	out = append(out, '(')
	out = append(out, left...)
	out = append(out, right...)
	out = append(out, ')')
	return out
}

// letterLeaves returns one leaf per byte of letters, in order.
func letterLeaves(h Hasher, letters string) []Digest {
	leaves := make([]Digest, 0, len(letters))
	for i := 0; i < len(letters); i++ {
		leaves = append(leaves, h.HashLeaf([]byte{letters[i]}))
	}
	return leaves
}

// positionLeaves returns n leaves derived from their position, leaf i
// hashing the big endian encoding of i.
func positionLeaves(h Hasher, n int) []Digest {
	leaves := make([]Digest, 0, n)
	for i := 0; i < n; i++ {
		var pos [8]byte
		binary.BigEndian.PutUint64(pos[:], uint64(i))
		leaves = append(leaves, h.HashLeaf(pos[:]))
	}
	return leaves
}
