package merkleroot

// Hasher supplies the two hashing operations the tree algorithms are
// parameterized over. Both must be deterministic and total; neither may
// retain or mutate its inputs.
//
// HashNode must be sensitive to operand order. The batch fold and the
// frontier agree only because an earlier subtree is always the left
// operand, so an implementation that sorts or otherwise canonicalizes the
// pair breaks that agreement silently. TreeHasher's node prefix gives a
// conforming construction over any stdlib hash.
type Hasher interface {
	// HashLeaf maps arbitrary input bytes to a leaf digest.
	HashLeaf(data []byte) Digest
	// HashNode combines an ordered pair of digests into a parent digest.
	HashNode(left, right Digest) Digest
}
