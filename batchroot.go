package merkleroot

// Root computes the merkle root of the ordered leaves by pairwise folding.
//
// Each round combines consecutive pairs left to right. A round holding an
// odd number of elements carries its final element up unchanged; nothing is
// duplicated or hashed with itself. The carried element at one level is
// exactly a pending peak in the frontier model, so this definition and
// [Frontier] produce identical roots for identical leaf sequences.
//
//	          root
//	         /    \
//	        .      \
//	      /   \     \
//	     .     .     \
//	    / \   / \     \
//	   a   b c   d     e
//
//	round 1: (ab) (cd) e     <- e unpaired, carried
//	round 2: ((ab)(cd)) e    <- e unpaired again, carried
//	round 3: (((ab)(cd))e)
//
// A single leaf is its own root, with no hashing. The leaves slice and the
// digests in it are not modified.
//
// Root fails with ErrEmptyInput when leaves is empty.
func Root(h Hasher, leaves []Digest) (Digest, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyInput
	}

	level := make([]Digest, len(leaves))
	copy(level, leaves)

	for len(level) > 1 {
		next := make([]Digest, 0, (len(level)+1)/2)
		for i := 0; i+1 < len(level); i += 2 {
			next = append(next, h.HashNode(level[i], level[i+1]))
		}
		if len(level)%2 == 1 {
			next = append(next, level[len(level)-1])
		}
		level = next
	}
	return level[0], nil
}
