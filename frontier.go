package merkleroot

import (
	"fmt"
	"math/bits"
)

// Frontier accumulates the merkle root of a leaf sequence from bounded
// state. It holds one pending digest per tree level, the peaks, and the
// count of leaves appended so far; it never holds the leaves themselves.
// Slot L is occupied iff bit L of the leaf count is set, so the state is at
// most bits.Len64(leafCount) digests.
//
// A Frontier must not be used concurrently without external
// synchronization. The zero value is not usable; construct with New or
// RestoreFrontier.
type Frontier struct {
	hasher    Hasher
	leafCount uint64

	// slots[L] is the root of a pending complete subtree spanning 2^L
	// leaves, or nil. Only Append and RestoreFrontier assign into slots,
	// and neither ever mutates a stored digest in place.
	slots []Digest

	// root over all leaves so far, refreshed on every append so repeated
	// Root queries do no hashing.
	root Digest
}

// New returns an empty Frontier that will combine digests with hasher.
func New(hasher Hasher) *Frontier {
	return &Frontier{hasher: hasher}
}

// RestoreFrontier reconstructs a Frontier from a leaf count and the peaks
// previously obtained from [Frontier.Peaks]. The peaks are assigned to the
// set bits of leafCount from the lowest level upward, which is the order
// Peaks reports them in.
//
// Fails with ErrPeakCountMismatch when len(peaks) is not the set bit count
// of leafCount; no deeper validation is possible without the leaves.
func RestoreFrontier(hasher Hasher, leafCount uint64, peaks []Digest) (*Frontier, error) {
	if len(peaks) != PeakCount(leafCount) {
		return nil, fmt.Errorf(
			"%w: %d peaks for %d leaves, want %d",
			ErrPeakCountMismatch, len(peaks), leafCount, PeakCount(leafCount))
	}

	f := &Frontier{hasher: hasher, leafCount: leafCount}
	if leafCount == 0 {
		return f, nil
	}

	f.slots = make([]Digest, bits.Len64(leafCount))
	for i, level := range PeakLevels(leafCount) {
		f.slots[level] = peaks[i].Clone()
	}
	f.root = f.bagPeaks()
	return f, nil
}

// Append accepts the next leaf digest and returns the root over all leaves
// appended so far. The returned root is the same digest a batch [Root] over
// the full sequence would produce.
//
// The leaf enters at level 0 and carries upward exactly as a binary counter
// increments: while the target slot is occupied, the occupant (it always
// covers earlier leaves) combines as the left operand and the result moves
// one level up. The first empty slot absorbs the carry.
//
// Append copies the leaf and never fails.
func (f *Frontier) Append(leaf Digest) Digest {
	carry := leaf.Clone()

	level := 0
	for level < len(f.slots) && f.slots[level] != nil {
		carry = f.hasher.HashNode(f.slots[level], carry)
		f.slots[level] = nil
		level++
	}
	if level == len(f.slots) {
		f.slots = append(f.slots, nil)
	}
	f.slots[level] = carry

	f.leafCount++
	f.root = f.bagPeaks()
	return f.root
}

// Root returns the root over all leaves appended so far. It fails with
// ErrEmptyTree when nothing has been appended; the root of an empty tree is
// deliberately an error rather than a sentinel digest.
func (f *Frontier) Root() (Digest, error) {
	if f.leafCount == 0 {
		return nil, ErrEmptyTree
	}
	return f.root, nil
}

// LeafCount returns the number of leaves appended so far.
func (f *Frontier) LeafCount() uint64 {
	return f.leafCount
}

// Peaks returns copies of the occupied slots from the lowest level upward.
// len(Peaks()) is always PeakCount(LeafCount()). Together with LeafCount
// the peaks are sufficient to reconstruct the accumulator, see
// RestoreFrontier.
func (f *Frontier) Peaks() []Digest {
	peaks := make([]Digest, 0, PeakCount(f.leafCount))
	for _, slot := range f.slots {
		if slot != nil {
			peaks = append(peaks, slot.Clone())
		}
	}
	return peaks
}

// bagPeaks folds the occupied slots into the root over all current leaves.
//
// The lowest peak covers the latest leaves and seeds the accumulator; each
// higher peak covers strictly earlier leaves and therefore takes the left
// operand as the fold ascends. When a single slot is occupied (leaf count a
// power of two) that digest is the root with no combining. The seed is
// copied so the returned root never aliases a slot. The result reproduces
// the batch fold bit for bit: an unpaired batch element at level L is the
// same digest as the pending peak at slot L.
func (f *Frontier) bagPeaks() Digest {
	var acc Digest
	for _, slot := range f.slots {
		if slot == nil {
			continue
		}
		if acc == nil {
			acc = slot.Clone()
			continue
		}
		acc = f.hasher.HashNode(slot, acc)
	}
	return acc
}
