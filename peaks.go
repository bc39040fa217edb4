package merkleroot

import "math/bits"

// PeakCount returns the number of peaks in the accumulator for leafCount
// leaves. Each set bit of leafCount is a pending complete subtree, so the
// peak count is the population count. This is also the state bound: a
// frontier holds exactly this many digests.
func PeakCount(leafCount uint64) int {
	return bits.OnesCount64(leafCount)
}

// PeakLevels returns the occupied slot levels for leafCount leaves, lowest
// first. Level L is occupied iff bit L of leafCount is set; the peak at
// level L spans 2^L leaves.
//
// For 11 leaves (0b1011) the levels are [0 1 3]: a single leaf, a pair, and
// a complete subtree of eight.
func PeakLevels(leafCount uint64) []int {
	levels := make([]int, 0, bits.OnesCount64(leafCount))
	for level := 0; level < bits.Len64(leafCount); level++ {
		if leafCount&(1<<level) != 0 {
			levels = append(levels, level)
		}
	}
	return levels
}
