package merkleroot

/*

# Streaming merkle roots from bounded state

This package maintains the merkle root of an ordered leaf sequence in two
ways that always agree:

1. [Root] folds a complete leaf list pairwise in one pass. It is stateless
   and serves as the reference definition of the root for any leaf count.
2. [Frontier] consumes leaves one at a time, holding one pending digest per
   tree level rather than the leaf list itself. After every append it can
   report the same root the batch fold would produce over the leaves seen so
   far.

The frontier works exactly like incrementing a binary counter. A new leaf is
a carry entering at level 0. While the target level already holds a pending
subtree, the two are combined (occupant on the left, it always covers
earlier leaves) and the result carries one level up. The level occupancy
therefore mirrors the set bits of the leaf count at all times, which is what
bounds the state to O(log n) digests.

After 11 leaves (0b1011) the frontier holds three pending subtrees, one per
set bit:

	3:           p3
	           /    \
	2:        .      .
	         / \    / \
	1:      .   .  .   .       p1
	       /\  /\  /\  /\      /\
	0:    0  1 2 3 4 5 6 7    8  9    10
	                                  p0

The root over all 11 leaves is obtained by folding the pending subtrees
from the lowest level upward, the higher peak always taking the left
operand:

	root = H(p3, H(p1, p0))

This is the same shape the batch fold arrives at, because an unpaired
element at any level of the batch fold is carried upward unchanged, never
duplicated. An odd tail in the batch is precisely a pending low peak in the
frontier.

The hashing primitive is supplied by the caller as a [Hasher]. [TreeHasher]
adapts any stdlib hash constructor, applying distinct leaf and node domain
prefixes so the two operations can never produce colliding digests for
related inputs. [NewSHA256Hasher] and [NewSHA3Hasher] are ready-made
instances.

Frontier instances are not safe for concurrent use; callers serialize
access per instance. Distinct instances are independent. All operations are
in-memory and non-blocking.
*/
