package merkleroot

import "errors"

var (
	ErrEmptyInput        = errors.New("merkleroot: no leaves, the root of an empty sequence is undefined")
	ErrEmptyTree         = errors.New("merkleroot: no leaves appended, the root of an empty tree is undefined")
	ErrPeakCountMismatch = errors.New("merkleroot: peak count does not match the set bits of the leaf count")
)
