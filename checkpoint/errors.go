package checkpoint

import "errors"

var (
	ErrStateRootMissing   = errors.New("the root field of a checkpoint state was nil when it should have been provided")
	ErrSealRootPresent    = errors.New("a sealed checkpoint payload must not carry the root, verifiers recover it from the log")
	ErrStreamIDInvalid    = errors.New("the stream id of a checkpoint state must be a 16 byte uuid")
	ErrCheckpointNotFound = errors.New("checkpoint not found")
	ErrStreamNotFound     = errors.New("stream not found")
)
