package checkpoint

import (
	"github.com/veraison/go-cose"
)

// DecodeSealed parses a sealed checkpoint envelope and decodes the state
// from its payload. The returned state is UNVERIFIED and cannot verify as
// decoded: its root was detached at sealing. See VerifySealed for the full
// procedure.
//
// A payload that still carries root bytes fails with ErrSealRootPresent;
// accepting it would let the seal vouch for itself.
func DecodeSealed(codec Codec, data []byte) (*cose.Sign1Message, State, error) {
	msg := &cose.Sign1Message{}
	if err := msg.UnmarshalCBOR(data); err != nil {
		return nil, State{}, err
	}

	var unverified State
	if err := codec.UnmarshalInto(msg.Payload, &unverified); err != nil {
		return nil, State{}, err
	}
	if len(unverified.Root) != 0 {
		return nil, State{}, ErrSealRootPresent
	}
	return msg, unverified, nil
}

// VerifySealed applies state to the sealed message and verifies the
// signature over the result. Verification succeeds only when state carries
// the same root the sealer committed to.
//
// Verifying a sealed checkpoint is a three step process:
//  1. DecodeSealed to obtain the unverified state.
//  2. Recompute the root at state.LeafCount from log data you hold, for
//     example via State.Frontier over replayed leaves, and set state.Root.
//  3. VerifySealed to complete the verification.
func VerifySealed(codec Codec, verifier cose.Verifier, msg *cose.Sign1Message, state State, external []byte) error {
	if len(state.Root) == 0 {
		return ErrStateRootMissing
	}

	payload, err := codec.Marshal(state)
	if err != nil {
		return err
	}
	msg.Payload = payload
	return msg.Verify(external, verifier)
}
