package checkpoint

import (
	"crypto/rand"

	"github.com/veraison/go-cose"
)

// HeaderLabelCWTClaims is the protected header label carrying the CWT
// claims of a seal, per RFC 9597.
const HeaderLabelCWTClaims = int64(15)

// CWT claim keys used in seals, per RFC 8392.
const (
	CWTClaimIssuer  = int64(1)
	CWTClaimSubject = int64(2)
)

// Sealer signs checkpoint states. The signature commits to the complete
// state including the root; the published payload carries the state with
// the root detached, so verifiers must recover the root from log data they
// hold rather than trusting the sealed bytes.
type Sealer struct {
	issuer string
	codec  Codec
}

func NewSealer(issuer string, codec Codec) Sealer {
	return Sealer{issuer: issuer, codec: codec}
}

// Seal signs state and returns the encoded COSE Sign1 envelope. WARNING:
// the caller must check the state is consistent with the most recently
// sealed state of the stream before publishing the result.
func (s Sealer) Seal(signer cose.Signer, keyID string, subject string, state State, external []byte) ([]byte, error) {
	if len(state.Root) == 0 {
		return nil, ErrStateRootMissing
	}

	payload, err := s.codec.Marshal(state)
	if err != nil {
		return nil, err
	}

	msg := cose.Sign1Message{
		Headers: cose.Headers{
			Protected: cose.ProtectedHeader{
				cose.HeaderLabelKeyID: []byte(keyID),
				HeaderLabelCWTClaims: map[int64]any{
					CWTClaimIssuer:  s.issuer,
					CWTClaimSubject: subject,
				},
			},
		},
		Payload: payload,
	}
	if err = msg.Sign(rand.Reader, external, signer); err != nil {
		return nil, err
	}

	// We purposefully detach the root so that verifiers are forced to
	// obtain it from the log.
	state.Root = nil
	if msg.Payload, err = s.codec.Marshal(state); err != nil {
		return nil, err
	}

	return msg.MarshalCBOR()
}
