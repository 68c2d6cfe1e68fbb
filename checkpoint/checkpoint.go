// Package checkpoint wraps a tree commitment in a COSE_Sign1 envelope
// (RFC 9052) signed with the log's Ed25519 key, so it can be handed to
// verifiers that speak COSE rather than raw signatures.
//
// The payload is the deterministic CBOR encoding of State. The key id
// header carries the discovery key of the signing public key, which
// lets a holder of many logs pick the right key without learning it
// from the checkpoint itself.
package checkpoint

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/corelog/corecrypto/crypto"
	"github.com/corelog/corecrypto/crypto/sign"
	"github.com/corelog/corecrypto/merkletree"
	"github.com/fxamacker/cbor/v2"
	"github.com/veraison/go-cose"
)

// Algorithm is the COSE algorithm of every checkpoint.
const Algorithm = cose.AlgorithmEd25519

var (
	// ErrBadCheckpoint indicates a checkpoint that could not be decoded.
	ErrBadCheckpoint = errors.New("[checkpoint] malformed checkpoint")
	// ErrWrongKey indicates a checkpoint whose key id does not match
	// the public key it is verified against.
	ErrWrongKey = errors.New("[checkpoint] key id does not match public key")
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	if encMode, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		panic(err)
	}
	if decMode, err = (cbor.DecOptions{DupMapKey: cbor.DupMapKeyEnforcedAPF}).DecMode(); err != nil {
		panic(err)
	}
}

// State is the log state a checkpoint commits to.
type State struct {
	// Length is the number of entries in the log.
	Length uint64 `cbor:"1,keyasint"`
	// Root is the root commitment of the log's forest of roots.
	Root []byte `cbor:"2,keyasint"`
	// Timestamp is the unix time in milliseconds at which the state
	// was taken. It allows the same root to be signed again.
	Timestamp int64 `cbor:"3,keyasint"`
	// Hasher identifies the tree hasher the root was computed with.
	Hasher string `cbor:"4,keyasint"`
}

// NewState returns the State of a log of length entries whose tree is
// described by in, taken at now.
func NewState(h *merkletree.Hasher, in merkletree.RootInput, length uint64, now time.Time) State {
	root := h.Root(in)
	return State{
		Length:    length,
		Root:      root.Bytes(),
		Timestamp: now.UnixMilli(),
		Hasher:    h.ID(),
	}
}

// A Signer produces checkpoints for a single signing key.
type Signer struct {
	signer cose.Signer
	kid    []byte
}

// NewSigner returns a Signer for the 64-byte Ed25519 secretKey.
func NewSigner(secretKey []byte) (*Signer, error) {
	if len(secretKey) != sign.PrivateKeySize {
		return nil, crypto.NewInvalidLengthError("secret key", len(secretKey), sign.PrivateKeySize)
	}
	pk, ok := sign.PrivateKey(secretKey).Public()
	if !ok {
		return nil, crypto.NewInvalidLengthError("secret key", len(secretKey), sign.PrivateKeySize)
	}
	kid, err := crypto.DiscoveryKey(pk)
	if err != nil {
		return nil, err
	}
	signer, err := cose.NewSigner(Algorithm, ed25519.PrivateKey(secretKey))
	if err != nil {
		return nil, err
	}
	return &Signer{signer: signer, kid: kid.Bytes()}, nil
}

// Sign returns the CBOR encoded COSE_Sign1 checkpoint of state.
func (s *Signer) Sign(state State) ([]byte, error) {
	payload, err := encMode.Marshal(state)
	if err != nil {
		return nil, err
	}
	msg := cose.Sign1Message{
		Headers: cose.Headers{
			Protected: cose.ProtectedHeader{
				cose.HeaderLabelAlgorithm: Algorithm,
				cose.HeaderLabelKeyID:     s.kid,
			},
		},
		Payload: payload,
	}
	if err := msg.Sign(rand.Reader, nil, s.signer); err != nil {
		return nil, err
	}
	return msg.MarshalCBOR()
}

// Verify checks a checkpoint produced by Signer.Sign against the
// 32-byte publicKey and returns the State it commits to.
func Verify(checkpoint, publicKey []byte) (*State, error) {
	if len(publicKey) != sign.PublicKeySize {
		return nil, crypto.NewInvalidLengthError("public key", len(publicKey), sign.PublicKeySize)
	}
	var msg cose.Sign1Message
	if err := msg.UnmarshalCBOR(checkpoint); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCheckpoint, err)
	}
	kid, err := crypto.DiscoveryKey(publicKey)
	if err != nil {
		return nil, err
	}
	if got, ok := msg.Headers.Protected[cose.HeaderLabelKeyID].([]byte); !ok || !bytes.Equal(got, kid[:]) {
		return nil, ErrWrongKey
	}
	verifier, err := cose.NewVerifier(Algorithm, ed25519.PublicKey(publicKey))
	if err != nil {
		return nil, err
	}
	if err := msg.Verify(nil, verifier); err != nil {
		return nil, err
	}
	var state State
	if err := decMode.Unmarshal(msg.Payload, &state); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCheckpoint, err)
	}
	return &state, nil
}

// Matches reports whether state commits to the tree described by in
// with the given length, using h to resolve the root.
func (state *State) Matches(h *merkletree.Hasher, in merkletree.RootInput, length uint64) bool {
	root := h.Root(in)
	return state.Hasher == h.ID() && state.Length == length && bytes.Equal(state.Root, root[:])
}
