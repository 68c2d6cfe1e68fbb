// Package sign implements ed25519 key pairs, detached signatures and
// their verification. It is a thin layer over golang.org/x/crypto/ed25519
// that adds the fixed-size checks the rest of the module relies on.
package sign

import (
	"bytes"
	"crypto/rand"
	"io"

	"github.com/corelog/corecrypto/crypto"
	"golang.org/x/crypto/ed25519"
)

const (
	PrivateKeySize = ed25519.PrivateKeySize
	PublicKeySize  = ed25519.PublicKeySize
	SignatureSize  = ed25519.SignatureSize
	SeedSize       = ed25519.SeedSize
)

type PrivateKey ed25519.PrivateKey
type PublicKey ed25519.PublicKey

// KeyPair holds a public key together with the secret key it was
// generated with. The secret key embeds the public key material.
type KeyPair struct {
	PublicKey PublicKey
	SecretKey PrivateKey
}

// GenerateKey creates a private key using rnd for randomness.
// If rnd is nil, crypto/rand is used.
func GenerateKey(rnd io.Reader) (PrivateKey, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	_, sk, err := ed25519.GenerateKey(rnd)
	return PrivateKey(sk), err
}

// NewKeyPair returns a fresh key pair. If seed is non-nil the pair is
// derived deterministically from it, and seed must be SeedSize bytes.
func NewKeyPair(seed []byte) (*KeyPair, error) {
	var sk PrivateKey
	if seed != nil {
		if len(seed) != SeedSize {
			return nil, crypto.NewInvalidLengthError("seed", len(seed), SeedSize)
		}
		sk = PrivateKey(ed25519.NewKeyFromSeed(seed))
	} else {
		var err error
		if sk, err = GenerateKey(nil); err != nil {
			return nil, err
		}
	}
	pk, _ := sk.Public()
	return &KeyPair{PublicKey: pk, SecretKey: sk}, nil
}

// Sign signs message with key. It panics if key is malformed;
// use the package-level Sign for unchecked buffers.
func (key PrivateKey) Sign(message []byte) []byte {
	return ed25519.Sign(ed25519.PrivateKey(key), message)
}

// Public extracts the public key embedded in key.
func (key PrivateKey) Public() (PublicKey, bool) {
	if len(key) != PrivateKeySize {
		return nil, false
	}
	pk, ok := ed25519.PrivateKey(key).Public().(ed25519.PublicKey)
	return PublicKey(pk), ok
}

// Verify reports whether sig is a valid signature of message by pk.
// A malformed key or signature never verifies.
func (pk PublicKey) Verify(message, sig []byte) bool {
	if len(pk) != PublicKeySize || len(sig) != SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pk), message, sig)
}

// Sign produces a detached signature of message with the raw secretKey.
func Sign(message, secretKey []byte) ([]byte, error) {
	if len(secretKey) != PrivateKeySize {
		return nil, crypto.NewInvalidLengthError("secret key", len(secretKey), PrivateKeySize)
	}
	return PrivateKey(secretKey).Sign(message), nil
}

// Verify checks a detached signature of message against the raw publicKey.
// A mismatch is reported as false; only malformed buffers produce an error.
func Verify(message, signature, publicKey []byte) (bool, error) {
	if len(signature) != SignatureSize {
		return false, crypto.NewInvalidLengthError("signature", len(signature), SignatureSize)
	}
	if len(publicKey) != PublicKeySize {
		return false, crypto.NewInvalidLengthError("public key", len(publicKey), PublicKeySize)
	}
	return PublicKey(publicKey).Verify(message, signature), nil
}

// ValidateKeyPair reports whether secretKey was generated together
// with publicKey.
func ValidateKeyPair(publicKey, secretKey []byte) bool {
	if len(publicKey) != PublicKeySize || len(secretKey) != PrivateKeySize {
		return false
	}
	// Re-derive from the seed half; the embedded public half of
	// secretKey is not trusted.
	derived := ed25519.NewKeyFromSeed(ed25519.PrivateKey(secretKey).Seed())
	return bytes.Equal(derived[SeedSize:], publicKey) &&
		bytes.Equal(derived, secretKey)
}

// Validate reports whether kp is self-consistent.
func (kp *KeyPair) Validate() bool {
	return ValidateKeyPair(kp.PublicKey, kp.SecretKey)
}
