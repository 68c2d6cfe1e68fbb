package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
)

const (
	// HashSizeByte is the size of the hash output in bytes.
	HashSizeByte = blake2b.Size256
	// HashID identifies the used hash as a string.
	HashID = "BLAKE2b-256"
	// KeySizeByte is the size of the key used by KeyedDigest.
	KeySizeByte = 32
)

var discoveryTag = []byte("hypercore")

// Hash represents the output of the used hash function.
type Hash [HashSizeByte]byte

// String returns the hex encoding of h.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Bytes returns a copy of h as a byte slice.
func (h Hash) Bytes() []byte {
	b := make([]byte, HashSizeByte)
	copy(b, h[:])
	return b
}

// HashFromBytes converts a 32-byte slice into a Hash.
func HashFromBytes(b []byte) (Hash, error) {
	var h Hash
	if len(b) != HashSizeByte {
		return h, NewInvalidLengthError("hash", len(b), HashSizeByte)
	}
	copy(h[:], b)
	return h, nil
}

// HashFromHex decodes a hex string into a Hash.
func HashFromHex(s string) (Hash, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, err
	}
	return HashFromBytes(b)
}

// Digest hashes all passed byte slices, in order, as one message.
// The passed slices won't be mutated.
func Digest(ms ...[]byte) Hash {
	h, _ := blake2b.New256(nil)
	for _, m := range ms {
		h.Write(m)
	}
	var ret Hash
	h.Sum(ret[:0])
	return ret
}

// KeyedDigest hashes all passed byte slices under the given key.
// The key must be exactly KeySizeByte long.
func KeyedDigest(key []byte, ms ...[]byte) (Hash, error) {
	var ret Hash
	if len(key) != KeySizeByte {
		return ret, NewInvalidLengthError("hash key", len(key), KeySizeByte)
	}
	h, err := blake2b.New256(key)
	if err != nil {
		return ret, err
	}
	for _, m := range ms {
		h.Write(m)
	}
	h.Sum(ret[:0])
	return ret, nil
}

// RandomBytes returns n bytes read from the system's secure random source.
func RandomBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("[crypto] cannot generate %d random bytes", n)
	}
	r := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, r); err != nil {
		return nil, err
	}
	return r, nil
}

// DiscoveryKey derives the public, non-secret identifier of a log from
// its public key. The key is used for rendezvous only; it reveals nothing
// about the public key itself.
func DiscoveryKey(publicKey []byte) (Hash, error) {
	if len(publicKey) != KeySizeByte {
		return Hash{}, NewInvalidLengthError("public key", len(publicKey), KeySizeByte)
	}
	return KeyedDigest(publicKey, discoveryTag)
}
