package hashers

import (
	"fmt"

	"github.com/corelog/corecrypto/crypto"
)

// TreeHasher provides the hash function the Merkle tree implementations
// are built on. The byte layout of leaves, parents and roots is fixed by
// the merkletree package; a TreeHasher only decides how the framed
// buffers are compressed into a 32-byte digest.
type TreeHasher interface {
	// ID returns the name of the cryptographic hash function.
	ID() string
	// Size returns the size of the hash output in bytes.
	Size() int
	// Digest hashes all passed byte slices, in order, as one message.
	// The passed slices won't be mutated.
	// Implementations must be safe for concurrent use.
	Digest(ms ...[]byte) crypto.Hash
}

var hashers = make(map[string]TreeHasher)

// RegisterHasher registers a hasher for use.
// It is meant to be called from init functions only.
func RegisterHasher(h string, f func() TreeHasher) {
	if _, ok := hashers[h]; ok {
		panic(fmt.Sprintf("%s is already registered", h))
	}
	hashers[h] = f()
}

// NewTreeHasher returns a registered TreeHasher identified by the given string.
// If no such TreeHasher exists, it returns an error.
func NewTreeHasher(h string) (TreeHasher, error) {
	if f, ok := hashers[h]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("[hashers] %s is an unknown hasher", h)
}
