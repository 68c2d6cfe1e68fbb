// Package shake registers a SHAKE128 tree hasher with a 32-byte output.
// Trees hashed with it are not interchangeable with BLAKE2b-256 trees;
// it exists for deployments that standardise on SHA-3.
package shake

import (
	"github.com/corelog/corecrypto/crypto"
	"github.com/corelog/corecrypto/crypto/hashers"
	"golang.org/x/crypto/sha3"
)

func init() {
	hashers.RegisterHasher(ID, New)
}

// ID is the identity of the SHAKE128 hashing strategy.
const ID = "SHAKE128"

type hasher struct{}

// New returns an instance of the SHAKE128 tree hasher.
func New() hashers.TreeHasher {
	return hasher{}
}

func (hasher) ID() string {
	return ID
}

func (hasher) Size() int {
	return crypto.HashSizeByte
}

func (hasher) Digest(ms ...[]byte) crypto.Hash {
	h := sha3.NewShake128()
	for _, m := range ms {
		h.Write(m)
	}
	var ret crypto.Hash
	h.Read(ret[:])
	return ret
}
