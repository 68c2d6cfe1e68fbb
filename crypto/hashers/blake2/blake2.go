// Package blake2 registers the BLAKE2b-256 tree hasher.
// This is the hasher the replicated log's wire format is defined over.
package blake2

import (
	"github.com/corelog/corecrypto/crypto"
	"github.com/corelog/corecrypto/crypto/hashers"
)

func init() {
	hashers.RegisterHasher(ID, New)
}

// ID is the identity of the BLAKE2b-256 hashing strategy.
const ID = crypto.HashID

type hasher struct{}

// New returns an instance of the BLAKE2b-256 tree hasher.
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
	return crypto.Digest(ms...)
}
