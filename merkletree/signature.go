package merkletree

import (
	"github.com/corelog/corecrypto/crypto/sign"
)

// SignTree signs the payload of Signable(in, length) with secretKey.
func (h *Hasher) SignTree(in RootInput, length uint64, secretKey []byte) ([]byte, error) {
	return sign.Sign(h.Signable(in, length), secretKey)
}

// VerifyTree verifies a signature produced by SignTree.
// A signature over a different root or length is reported as false.
func (h *Hasher) VerifyTree(in RootInput, length uint64, signature, publicKey []byte) (bool, error) {
	return sign.Verify(h.Signable(in, length), signature, publicKey)
}

// SignTree signs a tree commitment with the default hasher.
func SignTree(in RootInput, length uint64, secretKey []byte) ([]byte, error) {
	return defaultHasher.SignTree(in, length, secretKey)
}

// VerifyTree verifies a tree signature with the default hasher.
func VerifyTree(in RootInput, length uint64, signature, publicKey []byte) (bool, error) {
	return defaultHasher.VerifyTree(in, length, signature, publicKey)
}
