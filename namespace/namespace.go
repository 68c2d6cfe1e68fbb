// Package namespace scopes signatures and digests to a protocol, so that
// one long-term key pair can sign messages for several unrelated
// protocols without a signature from one being replayable in another.
//
// A Namespace is an immutable 32-byte tag. Every signed or hashed
// message is prefixed with the tag. Namespace values carry no scratch
// state and may be shared freely between goroutines.
package namespace

import (
	"errors"

	"github.com/corelog/corecrypto/crypto"
	"github.com/corelog/corecrypto/crypto/sign"
)

// Size is the length of a namespace tag in bytes.
const Size = crypto.HashSizeByte

// MaxCount is the largest family New can derive from one name.
const MaxCount = 256

// ErrBadCount is returned by New for a count outside [1, MaxCount].
var ErrBadCount = errors.New("[namespace] count must be between 1 and 256")

// Namespace is a signing and hashing context tag.
type Namespace [Size]byte

// New derives count related namespaces from name. The i-th namespace is
// H(H(name) || byte(i)), so the family is reproducible from the name alone.
func New(name []byte, count int) ([]Namespace, error) {
	if count < 1 || count > MaxCount {
		return nil, ErrBadCount
	}
	base := crypto.Digest(name)
	list := make([]Namespace, count)
	for i := range list {
		list[i] = Namespace(crypto.Digest(base[:], []byte{byte(i)}))
	}
	return list, nil
}

// FromTag returns the namespace whose tag is the given 32 bytes.
func FromTag(tag []byte) (Namespace, error) {
	var ns Namespace
	if len(tag) != Size {
		return ns, crypto.NewInvalidLengthError("namespace tag", len(tag), Size)
	}
	copy(ns[:], tag)
	return ns, nil
}

// String returns the hex encoding of the tag.
func (ns Namespace) String() string {
	return crypto.Hash(ns).String()
}

// signable returns a fresh tag || payload buffer.
func (ns Namespace) signable(payload []byte) []byte {
	buf := make([]byte, 0, Size+len(payload))
	buf = append(buf, ns[:]...)
	return append(buf, payload...)
}

// Sign produces a detached signature over tag || payload.
func (ns Namespace) Sign(payload, secretKey []byte) ([]byte, error) {
	return sign.Sign(ns.signable(payload), secretKey)
}

// Verify reports whether signature is a signature over tag || payload
// by publicKey. A signature or key of the wrong length is an
// *crypto.InvalidLengthError; a well-formed signature that does not
// verify is false with a nil error.
func (ns Namespace) Verify(signature, payload, publicKey []byte) (bool, error) {
	return sign.Verify(ns.signable(payload), signature, publicKey)
}

// Hash returns H(tag || payload).
func (ns Namespace) Hash(payload []byte) crypto.Hash {
	return crypto.Digest(ns[:], payload)
}

// AppendHash appends H(tag || payload) to dst and returns the
// extended slice. The caller owns dst.
func (ns Namespace) AppendHash(dst, payload []byte) []byte {
	h := ns.Hash(payload)
	return append(dst, h[:]...)
}
