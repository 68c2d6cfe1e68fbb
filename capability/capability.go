package capability

import (
	"errors"

	"github.com/corelog/corecrypto/crypto"
	"github.com/corelog/corecrypto/crypto/sign"
)

// SecretSize is the number of bytes of each split secret half
// that enter the derivation.
const SecretSize = 32

var capabilityTag = []byte("hypercore capability")

// ErrKeyMismatch is returned by Writer when the secret key does not
// belong to the public key the capability is derived for.
var ErrKeyMismatch = errors.New("[capability] secret key does not match public key")

// SplitSecret holds the two traffic keys produced by a completed
// handshake, from the point of view of one peer.
// Only the first SecretSize bytes of each half are used.
type SplitSecret struct {
	// Tx is this peer's transmit key.
	Tx []byte
	// Rx is this peer's receive key.
	Rx []byte
}

func (s *SplitSecret) validate() error {
	if len(s.Tx) < SecretSize {
		return crypto.NewInvalidLengthError("split secret tx", len(s.Tx), SecretSize)
	}
	if len(s.Rx) < SecretSize {
		return crypto.NewInvalidLengthError("split secret rx", len(s.Rx), SecretSize)
	}
	return nil
}

// Binding is the outcome of verifying a remote writer capability.
type Binding int

const (
	// BindingAbsent means there is no split secret, so channel
	// binding does not apply. It is not a verification failure.
	BindingAbsent Binding = iota
	// BindingValid means the remote peer proved possession of the
	// writer key on this session.
	BindingValid
	// BindingInvalid means the signature did not verify.
	BindingInvalid
)

func (b Binding) String() string {
	switch b {
	case BindingAbsent:
		return "absent"
	case BindingValid:
		return "valid"
	case BindingInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// A Deriver computes capabilities with a fixed Scheme.
// It holds no mutable state and is safe for concurrent use.
type Deriver struct {
	Scheme Scheme
}

// NewDeriver returns a Deriver for the given scheme.
func NewDeriver(s Scheme) *Deriver {
	return &Deriver{Scheme: s}
}

// derive computes KeyedHash(key, [typ?, capabilityTag, tx, publicKey]).
// A zero typ is omitted.
func derive(typ byte, publicKey, key, tx []byte) (*crypto.Hash, error) {
	if len(publicKey) != sign.PublicKeySize {
		return nil, crypto.NewInvalidLengthError("public key", len(publicKey), sign.PublicKeySize)
	}
	ms := make([][]byte, 0, 4)
	if typ != 0 {
		ms = append(ms, []byte{typ})
	}
	ms = append(ms, capabilityTag, tx[:SecretSize], publicKey)
	out, err := crypto.KeyedDigest(key[:SecretSize], ms...)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (d *Deriver) plainType() byte {
	if d.Scheme == SchemeTagged {
		return CapabilityType
	}
	return 0
}

// Local returns this peer's capability for the log identified by
// publicKey. It returns nil and no error when split is nil.
func (d *Deriver) Local(publicKey []byte, split *SplitSecret) (*crypto.Hash, error) {
	if split == nil {
		return nil, nil
	}
	if err := split.validate(); err != nil {
		return nil, err
	}
	return derive(d.plainType(), publicKey, split.Rx, split.Tx)
}

// Remote returns the capability the other peer computes as its Local
// capability. It returns nil and no error when split is nil.
func (d *Deriver) Remote(publicKey []byte, split *SplitSecret) (*crypto.Hash, error) {
	if split == nil {
		return nil, nil
	}
	if err := split.validate(); err != nil {
		return nil, err
	}
	return derive(d.plainType(), publicKey, split.Tx, split.Rx)
}

// Writer returns a detached signature, by secretKey, over this peer's
// writer capability. secretKey must belong to publicKey.
// It returns nil and no error when split is nil.
func (d *Deriver) Writer(publicKey []byte, split *SplitSecret, secretKey []byte) ([]byte, error) {
	if split == nil {
		return nil, nil
	}
	if err := split.validate(); err != nil {
		return nil, err
	}
	if len(secretKey) != sign.PrivateKeySize {
		return nil, crypto.NewInvalidLengthError("secret key", len(secretKey), sign.PrivateKeySize)
	}
	if !sign.ValidateKeyPair(publicKey, secretKey) {
		return nil, ErrKeyMismatch
	}
	c, err := derive(WriterCapabilityType, publicKey, split.Rx, split.Tx)
	if err != nil {
		return nil, err
	}
	return sign.Sign(c[:], secretKey)
}

// VerifyRemoteWriter checks a writer capability signature sent by the
// other peer against the value expected from this peer's split secret.
func (d *Deriver) VerifyRemoteWriter(publicKey []byte, split *SplitSecret, signature []byte) (Binding, error) {
	if split == nil {
		return BindingAbsent, nil
	}
	if err := split.validate(); err != nil {
		return BindingInvalid, err
	}
	c, err := derive(WriterCapabilityType, publicKey, split.Tx, split.Rx)
	if err != nil {
		return BindingInvalid, err
	}
	ok, err := sign.Verify(c[:], signature, publicKey)
	if err != nil {
		return BindingInvalid, err
	}
	if !ok {
		return BindingInvalid, nil
	}
	return BindingValid, nil
}

var legacy = NewDeriver(SchemeLegacy)

// Capability returns the local capability in the legacy scheme.
func Capability(publicKey []byte, split *SplitSecret) (*crypto.Hash, error) {
	return legacy.Local(publicKey, split)
}

// RemoteCapability returns the remote capability in the legacy scheme.
func RemoteCapability(publicKey []byte, split *SplitSecret) (*crypto.Hash, error) {
	return legacy.Remote(publicKey, split)
}

// WriterCapability signs this peer's writer capability.
func WriterCapability(publicKey []byte, split *SplitSecret, secretKey []byte) ([]byte, error) {
	return legacy.Writer(publicKey, split, secretKey)
}

// VerifyRemoteWriterCapability verifies the other peer's writer capability.
func VerifyRemoteWriterCapability(publicKey []byte, split *SplitSecret, signature []byte) (Binding, error) {
	return legacy.VerifyRemoteWriter(publicKey, split, signature)
}
