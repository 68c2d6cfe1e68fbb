package checkpoint

import (
	"testing"
	"time"

	"github.com/corelog/corecrypto/crypto"
	"github.com/corelog/corecrypto/crypto/sign"
	"github.com/corelog/corecrypto/merkletree"
	"github.com/stretchr/testify/require"
	"github.com/veraison/go-cose"
)

func testForest() merkletree.Roots {
	h := merkletree.DefaultHasher()
	return merkletree.Roots{
		h.LeafNode(0, []byte("a")),
		h.LeafNode(2, []byte("b")),
	}
}

func TestSignVerify(t *testing.T) {
	kp := sign.NewStaticTestKeyPair()
	h := merkletree.DefaultHasher()
	roots := testForest()
	now := time.UnixMilli(1700000000123)

	s, err := NewSigner(kp.SecretKey)
	require.NoError(t, err)
	state := NewState(h, roots, 2, now)
	require.Equal(t, int64(1700000000123), state.Timestamp)
	require.Equal(t, h.ID(), state.Hasher)

	cp, err := s.Sign(state)
	require.NoError(t, err)

	got, err := Verify(cp, kp.PublicKey)
	require.NoError(t, err)
	require.Equal(t, state, *got)
	require.True(t, got.Matches(h, roots, 2))
	require.True(t, got.Matches(h, merkletree.RootDigest(h.Tree(roots)), 2))
	require.False(t, got.Matches(h, roots, 3))
	require.False(t, got.Matches(h, roots[:1], 2))
}

func TestVerifyRejectsOtherKey(t *testing.T) {
	kp := sign.NewStaticTestKeyPair()
	other, err := sign.NewKeyPair(nil)
	require.NoError(t, err)

	s, err := NewSigner(kp.SecretKey)
	require.NoError(t, err)
	cp, err := s.Sign(NewState(merkletree.DefaultHasher(), testForest(), 2, time.Now()))
	require.NoError(t, err)

	_, err = Verify(cp, other.PublicKey)
	require.ErrorIs(t, err, ErrWrongKey)
}

func TestVerifyRejectsTampering(t *testing.T) {
	kp := sign.NewStaticTestKeyPair()
	s, err := NewSigner(kp.SecretKey)
	require.NoError(t, err)
	cp, err := s.Sign(NewState(merkletree.DefaultHasher(), testForest(), 2, time.Now()))
	require.NoError(t, err)

	// The signature is the trailing byte string of the message.
	cp[len(cp)-1] ^= 0xff
	_, err = Verify(cp, kp.PublicKey)
	require.ErrorIs(t, err, cose.ErrVerification)
}

func TestVerifyMalformed(t *testing.T) {
	kp := sign.NewStaticTestKeyPair()

	_, err := Verify([]byte("not cbor"), kp.PublicKey)
	require.ErrorIs(t, err, ErrBadCheckpoint)

	_, err = Verify(nil, kp.PublicKey[:10])
	require.ErrorIs(t, err, crypto.ErrInvalidLength)
}

func TestNewSignerKeyLength(t *testing.T) {
	_, err := NewSigner(make([]byte, 10))
	require.ErrorIs(t, err, crypto.ErrInvalidLength)
}
