package namespace

import (
	"bytes"
	"encoding/hex"
	"sync"
	"testing"

	"github.com/corelog/corecrypto/crypto"
	"github.com/corelog/corecrypto/crypto/sign"
	"github.com/stretchr/testify/require"
)

func TestNewVectors(t *testing.T) {
	list, err := New([]byte("test"), 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "b2908b8c45b946c360ca3f35502b6936593a336abcb36de50eb5a97eba3c9b5a", list[0].String())
	require.Equal(t, "8f16292467b8d7405445f7804845412eae39d33b6bbc58dd06210d6fbfa05830", list[1].String())
}

func TestNewCount(t *testing.T) {
	list, err := New([]byte("x"), MaxCount)
	require.NoError(t, err)
	seen := make(map[Namespace]bool)
	for _, ns := range list {
		require.False(t, seen[ns])
		seen[ns] = true
	}

	_, err = New([]byte("x"), 0)
	require.ErrorIs(t, err, ErrBadCount)
	_, err = New([]byte("x"), MaxCount+1)
	require.ErrorIs(t, err, ErrBadCount)
}

func TestFromTag(t *testing.T) {
	tag := bytes.Repeat([]byte{9}, Size)
	ns, err := FromTag(tag)
	require.NoError(t, err)
	require.Equal(t, hex.EncodeToString(tag), ns.String())

	_, err = FromTag(tag[:31])
	require.ErrorIs(t, err, crypto.ErrInvalidLength)
}

func TestSignVerify(t *testing.T) {
	kp := sign.NewStaticTestKeyPair()
	list, err := New([]byte("protocol"), 2)
	require.NoError(t, err)
	ns1, ns2 := list[0], list[1]
	payload := []byte("hello world")

	sig, err := ns1.Sign(payload, kp.SecretKey)
	require.NoError(t, err)
	require.Len(t, sig, sign.SignatureSize)

	verify := func(ns Namespace, sig, payload []byte) bool {
		ok, err := ns.Verify(sig, payload, kp.PublicKey)
		require.NoError(t, err)
		return ok
	}
	require.True(t, verify(ns1, sig, payload))
	require.False(t, verify(ns1, sig, []byte("hello world!")))

	// Namespaces are isolated from each other in both directions.
	require.False(t, verify(ns2, sig, payload))
	sig2, err := ns2.Sign(payload, kp.SecretKey)
	require.NoError(t, err)
	require.False(t, verify(ns1, sig2, payload))

	// Nor is a namespaced signature a plain signature of the payload.
	ok, err := sign.Verify(payload, sig, kp.PublicKey)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyMalformed(t *testing.T) {
	kp := sign.NewStaticTestKeyPair()
	list, err := New([]byte("protocol"), 1)
	require.NoError(t, err)
	ns := list[0]

	ok, err := ns.Verify(make([]byte, 12), []byte("x"), kp.PublicKey)
	require.False(t, ok)
	var lerr *crypto.InvalidLengthError
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, 12, lerr.Got)
	require.Equal(t, sign.SignatureSize, lerr.Want)

	ok, err = ns.Verify(make([]byte, sign.SignatureSize), []byte("x"), kp.PublicKey[:3])
	require.False(t, ok)
	require.ErrorIs(t, err, crypto.ErrInvalidLength)

	_, err = ns.Sign([]byte("x"), kp.SecretKey[:12])
	require.ErrorIs(t, err, crypto.ErrInvalidLength)
}

func TestHash(t *testing.T) {
	list, err := New([]byte("protocol"), 2)
	require.NoError(t, err)
	payload := []byte("payload")

	h1 := list[0].Hash(payload)
	require.Equal(t, crypto.Digest(list[0][:], payload), h1)
	require.NotEqual(t, h1, list[1].Hash(payload))
	require.NotEqual(t, crypto.Digest(payload), h1)

	dst := []byte{0xff}
	out := list[0].AppendHash(dst, payload)
	require.Len(t, out, 1+crypto.HashSizeByte)
	require.Equal(t, byte(0xff), out[0])
	require.Equal(t, h1[:], out[1:])
}

func TestConcurrentUse(t *testing.T) {
	kp := sign.NewStaticTestKeyPair()
	list, err := New([]byte("concurrent"), 1)
	require.NoError(t, err)
	ns := list[0]

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			payload := []byte{byte(i)}
			for j := 0; j < 50; j++ {
				sig, err := ns.Sign(payload, kp.SecretKey)
				if err != nil {
					t.Error(err)
					return
				}
				if ok, err := ns.Verify(sig, payload, kp.PublicKey); err != nil || !ok {
					t.Error("concurrent sign/verify failed")
					return
				}
				if ns.Hash(payload) != crypto.Digest(ns[:], payload) {
					t.Error("concurrent hash mismatch")
					return
				}
			}
		}(i)
	}
	wg.Wait()
}
