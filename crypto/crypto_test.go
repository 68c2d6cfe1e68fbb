package crypto

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testErrorRandReader struct{}

func (er testErrorRandReader) Read([]byte) (int, error) {
	return 0, errors.New("not enough entropy")
}

func h2b(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex string")
	}
	return b
}

func TestDigest(t *testing.T) {
	msg := []byte("test message")
	d := Digest(msg)
	require.Len(t, d[:], HashSizeByte)
	require.NotEqual(t, Hash{}, d)

	// Multi-part input hashes like its concatenation.
	require.Equal(t, d, Digest([]byte("test "), []byte("message")))
	require.Equal(t,
		"0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
		Digest().String())
}

func TestKeyedDigest(t *testing.T) {
	key := bytes.Repeat([]byte{1}, KeySizeByte)
	d1, err := KeyedDigest(key, []byte("data"))
	require.NoError(t, err)

	key[0] = 2
	d2, err := KeyedDigest(key, []byte("data"))
	require.NoError(t, err)
	require.NotEqual(t, d1, d2)
	require.NotEqual(t, Digest([]byte("data")), d1)

	_, err = KeyedDigest(key[:31], []byte("data"))
	require.ErrorIs(t, err, ErrInvalidLength)
	var lerr *InvalidLengthError
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, 31, lerr.Got)
	require.Equal(t, KeySizeByte, lerr.Want)
}

func TestRandomBytes(t *testing.T) {
	b1, err := RandomBytes(100)
	require.NoError(t, err)
	require.Len(t, b1, 100)

	b2, err := RandomBytes(100)
	require.NoError(t, err)
	require.NotEqual(t, b1, b2)

	empty, err := RandomBytes(0)
	require.NoError(t, err)
	require.Empty(t, empty)

	_, err = RandomBytes(-1)
	require.Error(t, err)
}

func TestRandomBytesReaderError(t *testing.T) {
	orig := rand.Reader
	rand.Reader = testErrorRandReader{}
	defer func() { rand.Reader = orig }()
	_, err := RandomBytes(HashSizeByte)
	require.Error(t, err)
}

func TestDiscoveryKeyVectors(t *testing.T) {
	pk := make([]byte, 32)
	for i := range pk {
		pk[i] = byte(i)
	}
	dk, err := DiscoveryKey(pk)
	require.NoError(t, err)
	require.Equal(t,
		h2b("b74b6d642892501cca569ff03d3bd21d9db9768a3c12a5516a4a80a7bebad901"),
		dk.Bytes())

	_, err = DiscoveryKey(pk[:16])
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestHashFromBytes(t *testing.T) {
	d := Digest([]byte("x"))
	got, err := HashFromBytes(d.Bytes())
	require.NoError(t, err)
	require.Equal(t, d, got)

	_, err = HashFromBytes(d[:10])
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestHashFromHex(t *testing.T) {
	d := Digest([]byte("x"))
	got, err := HashFromHex(d.String())
	require.NoError(t, err)
	require.Equal(t, d, got)

	_, err = HashFromHex("zz")
	require.Error(t, err)
	_, err = HashFromHex("00ff")
	require.ErrorIs(t, err, ErrInvalidLength)
}
