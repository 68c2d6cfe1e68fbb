package blake2

import (
	"testing"

	"github.com/corelog/corecrypto/crypto"
	"github.com/corelog/corecrypto/crypto/hashers"
	"github.com/stretchr/testify/require"
)

func TestRegistered(t *testing.T) {
	h, err := hashers.NewTreeHasher(ID)
	require.NoError(t, err)
	require.Equal(t, ID, h.ID())
	require.Equal(t, crypto.HashSizeByte, h.Size())
}

func TestDigestMatchesPrimitive(t *testing.T) {
	msg := [][]byte{[]byte("a"), []byte("b")}
	require.Equal(t, crypto.Digest(msg...), New().Digest(msg...))
}
