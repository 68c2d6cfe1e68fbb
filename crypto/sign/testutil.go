package sign

import (
	"bytes"
)

// NewStaticTestSigningKey returns a static private signing key for _tests_.
func NewStaticTestSigningKey() PrivateKey {
	sk, err := GenerateKey(bytes.NewReader(
		[]byte("deterministic tests need 256 bit")))
	if err != nil {
		panic(err)
	}
	return sk
}

// NewStaticTestKeyPair returns the key pair of NewStaticTestSigningKey.
func NewStaticTestKeyPair() *KeyPair {
	sk := NewStaticTestSigningKey()
	pk, _ := sk.Public()
	return &KeyPair{PublicKey: pk, SecretKey: sk}
}
