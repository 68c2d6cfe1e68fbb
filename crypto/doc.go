// Package crypto contains the primitive routines the rest of the module
// builds on, to:
// - hash arbitrary data (`Digest`) using BLAKE2b with a 32-byte output
// - hash arbitrary data under a 32-byte key (`KeyedDigest`)
// - generate a random slice of bytes
// - derive the public discovery key of a log from its public key.
//
// Signing and verification using ed25519 live in the sign subpackage.
package crypto
