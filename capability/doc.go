// Package capability derives channel-binding values from the split
// secret of an established secure channel.
//
// Both ends of a handshake hold the same two traffic keys with their
// roles swapped: one peer's transmit key is the other's receive key.
// A capability is a keyed hash over that split secret and a log's
// public key, so the local capability of one peer equals the remote
// capability of the other without any further message being exchanged.
//
// The writer capability additionally signs the derived value with the
// log's secret key, proving possession of the key and binding the proof
// to this one session.
//
// Two wire schemes exist for the plain capability. SchemeLegacy hashes
// only the literal "hypercore capability" tag and is compatible with
// peers that predate typed capabilities. SchemeTagged prefixes a
// capability type byte. Both peers must be configured with the same
// scheme.
package capability
