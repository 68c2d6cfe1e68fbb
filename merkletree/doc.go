/*
Package merkletree implements the hash constructions of an append-only
log's Merkle tree: leaf digests, parent digests and the commitment to the
forest of roots that describes the whole tree.

Domain separation

Every digest starts with a one-byte type tag: leaves use LeafType,
parents use ParentType and root commitments use RootType. A parent
digest can therefore never be substituted for a leaf digest, which
defeats the second-preimage attack against unbalanced Merkle trees.
Leaf and parent digests also commit to the number of bytes they span,
encoded as a little-endian uint64.

Ordering

Parent digests are symmetric: the two children are ordered by their
flat-tree index before hashing, so Parent(a, b) == Parent(b, a).
Root commitments are not: the roots are hashed in the order given,
and peers must agree on that order (normally ascending index).

Signable payloads

Signable binds a root digest to the declared length of the tree.
The resulting 40 bytes are what a writer signs and a reader verifies.
*/
package merkletree
