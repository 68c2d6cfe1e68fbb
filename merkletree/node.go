package merkletree

import (
	"github.com/corelog/corecrypto/crypto"
)

// Node is a node of the tree in flat-tree numbering. Leaves have even
// indexes. Size is the number of bytes spanned by the node's subtree.
// Leaves and interior nodes share this shape.
type Node struct {
	Index uint64
	Size  uint64
	Hash  crypto.Hash
}

// Roots is the ordered forest of fully formed subtrees of a log.
type Roots []Node

// RootInput is either a precomputed root digest (RootDigest)
// or the forest it is computed from (Roots).
type RootInput interface {
	rootHash(h *Hasher) crypto.Hash
}

// RootDigest is a root commitment that has already been computed.
type RootDigest crypto.Hash

func (d RootDigest) rootHash(*Hasher) crypto.Hash {
	return crypto.Hash(d)
}

func (r Roots) rootHash(h *Hasher) crypto.Hash {
	return h.Tree(r)
}
