package merkletree

import (
	"errors"
	"math"

	"github.com/corelog/corecrypto/crypto"
	"github.com/corelog/corecrypto/crypto/hashers"
	"github.com/corelog/corecrypto/crypto/hashers/blake2"
	"github.com/corelog/corecrypto/utils"
)

// Type tags prefixed to every tree digest.
const (
	LeafType   byte = 0
	ParentType byte = 1
	RootType   byte = 2
)

// SignableSize is the length of the payload returned by Signable.
const SignableSize = crypto.HashSizeByte + 8

var (
	// ErrDuplicateIndex indicates that Parent was given two nodes
	// with the same index, which cannot be siblings.
	ErrDuplicateIndex = errors.New("[merkletree] parent of two nodes with the same index")
	// ErrSizeOverflow indicates that the children span more than 2^64-1 bytes.
	ErrSizeOverflow = errors.New("[merkletree] combined node size overflows uint64")
)

// A Hasher computes tree digests with the layout described in the
// package documentation, over the hash function of its TreeHasher.
// A Hasher holds no mutable state and is safe for concurrent use.
type Hasher struct {
	th hashers.TreeHasher
}

// NewHasher returns a Hasher backed by th.
func NewHasher(th hashers.TreeHasher) *Hasher {
	return &Hasher{th: th}
}

// NewHasherByID returns a Hasher backed by the registered TreeHasher
// named id.
func NewHasherByID(id string) (*Hasher, error) {
	th, err := hashers.NewTreeHasher(id)
	if err != nil {
		return nil, err
	}
	return NewHasher(th), nil
}

var defaultHasher = NewHasher(blake2.New())

// DefaultHasher returns the BLAKE2b-256 Hasher used by the
// package-level functions.
func DefaultHasher() *Hasher {
	return defaultHasher
}

// ID returns the name of the underlying hash function.
func (h *Hasher) ID() string {
	return h.th.ID()
}

// Data computes the leaf digest of data as:
// H(LeafType || uint64(len(data)) || data).
func (h *Hasher) Data(data []byte) crypto.Hash {
	return h.th.Digest(
		[]byte{LeafType},
		utils.ULongToBytes(uint64(len(data))),
		data,
	)
}

// Leaf is the same as Data.
func (h *Hasher) Leaf(data []byte) crypto.Hash {
	return h.Data(data)
}

// LeafNode returns the leaf node at index holding data.
func (h *Hasher) LeafNode(index uint64, data []byte) Node {
	return Node{
		Index: index,
		Size:  uint64(len(data)),
		Hash:  h.Data(data),
	}
}

// Parent computes the digest of the parent of a and b as:
// H(ParentType || uint64(a.Size+b.Size) || a.Hash || b.Hash),
// after ordering a and b by ascending index.
func (h *Hasher) Parent(a, b Node) (crypto.Hash, error) {
	if a.Index == b.Index {
		return crypto.Hash{}, ErrDuplicateIndex
	}
	if a.Size > math.MaxUint64-b.Size {
		return crypto.Hash{}, ErrSizeOverflow
	}
	if a.Index > b.Index {
		a, b = b, a
	}
	return h.th.Digest(
		[]byte{ParentType},
		utils.ULongToBytes(a.Size+b.Size),
		a.Hash[:],
		b.Hash[:],
	), nil
}

// ParentNode returns the parent of the sibling nodes a and b.
// Siblings sit at equal distance from their parent in flat-tree
// numbering, so the parent's index is the midpoint of theirs.
func (h *Hasher) ParentNode(a, b Node) (Node, error) {
	hash, err := h.Parent(a, b)
	if err != nil {
		return Node{}, err
	}
	return Node{
		// a.Index + (b.Index-a.Index)/2 without overflowing
		Index: a.Index/2 + b.Index/2 + (a.Index%2+b.Index%2)/2,
		Size:  a.Size + b.Size,
		Hash:  hash,
	}, nil
}

// Tree computes the commitment to roots as:
// H(RootType || for each root: hash || uint64(index) || uint64(size)).
// The order of roots is part of the commitment.
func (h *Hasher) Tree(roots Roots) crypto.Hash {
	ms := make([][]byte, 0, 3*len(roots)+1)
	ms = append(ms, []byte{RootType})
	for i := range roots {
		ms = append(ms,
			roots[i].Hash[:],
			utils.ULongToBytes(roots[i].Index),
			utils.ULongToBytes(roots[i].Size),
		)
	}
	return h.th.Digest(ms...)
}

// Root resolves in to a root digest, computing the commitment
// when in is a forest of roots.
func (h *Hasher) Root(in RootInput) crypto.Hash {
	return in.rootHash(h)
}

// Signable returns the 40-byte payload binding the tree's root
// commitment to its declared length: root(32) || uint64(length).
func (h *Hasher) Signable(in RootInput, length uint64) []byte {
	root := h.Root(in)
	out := make([]byte, 0, SignableSize)
	out = append(out, root[:]...)
	return append(out, utils.ULongToBytes(length)...)
}

// Data computes the leaf digest of data with the default hasher.
func Data(data []byte) crypto.Hash {
	return defaultHasher.Data(data)
}

// Leaf computes the leaf digest of data with the default hasher.
func Leaf(data []byte) crypto.Hash {
	return defaultHasher.Leaf(data)
}

// Parent computes the parent digest of a and b with the default hasher.
func Parent(a, b Node) (crypto.Hash, error) {
	return defaultHasher.Parent(a, b)
}

// Tree computes the root commitment of roots with the default hasher.
func Tree(roots Roots) crypto.Hash {
	return defaultHasher.Tree(roots)
}

// Signable returns the signable payload with the default hasher.
func Signable(in RootInput, length uint64) []byte {
	return defaultHasher.Signable(in, length)
}
