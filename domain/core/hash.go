package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// SourceHash identifies an uploaded source by its content.
type SourceHash Hash

// NewSourceHash hashes a source file's raw bytes.
func NewSourceHash(data []byte) SourceHash { return SourceHash(NewHash(data)) }

func (h SourceHash) String() string { return Hash(h).String() }

// PairKey derives the memoization key for a merge of two sources.
// Order matters: sourceA rows precede sourceB rows in the unified table,
// so (a, b) and (b, a) are distinct merges.
func PairKey(a, b SourceHash) Hash {
	return NewHash([]byte(a.String() + "|" + b.String()))
}
