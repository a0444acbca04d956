package core

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// NewHashFloats hashes a float slice deterministically. The IEEE 754 bit
// patterns are hashed, so values that compare equal but differ in bits
// (-0 vs 0) hash differently.
func NewHashFloats(vals []float64) Hash {
	buf := make([]byte, 8*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(v))
	}
	return NewHash(buf)
}

// NewHashInts hashes an int slice deterministically.
func NewHashInts(vals []int) Hash {
	buf := make([]byte, 8*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint64(buf[8*i:], uint64(v))
	}
	return NewHash(buf)
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// CombineHashes folds several hashes into one fingerprint.
func CombineHashes(hashes ...Hash) Hash {
	var buf []byte
	for _, h := range hashes {
		buf = append(buf, []byte(h)...)
	}
	return NewHash(buf)
}
