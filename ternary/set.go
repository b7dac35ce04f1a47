// SPDX-License-Identifier: MIT

package ternary

import "fmt"

// VectorSet is an ordered, growable collection of equal-length Vectors.
// The index returned by Append is the vector's identity for the rest of the
// pipeline (graph vertex, clique member, output numbering).
//
// A VectorSet is not safe for concurrent mutation; once loading is done it is
// only read, and concurrent reads are safe.
type VectorSet struct {
	length  int
	vectors []Vector
}

// NewVectorSet returns an empty set for vectors of the given length.
// Returns ErrBadLength for length <= 0.
func NewVectorSet(length int) (*VectorSet, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadLength, length)
	}

	return &VectorSet{length: length}, nil
}

// MustVectorSet builds a set from text tokens and panics on any error.
// The length is taken from the first token. Intended for fixtures and examples.
func MustVectorSet(tokens ...string) *VectorSet {
	if len(tokens) == 0 {
		panic("ternary: MustVectorSet needs at least one token")
	}
	s, err := NewVectorSet(len(tokens[0]))
	if err != nil {
		panic(err)
	}
	for _, tok := range tokens {
		if _, err = s.AppendString(tok); err != nil {
			panic(err)
		}
	}

	return s
}

// Append adds v and returns its index.
// Returns ErrMalformedRecord wrapping ErrLengthMismatch if v.Len() differs
// from the set's length.
func (s *VectorSet) Append(v Vector) (int, error) {
	if v.Len() != s.length {
		return -1, fmt.Errorf("%w: %w: got %d symbols, want %d",
			ErrMalformedRecord, ErrLengthMismatch, v.Len(), s.length)
	}
	s.vectors = append(s.vectors, v)

	return len(s.vectors) - 1, nil
}

// AppendString parses tok with the set's length and appends it.
func (s *VectorSet) AppendString(tok string) (int, error) {
	v, err := ParseVector(tok, s.length)
	if err != nil {
		return -1, err
	}

	return s.Append(v)
}

// Len returns the number of vectors.
func (s *VectorSet) Len() int { return len(s.vectors) }

// Length returns the fixed vector length L.
func (s *VectorSet) Length() int { return s.length }

// At returns the vector at index i.
func (s *VectorSet) At(i int) (Vector, error) {
	if i < 0 || i >= len(s.vectors) {
		return Vector{}, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(s.vectors))
	}

	return s.vectors[i], nil
}

// Vectors returns the vectors in index order. The slice is a copy; the
// Vectors themselves are immutable.
func (s *VectorSet) Vectors() []Vector {
	out := make([]Vector, len(s.vectors))
	copy(out, s.vectors)

	return out
}
