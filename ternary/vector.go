// SPDX-License-Identifier: MIT

package ternary

import (
	"fmt"
	"strings"
)

// Vector is an immutable fixed-length sequence of Symbols.
// The zero Vector has length 0 and is compatible with every other zero Vector.
type Vector struct {
	sym []Symbol
}

// NewVector copies symbols into a new Vector.
func NewVector(symbols ...Symbol) Vector {
	cp := make([]Symbol, len(symbols))
	copy(cp, symbols)

	return Vector{sym: cp}
}

// ParseVector decodes a token of exactly length symbols over {0,1,X}.
//
// Errors (all wrap ErrMalformedRecord):
//   - ErrLengthMismatch when len(token) != length.
//   - ErrBadSymbol on the first byte outside the alphabet, with its offset.
//
// A non-positive length returns ErrBadLength.
//
// Complexity: O(L).
func ParseVector(token string, length int) (Vector, error) {
	if length <= 0 {
		return Vector{}, fmt.Errorf("%w: %d", ErrBadLength, length)
	}
	if len(token) != length {
		return Vector{}, fmt.Errorf("%w: %w: token %q has %d symbols, want %d",
			ErrMalformedRecord, ErrLengthMismatch, token, len(token), length)
	}

	sym := make([]Symbol, length)
	for i := 0; i < length; i++ {
		s, err := ParseSymbol(token[i])
		if err != nil {
			return Vector{}, fmt.Errorf("%w: token %q at offset %d: %w",
				ErrMalformedRecord, token, i, err)
		}
		sym[i] = s
	}

	return Vector{sym: sym}, nil
}

// MustParseVector is ParseVector(token, len(token)) that panics on error.
// Intended for fixtures and examples.
func MustParseVector(token string) Vector {
	v, err := ParseVector(token, len(token))
	if err != nil {
		panic(err)
	}

	return v
}

// Len returns the number of positions.
func (v Vector) Len() int { return len(v.sym) }

// At returns the symbol at position k. It panics when k is out of range,
// like a slice index.
func (v Vector) At(k int) Symbol { return v.sym[k] }

// Symbols returns a copy of the underlying symbols.
func (v Vector) Symbols() []Symbol {
	cp := make([]Symbol, len(v.sym))
	copy(cp, v.sym)

	return cp
}

// String renders the canonical text form, e.g. "1X0X".
func (v Vector) String() string {
	var b strings.Builder
	b.Grow(len(v.sym))
	for _, s := range v.sym {
		b.WriteByte(s.Byte())
	}

	return b.String()
}

// Equal reports whether v and w have the same length and symbols.
func (v Vector) Equal(w Vector) bool {
	if len(v.sym) != len(w.sym) {
		return false
	}
	for k := range v.sym {
		if v.sym[k] != w.sym[k] {
			return false
		}
	}

	return true
}

// Compatible reports whether v and w agree at every position where neither
// holds DontCare. Vectors of different length are never compatible.
//
// The scan stops at the first conflicting position; worst case O(L).
func Compatible(v, w Vector) bool {
	if len(v.sym) != len(w.sym) {
		return false
	}
	for k := range v.sym {
		if Conflicts(v.sym[k], w.sym[k]) {
			return false
		}
	}

	return true
}

// Covers reports whether template t subsumes v: same length, and every fixed
// position of t holds the same symbol in v.
func Covers(t, v Vector) bool {
	if len(t.sym) != len(v.sym) {
		return false
	}
	for k, s := range t.sym {
		if s != DontCare && v.sym[k] != s {
			return false
		}
	}

	return true
}
