// SPDX-License-Identifier: MIT

// Package ternary defines the ternary alphabet {0, 1, X}, fixed-length
// vectors over it, and the ordered VectorSet that identifies each vector by
// its load index.
//
// Compatibility is the only relation the rest of the module needs: two
// vectors are compatible when no position holds 0 in one and 1 in the other.
// It is symmetric and NOT transitive (0X ~ XX ~ 1X, yet 0X !~ 1X).
package ternary

import "fmt"

// Symbol is one position of a ternary vector.
type Symbol uint8

const (
	// Zero is the fixed bit 0.
	Zero Symbol = iota
	// One is the fixed bit 1.
	One
	// DontCare is the wildcard X; it is compatible with every symbol.
	DontCare
)

// Byte returns the canonical text form: '0', '1' or 'X'.
func (s Symbol) Byte() byte {
	switch s {
	case Zero:
		return '0'
	case One:
		return '1'
	default:
		return 'X'
	}
}

// String implements fmt.Stringer.
func (s Symbol) String() string { return string(s.Byte()) }

// ParseSymbol maps '0', '1', 'X' (or 'x') to a Symbol.
func ParseSymbol(b byte) (Symbol, error) {
	switch b {
	case '0':
		return Zero, nil
	case '1':
		return One, nil
	case 'X', 'x':
		return DontCare, nil
	}

	return DontCare, fmt.Errorf("%w: %q", ErrBadSymbol, b)
}

// Conflicts reports whether a and b are the two different fixed bits.
func Conflicts(a, b Symbol) bool {
	return a != b && a != DontCare && b != DontCare
}
