// SPDX-License-Identifier: MIT
// Package ternary: sentinel error set.
//
// Every message is prefixed with "ternary: " so that wrapped errors remain
// greppable in logs. Callers match with errors.Is; context (record number,
// offending token) is attached with fmt.Errorf("...: %w", ErrX).

package ternary

import "errors"

var (
	// ErrMalformedRecord is the umbrella error for an input token that cannot
	// become a Vector of the configured length. It is always joined with a
	// more specific cause (ErrLengthMismatch or ErrBadSymbol).
	ErrMalformedRecord = errors.New("ternary: malformed record")

	// ErrLengthMismatch indicates a vector whose length differs from the
	// length fixed for the run.
	ErrLengthMismatch = errors.New("ternary: vector length mismatch")

	// ErrBadSymbol indicates a byte outside the alphabet {0, 1, X}.
	ErrBadSymbol = errors.New("ternary: symbol outside {0,1,X}")

	// ErrBadLength indicates a non-positive vector length.
	ErrBadLength = errors.New("ternary: vector length must be positive")

	// ErrIndexOutOfRange indicates a vector index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("ternary: index out of range")
)
