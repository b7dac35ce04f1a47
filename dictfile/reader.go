// SPDX-License-Identifier: MIT

package dictfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/ternclique/ternary"
)

// maxTokenBytes bounds a single token; far above any sensible vector length.
const maxTokenBytes = 1 << 20

// Policy decides what happens to a malformed record.
type Policy int

const (
	// Fail aborts the read on the first malformed record.
	Fail Policy = iota
	// Skip drops malformed records with a warning and keeps reading.
	Skip
)

// String implements fmt.Stringer with the names accepted by ParsePolicy.
func (p Policy) String() string {
	if p == Skip {
		return "skip"
	}

	return "fail"
}

// ErrUnknownPolicy is returned by ParsePolicy for an unrecognised name.
var ErrUnknownPolicy = errors.New("dictfile: unknown malformed-record policy")

// ParsePolicy maps "fail" and "skip" to a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "fail", "":
		return Fail, nil
	case "skip":
		return Skip, nil
	}

	return Fail, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// ReadOption configures ReadVectors.
type ReadOption func(*readOptions)

type readOptions struct {
	policy Policy
	logger *zap.Logger
}

// WithPolicy sets the malformed-record policy (default Fail).
func WithPolicy(p Policy) ReadOption {
	return func(o *readOptions) { o.policy = p }
}

// WithLogger sets the logger used for skipped-record warnings.
func WithLogger(l *zap.Logger) ReadOption {
	return func(o *readOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// ReadStats counts what ReadVectors saw.
type ReadStats struct {
	Records int // tokens seen
	Skipped int // malformed tokens dropped under Skip
}

// ReadVectors reads whitespace-separated tokens of exactly length symbols
// over {0,1,X} into a new VectorSet, in input order.
//
// Under Fail the first bad token aborts with an error wrapping
// ternary.ErrMalformedRecord and naming its 1-based record number. Under
// Skip it is logged at warn level and dropped; later vectors keep
// consecutive indices. Read errors wrap ErrInputAccess.
func ReadVectors(r io.Reader, length int, opts ...ReadOption) (*ternary.VectorSet, ReadStats, error) {
	o := readOptions{policy: Fail, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	var st ReadStats
	set, err := ternary.NewVectorSet(length)
	if err != nil {
		return nil, st, err
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxTokenBytes)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		st.Records++
		tok := sc.Text()
		if _, err = set.AppendString(tok); err == nil {
			continue
		}
		if o.policy == Fail {
			return nil, st, fmt.Errorf("record %d: %w", st.Records, err)
		}
		st.Skipped++
		o.logger.Warn("skipping malformed record",
			zap.Int("record", st.Records),
			zap.Int("want_length", length),
			zap.Error(err))
	}
	if err = sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, st, fmt.Errorf("record %d: %w: %w", st.Records+1, ternary.ErrMalformedRecord, err)
		}
		return nil, st, fmt.Errorf("%w: %w", ErrInputAccess, err)
	}

	return set, st, nil
}

// ReadFile opens path (decompressing by extension) and calls ReadVectors.
func ReadFile(path string, length int, opts ...ReadOption) (*ternary.VectorSet, ReadStats, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, ReadStats{}, err
	}
	defer rc.Close()

	return ReadVectors(rc, length, opts...)
}
