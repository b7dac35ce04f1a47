// SPDX-License-Identifier: MIT

// Package dictfile reads ternary vectors from text files and writes
// dictionaries back out.
//
// Input is a stream of whitespace-separated tokens, one vector per token.
// Output is one line per dictionary entry. Both sides are transparently
// compressed when the path ends in .gz, .zst or .lz4.
package dictfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Sentinel errors for file access.
var (
	// ErrInputAccess means the input could not be opened or read.
	ErrInputAccess = errors.New("dictfile: input not readable")

	// ErrOutputAccess means the output could not be created or written.
	ErrOutputAccess = errors.New("dictfile: output not writable")
)

// Compression identifies a stream codec.
type Compression int

const (
	// Plain is uncompressed text.
	Plain Compression = iota
	// Gzip is RFC 1952 (".gz").
	Gzip
	// Zstd is Zstandard (".zst").
	Zstd
	// LZ4 is the LZ4 frame format (".lz4").
	LZ4
)

// CompressionFor picks the codec from the file extension.
func CompressionFor(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	case ".lz4":
		return LZ4
	default:
		return Plain
	}
}

// stack closes a chain of layers innermost-first and keeps the first error.
type stack []io.Closer

func (s stack) Close() error {
	var first error
	for _, c := range s {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}

type readCloser struct {
	io.Reader
	stack
}

type writeCloser struct {
	io.Writer
	stack
}

// Open opens path for reading, decompressing by extension.
// Failures wrap ErrInputAccess.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputAccess, err)
	}

	rc, err := NewReader(f, CompressionFor(path))
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return rc, nil
}

// NewReader wraps r with the decoder for c. Closing the result closes the
// decoder and then r when r is an io.Closer.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	var outer stack
	if cl, ok := r.(io.Closer); ok {
		outer = stack{cl}
	}

	switch c {
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: gzip: %w", ErrInputAccess, err)
		}
		return readCloser{zr, append(stack{zr}, outer...)}, nil
	case Zstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %w", ErrInputAccess, err)
		}
		rc := zr.IOReadCloser()
		return readCloser{rc, append(stack{rc}, outer...)}, nil
	case LZ4:
		return readCloser{lz4.NewReader(r), outer}, nil
	default:
		return readCloser{r, outer}, nil
	}
}

// Create creates (or truncates) path for writing, compressing by extension.
// Failures wrap ErrOutputAccess. The caller must Close the result to flush
// the codec.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutputAccess, err)
	}

	wc, err := NewWriter(f, CompressionFor(path))
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return wc, nil
}

// NewWriter wraps w with the encoder for c. Closing the result flushes the
// encoder and then closes w when w is an io.Closer.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	var outer stack
	if cl, ok := w.(io.Closer); ok {
		outer = stack{cl}
	}

	switch c {
	case Gzip:
		zw := gzip.NewWriter(w)
		return writeCloser{zw, append(stack{zw}, outer...)}, nil
	case Zstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %w", ErrOutputAccess, err)
		}
		return writeCloser{zw, append(stack{zw}, outer...)}, nil
	case LZ4:
		zw := lz4.NewWriter(w)
		return writeCloser{zw, append(stack{zw}, outer...)}, nil
	default:
		return writeCloser{w, outer}, nil
	}
}
