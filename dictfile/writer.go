// SPDX-License-Identifier: MIT

package dictfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/ternclique/ternary"
)

// Format selects the output line layout.
type Format int

const (
	// Templates writes "Clique <i>: <template>" (the dictionary itself).
	Templates Format = iota
	// Members writes "Clique <i>: {a, b, c}" with 1-based vector numbers.
	Members
)

// String implements fmt.Stringer with the names accepted by ParseFormat.
func (f Format) String() string {
	if f == Members {
		return "members"
	}

	return "templates"
}

// ErrUnknownFormat is returned by ParseFormat for an unrecognised name.
var ErrUnknownFormat = errors.New("dictfile: unknown output format")

// ParseFormat maps "templates" and "members" to a Format.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "templates", "":
		return Templates, nil
	case "members":
		return Members, nil
	}

	return Templates, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// WriteTemplates writes one "Clique <i>: <template>" line per entry, i from 1.
// Write errors wrap ErrOutputAccess.
func WriteTemplates(w io.Writer, templates []ternary.Vector) error {
	bw := bufio.NewWriter(w)
	for i, t := range templates {
		if _, err := fmt.Fprintf(bw, "Clique %d: %s\n", i+1, t); err != nil {
			return fmt.Errorf("%w: %w", ErrOutputAccess, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputAccess, err)
	}

	return nil
}

// WriteMembers writes one "Clique <i>: {a, b}" line per group, listing the
// members as 1-based vector numbers in group order.
// Write errors wrap ErrOutputAccess.
func WriteMembers[C ~[]int](w io.Writer, groups []C) error {
	bw := bufio.NewWriter(w)
	for i, g := range groups {
		line := make([]byte, 0, 16+len(g)*6)
		line = append(line, "Clique "...)
		line = strconv.AppendInt(line, int64(i+1), 10)
		line = append(line, ": {"...)
		for j, m := range g {
			if j > 0 {
				line = append(line, ", "...)
			}
			line = strconv.AppendInt(line, int64(m+1), 10)
		}
		line = append(line, "}\n"...)
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("%w: %w", ErrOutputAccess, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputAccess, err)
	}

	return nil
}
