// SPDX-License-Identifier: MIT

package compat

import (
	"bufio"
	"io"
)

// WriteMatrix writes the dense 0/1 adjacency matrix, one row per line with
// entries separated by single spaces and a trailing space before the newline.
//
// Complexity: O(n²) output bytes; intended for small inputs.
func (g *Graph) WriteMatrix(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := range g.rows {
		for j := range g.rows {
			b := byte('0')
			if g.rows[i].Contains(uint32(j)) {
				b = '1'
			}
			if err := bw.WriteByte(b); err != nil {
				return err
			}
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
