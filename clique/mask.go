// SPDX-License-Identifier: MIT

package clique

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Mask is the availability set of a cover run: a vertex is available until
// it is assigned to an extracted clique.
type Mask struct {
	n    int
	bits *roaring.Bitmap
}

// NewMask returns a mask over n vertices, all available.
func NewMask(n int) *Mask {
	m := &Mask{n: n, bits: roaring.New()}
	if n > 0 {
		m.bits.AddRange(0, uint64(n))
	}

	return m
}

// Size returns the number of vertices the mask was created for.
func (m *Mask) Size() int { return m.n }

// Available reports whether vertex i is still available.
func (m *Mask) Available(i int) bool {
	return i >= 0 && i < m.n && m.bits.Contains(uint32(i))
}

// Count returns the number of available vertices.
func (m *Mask) Count() int { return int(m.bits.GetCardinality()) }

// Consume marks every member of c unavailable.
func (m *Mask) Consume(c Clique) error {
	for _, v := range c {
		if v < 0 || v >= m.n {
			return fmt.Errorf("%w: vertex %d not in [0,%d)", ErrMaskSize, v, m.n)
		}
		m.bits.Remove(uint32(v))
	}

	return nil
}

// IDs returns the available vertices in ascending order.
func (m *Mask) IDs() []uint32 { return m.bits.ToArray() }
