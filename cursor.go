// SPDX-License-Identifier: MIT

package matrix

// Cursor walks a matrix's elements in row-major order, one-indexed from
// (1,1). It aliases the matrix storage: any structural change made after
// creation invalidates it, and subsequent calls fail with
// ErrConcurrentModification. A value change is observed, not an error.
type Cursor struct {
	m     *Matrix
	pos   int    // zero-based flat index of the NEXT element to yield
	done  bool   // latched once exhausted or terminated by a bad Seek
	epoch uint64 // matrix epoch at creation
}

// Iter returns a fresh cursor positioned before (1,1).
func (m *Matrix) Iter() *Cursor {
	return &Cursor{m: m, epoch: m.epoch}
}

// Next yields the current element and advances. Once the storage is
// exhausted ok stays false forever.
// Errors: ErrConcurrentModification. Complexity: O(1).
func (c *Cursor) Next() (Element, bool, error) {
	if c.epoch != c.m.epoch {
		return Zero, false, matrixErrorf("Cursor.Next", ErrConcurrentModification)
	}
	if c.done || c.pos >= len(c.m.data) {
		c.done = true

		return Zero, false, nil
	}

	e := c.m.data[c.pos]
	c.pos++

	return e, true, nil
}

// Seek repositions the cursor: one index targets the first element of that
// row, two indices target that exact element. The targeted element is
// returned immediately, so the following Next yields its successor.
// An out-of-range target or an unsupported number of indices terminates
// the cursor (ok=false) without an error.
// Errors: ErrConcurrentModification. Complexity: O(1).
func (c *Cursor) Seek(target ...int) (Element, bool, error) {
	if c.epoch != c.m.epoch {
		return Zero, false, matrixErrorf("Cursor.Seek", ErrConcurrentModification)
	}

	var flat int
	switch len(target) {
	case 1:
		if validateIndex(target[0], c.m.nrow) != nil {
			c.done = true

			return Zero, false, nil
		}
		flat = (target[0] - 1) * c.m.ncol
	case 2:
		if validateIndex(target[0], c.m.nrow) != nil || validateIndex(target[1], c.m.ncol) != nil {
			c.done = true

			return Zero, false, nil
		}
		flat = (target[0]-1)*c.m.ncol + (target[1] - 1)
	default:
		c.done = true

		return Zero, false, nil
	}

	c.done = false
	c.pos = flat + 1

	return c.m.data[flat], true, nil
}
