// SPDX-License-Identifier: MIT

package matrix

import "strings"

// String renders the matrix as a bordered, column-aligned grid:
//
//	+---+----+
//	| 1 | 25 |
//	+---+----+
//	| 3 | 4  |
//	+---+----+
//
// Each column is as wide as its widest rendered element; elements are
// centered, with any odd leftover space going to the right. Deterministic
// for the current contents.
func (m *Matrix) String() string {
	widths := make([]int, m.ncol)
	cells := make([]string, len(m.data))
	for i, e := range m.data {
		s := e.String()
		cells[i] = s
		if c := i % m.ncol; len(s) > widths[c] {
			widths[c] = len(s)
		}
	}

	var rule strings.Builder
	for _, w := range widths {
		rule.WriteByte('+')
		rule.WriteString(strings.Repeat("-", w+2))
	}
	rule.WriteByte('+')

	var b strings.Builder
	b.WriteString(rule.String())
	b.WriteByte('\n')
	for r := 0; r < m.nrow; r++ {
		for c := 0; c < m.ncol; c++ {
			s := cells[r*m.ncol+c]
			left := (widths[c] - len(s)) / 2
			right := widths[c] - len(s) - left
			b.WriteString("| ")
			b.WriteString(strings.Repeat(" ", left))
			b.WriteString(s)
			b.WriteString(strings.Repeat(" ", right))
			b.WriteByte(' ')
		}
		b.WriteString("|\n")
		b.WriteString(rule.String())
		b.WriteByte('\n')
	}

	return strings.TrimSuffix(b.String(), "\n")
}
