// SPDX-License-Identifier: MIT

package grid

import "iter"

// PosIter walks every position of a rows×cols extent in row-major order.
// It is single-pass: once exhausted it stays exhausted.
type PosIter struct {
	rows, cols int // extent
	row, col   int // cursor
}

// NewPosIter returns an iterator over [0,rows)×[0,cols).
// It yields nothing if either dimension is 0.
func NewPosIter(rows, cols int) *PosIter {
	it := &PosIter{rows: rows, cols: cols}
	if cols <= 0 {
		it.row = rows
	}

	return it
}

// Next returns the next position, or false once all rows×cols have been produced.
// Complexity: O(1).
func (it *PosIter) Next() (Pos, bool) {
	if it.row >= it.rows {
		return Pos{}, false
	}
	p := Pos{Row: it.row, Col: it.col}
	it.col++
	if it.col >= it.cols {
		it.col = 0
		it.row++
	}

	return p, true
}

// Len reports how many positions remain.
func (it *PosIter) Len() int {
	if it.row >= it.rows {
		return 0
	}

	return (it.rows-it.row)*it.cols - it.col
}

// All ranges over the positions not yet consumed, advancing the iterator.
//
//	for p := range g.Positions().All() { ... }
func (it *PosIter) All() iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for {
			p, ok := it.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}
