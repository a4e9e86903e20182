// SPDX-License-Identifier: MIT

package gridgraph

import (
	"github.com/katalvlaran/lvlgrid/grid"
)

// New builds a GridGraph over a non-empty, rectangular grid.
// land reports which cells belong to regions; all other cells are water.
// Returns ErrEmptyGrid or ErrNonRectangular (wrapped) on malformed input.
// Complexity: O(H) validation.
func New[T any](g grid.Grid[T], land func(T) bool, conn Connectivity) (*GridGraph[T], error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	_, w := g.Size()

	return &GridGraph[T]{
		Cells: g,
		conn:  conn,
		land:  land,
		width: w,
		dirs:  conn.dirs(),
	}, nil
}

// IsLand reports whether the cell at p is land.
func (gg *GridGraph[T]) IsLand(p grid.Pos) bool {
	return gg.land(gg.Cells.At(p))
}

// index maps p to a row-major index: Row*width + Col.
// Complexity: O(1).
func (gg *GridGraph[T]) index(p grid.Pos) int {
	return p.Row*gg.width + p.Col
}

// Coordinate converts a row-major index back to a Pos.
// Complexity: O(1).
func (gg *GridGraph[T]) Coordinate(idx int) grid.Pos {
	return grid.Pos{Row: idx / gg.width, Col: idx % gg.width}
}

// Connectivity reports the neighbourhood fixed by New.
func (gg *GridGraph[T]) Connectivity() Connectivity {
	return gg.conn
}

// Neighbors returns the in-bounds neighbours of p under gg.Connectivity().
func (gg *GridGraph[T]) Neighbors(p grid.Pos) []grid.Pos {
	if gg.conn == Conn8 {
		return gg.Cells.Adj8(p)
	}

	return gg.Cells.Adj(p)
}
