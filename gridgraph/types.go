// SPDX-License-Identifier: MIT

package gridgraph

import (
	"errors"

	"github.com/katalvlaran/lvlgrid/direction"
	"github.com/katalvlaran/lvlgrid/grid"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = grid.ErrEmptyGrid
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = grid.ErrNonRectangular
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses the four orthogonal neighbours of direction.All4.
	Conn4 Connectivity = iota
	// Conn8 uses all eight neighbours of direction.All8.
	Conn8
)

// dirs returns the neighbour offsets for c.
func (c Connectivity) dirs() []direction.Dir {
	if c == Conn8 {
		return direction.All8[:]
	}

	return direction.All4[:]
}

// String implements fmt.Stringer.
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}

	return "conn4"
}

// GridGraph views a grid as a graph of cells. It does not copy the grid;
// callers must not resize it while the GridGraph is in use.
type GridGraph[T any] struct {
	Cells grid.Grid[T]

	conn  Connectivity
	land  func(T) bool
	width int
	dirs  []direction.Dir
}
