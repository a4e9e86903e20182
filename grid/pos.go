// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/katalvlaran/lvlgrid/direction"
)

// Pos locates a cell by row and column. Both are non-negative; a Pos is only
// meaningful relative to the grid it was produced for.
type Pos struct {
	Row, Col int
}

// Add returns p offset by d without any bounds check. The result may be
// negative; use AddDir to stay on a grid.
func (p Pos) Add(d direction.Dir) Pos {
	return Pos{Row: p.Row + int(d.R), Col: p.Col + int(d.C)}
}

// String implements fmt.Stringer as "(row,col)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
