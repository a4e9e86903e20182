// SPDX-License-Identifier: MIT

package grid

import "github.com/katalvlaran/lvlgrid/direction"

// The functions below accept any [][]T, so they serve plain slices as well
// as Grid. Column count is always taken from the first row.

// Size returns (row count, column count). An empty structure reports (0, 0).
// Complexity: O(1).
func Size[T any](rows [][]T) (int, int) {
	if len(rows) == 0 {
		return 0, 0
	}

	return len(rows), len(rows[0])
}

// InBounds reports whether p addresses a cell of rows.
func InBounds[T any](rows [][]T, p Pos) bool {
	h, w := Size(rows)

	return p.Row >= 0 && p.Row < h && p.Col >= 0 && p.Col < w
}

// AddDir returns p+d if it lies inside rows, else (Pos{}, false).
// Both coordinates are checked against zero and against Size.
// Complexity: O(1).
func AddDir[T any](rows [][]T, p Pos, d direction.Dir) (Pos, bool) {
	h, w := Size(rows)
	r := p.Row + int(d.R)
	c := p.Col + int(d.C)
	if r < 0 || c < 0 || r >= h || c >= w {
		return Pos{}, false
	}

	return Pos{Row: r, Col: c}, true
}

// AddDirN applies AddDir n times, failing as soon as a step leaves the grid.
// n == 0 returns p unchanged, even if p itself is out of range.
// Complexity: O(n).
func AddDirN[T any](rows [][]T, p Pos, d direction.Dir, n int) (Pos, bool) {
	for i := 0; i < n; i++ {
		var ok bool
		if p, ok = AddDir(rows, p, d); !ok {
			return Pos{}, false
		}
	}

	return p, true
}

// Get2D returns the neighbour of p in direction d.
// Complexity: O(1).
func Get2D[T any](rows [][]T, p Pos, d direction.Dir) (T, bool) {
	q, ok := AddDir(rows, p, d)
	if !ok {
		var zero T
		return zero, false
	}

	return rows[q.Row][q.Col], true
}

// Get2DPtr is Get2D returning a pointer into rows for in-place updates.
func Get2DPtr[T any](rows [][]T, p Pos, d direction.Dir) (*T, bool) {
	q, ok := AddDir(rows, p, d)
	if !ok {
		return nil, false
	}

	return &rows[q.Row][q.Col], true
}

// Count2D counts the cells satisfying pred, row by row.
// Complexity: O(R×C).
func Count2D[T any](rows [][]T, pred func(T) bool) int {
	n := 0
	for _, row := range rows {
		for _, v := range row {
			if pred(v) {
				n++
			}
		}
	}

	return n
}

// Adj returns the in-bounds orthogonal neighbours of p in direction.All4 order.
func Adj[T any](rows [][]T, p Pos) []Pos {
	return neighbours(rows, p, direction.All4[:])
}

// Adj8 returns the in-bounds neighbours of p, diagonals included, in
// direction.All8 order.
func Adj8[T any](rows [][]T, p Pos) []Pos {
	return neighbours(rows, p, direction.All8[:])
}

func neighbours[T any](rows [][]T, p Pos, dirs []direction.Dir) []Pos {
	out := make([]Pos, 0, len(dirs))
	for _, d := range dirs {
		if q, ok := AddDir(rows, p, d); ok {
			out = append(out, q)
		}
	}

	return out
}

// Positions returns a fresh PosIter sized to rows.
func Positions[T any](rows [][]T) *PosIter {
	h, w := Size(rows)

	return NewPosIter(h, w)
}

// Method forms on Grid.

// Size returns (rows, cols) of g.
func (g Grid[T]) Size() (int, int) { return Size(g) }

// InBounds reports whether p addresses a cell of g.
func (g Grid[T]) InBounds(p Pos) bool { return InBounds(g, p) }

// AddDir returns p+d if it stays on g.
func (g Grid[T]) AddDir(p Pos, d direction.Dir) (Pos, bool) { return AddDir(g, p, d) }

// AddDirN steps n times from p in direction d.
func (g Grid[T]) AddDirN(p Pos, d direction.Dir, n int) (Pos, bool) { return AddDirN(g, p, d, n) }

// Get2D returns the neighbour of p in direction d.
func (g Grid[T]) Get2D(p Pos, d direction.Dir) (T, bool) { return Get2D(g, p, d) }

// Get2DPtr returns a pointer to the neighbour of p in direction d.
func (g Grid[T]) Get2DPtr(p Pos, d direction.Dir) (*T, bool) { return Get2DPtr(g, p, d) }

// Count2D counts the cells of g satisfying pred.
func (g Grid[T]) Count2D(pred func(T) bool) int { return Count2D(g, pred) }

// Adj returns the orthogonal neighbours of p.
func (g Grid[T]) Adj(p Pos) []Pos { return Adj(g, p) }

// Adj8 returns all neighbours of p, diagonals included.
func (g Grid[T]) Adj8(p Pos) []Pos { return Adj8(g, p) }

// Positions returns a fresh PosIter over g.
func (g Grid[T]) Positions() *PosIter { return Positions(g) }
