// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"
)

// Grid is a rectangular row-major container. g[r] is row r; every row has
// the same length. Rectangularity is a precondition, see Validate.
type Grid[T any] [][]T

// New returns a rows×cols grid with every cell set to value.
// value is copied by assignment; for slice, map or pointer element types
// use NewFunc to get an independent value per cell.
// Complexity: O(rows*cols).
func New[T any](value T, rows, cols int) Grid[T] {
	g := make(Grid[T], rows)
	for r := range g {
		row := make([]T, cols)
		for c := range row {
			row[c] = value
		}
		g[r] = row
	}

	return g
}

// Square returns an n×n grid filled with value.
func Square[T any](value T, n int) Grid[T] {
	return New(value, n, n)
}

// NewFunc returns a rows×cols grid whose cells are produced by fill.
// Complexity: O(rows*cols) calls to fill.
func NewFunc[T any](rows, cols int, fill func(Pos) T) Grid[T] {
	g := make(Grid[T], rows)
	for r := range g {
		row := make([]T, cols)
		for c := range row {
			row[c] = fill(Pos{Row: r, Col: c})
		}
		g[r] = row
	}

	return g
}

// FromRows validates rows and adopts them as a Grid without copying.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs from the first.
func FromRows[T any](rows [][]T) (Grid[T], error) {
	g := Grid[T](rows)
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// Validate reports whether g is non-empty and rectangular.
// Complexity: O(rows).
func (g Grid[T]) Validate() error {
	if len(g) == 0 || len(g[0]) == 0 {
		return ErrEmptyGrid
	}
	w := len(g[0])
	for r, row := range g {
		if len(row) != w {
			return fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), w, ErrNonRectangular)
		}
	}

	return nil
}

// Row returns row r. It panics if r is out of range.
func (g Grid[T]) Row(r int) []T {
	return g[r]
}

// At returns the element at p. It panics if p is out of range.
func (g Grid[T]) At(p Pos) T {
	return g[p.Row][p.Col]
}

// Set stores v at p. It panics if p is out of range.
func (g Grid[T]) Set(p Pos, v T) {
	g[p.Row][p.Col] = v
}

// Ptr returns a pointer to the element at p for in-place updates.
// It panics if p is out of range.
func (g Grid[T]) Ptr(p Pos) *T {
	return &g[p.Row][p.Col]
}

// Transpose returns a new grid t with t[j][i] == g[i][j].
// g must be rectangular; Transpose panics with ErrEmptyGrid if g has no rows.
// Transposing twice yields a grid equal to g.
// Complexity: O(rows*cols) time and memory.
func (g Grid[T]) Transpose() Grid[T] {
	if len(g) == 0 {
		panic(fmt.Errorf("Grid.Transpose: %w", ErrEmptyGrid))
	}
	rows, cols := len(g), len(g[0])
	out := make(Grid[T], cols)
	for c := range out {
		out[c] = make([]T, 0, rows)
	}
	for _, line := range g {
		for c, v := range line {
			out[c] = append(out[c], v)
		}
	}

	return out
}

// Clone returns a copy of g with freshly allocated rows.
// Elements are copied by assignment.
func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for r, row := range g {
		out[r] = append([]T(nil), row...)
	}

	return out
}

// Equal reports whether a and b have the same shape and elements.
func Equal[T comparable](a, b Grid[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for r := range a {
		if len(a[r]) != len(b[r]) {
			return false
		}
		for c := range a[r] {
			if a[r][c] != b[r][c] {
				return false
			}
		}
	}

	return true
}

// Render draws g one line per row using glyph for each cell.
// Every row, the last included, ends with '\n'.
func Render[T any](g Grid[T], glyph func(T) rune) string {
	var sb strings.Builder
	for _, row := range g {
		for _, v := range row {
			sb.WriteRune(glyph(v))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
