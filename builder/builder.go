// SPDX-License-Identifier: MIT
// Package: lvlgrid/builder
//
// builder.go - sources, combinators and terminals of the grid pipeline.
//
// Contract:
//   - Combinators never consume the source except Border and Find, which
//     must see a whole row (or the whole grid) before yielding.
//   - Terminals walk rows in order and allocate exactly one grid.
//   - Find leaves its output untouched when nothing matches.
//
// Complexity:
//   - WithPos, From*: O(1) to build, O(R×C) when consumed.
//   - Border, Find, Map, FlatMap: O(R×C).

package builder

import (
	"iter"
	"slices"

	"github.com/katalvlaran/lvlgrid/grid"
)

// Builder holds a lazy outer sequence of lazy rows.
type Builder[T any] struct {
	rows iter.Seq[iter.Seq[T]]
}

// Cell is an element paired with its coordinate, produced by WithPos.
type Cell[T any] struct {
	Value T
	Pos   grid.Pos
}

// From wraps an existing two-level sequence.
func From[T any](rows iter.Seq[iter.Seq[T]]) *Builder[T] {
	return &Builder[T]{rows: rows}
}

// FromRows wraps materialized rows. The rows are read, never modified.
func FromRows[T any](rows [][]T) *Builder[T] {
	return From(func(yield func(iter.Seq[T]) bool) {
		for _, row := range rows {
			if !yield(slices.Values(row)) {
				return
			}
		}
	})
}

// FromStrings yields one row per line and one element per rune.
func FromStrings(lines []string) *Builder[rune] {
	return From(func(yield func(iter.Seq[rune]) bool) {
		for _, line := range lines {
			if !yield(runes(line)) {
				return
			}
		}
	})
}

func runes(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}

// Rows exposes the underlying sequence.
func (b *Builder[T]) Rows() iter.Seq[iter.Seq[T]] {
	return b.rows
}

// WithPos pairs each element with its (row, col). Lazy.
func WithPos[T any](b *Builder[T]) *Builder[Cell[T]] {
	return From(func(yield func(iter.Seq[Cell[T]]) bool) {
		r := 0
		for row := range b.rows {
			rowIdx := r
			cells := func(y func(Cell[T]) bool) {
				c := 0
				for v := range row {
					if !y(Cell[T]{Value: v, Pos: grid.Pos{Row: rowIdx, Col: c}}) {
						return
					}
					c++
				}
			}
			if !yield(cells) {
				return
			}
			r++
		}
	})
}

// Border drops the outer ring: the first and last row, and the first and
// last element of every remaining row. Rows or grids shorter than 2 become
// empty rather than failing.
// The outer sequence is collected immediately; each row is collected when
// it is reached.
func (b *Builder[T]) Border() *Builder[T] {
	outer := slices.Collect(b.rows)
	outer = trimEnds(outer)

	return From(func(yield func(iter.Seq[T]) bool) {
		for _, row := range outer {
			inner := func(y func(T) bool) {
				for _, v := range trimEnds(slices.Collect(row)) {
					if !y(v) {
						return
					}
				}
			}
			if !yield(inner) {
				return
			}
		}
	})
}

// trimEnds drops the last then the first element; each drop is a no-op on
// an empty slice.
func trimEnds[E any](s []E) []E {
	if len(s) > 0 {
		s = s[:len(s)-1]
	}
	if len(s) > 0 {
		s = s[1:]
	}

	return s
}

// Find scans every element in row-major order and writes the position of
// the first one satisfying pred into *out. If nothing matches, *out is left
// as it was: pre-seed it with a sentinel when "not found" must differ from
// a real position. The returned builder replays every element of the source.
// Complexity: O(R×C) time and memory (the source is materialized).
func (b *Builder[T]) Find(out *grid.Pos, pred func(T) bool) *Builder[T] {
	p, ok, next := b.FindPos(pred)
	if ok {
		*out = p
	}

	return next
}

// FindPos is Find with explicit absence: ok reports whether a match exists.
// pred is not called again after the first match.
func (b *Builder[T]) FindPos(pred func(T) bool) (grid.Pos, bool, *Builder[T]) {
	rows := materialize(b.rows)
	for r, row := range rows {
		for c, v := range row {
			if pred(v) {
				return grid.Pos{Row: r, Col: c}, true, FromRows(rows)
			}
		}
	}

	return grid.Pos{}, false, FromRows(rows)
}

func materialize[T any](rows iter.Seq[iter.Seq[T]]) [][]T {
	out := [][]T{}
	for row := range rows {
		out = append(out, slices.Collect(row))
	}

	return out
}

// Map applies f to every element and materializes the result, keeping the
// row/column structure exactly.
func Map[T, U any](b *Builder[T], f func(T) U) grid.Grid[U] {
	g := grid.Grid[U]{}
	for row := range b.rows {
		line := []U{}
		for v := range row {
			line = append(line, f(v))
		}
		g = append(g, line)
	}

	return g
}

// FlatMap applies f to every element and concatenates the outputs within
// each row. Output rows may differ in length from their input rows and from
// each other; keeping the result rectangular is up to f.
func FlatMap[T, U any](b *Builder[T], f func(T) []U) grid.Grid[U] {
	g := grid.Grid[U]{}
	for row := range b.rows {
		line := []U{}
		for v := range row {
			line = append(line, f(v)...)
		}
		g = append(g, line)
	}

	return g
}

// Collect materializes b unchanged.
func (b *Builder[T]) Collect() grid.Grid[T] {
	return Map(b, func(v T) T { return v })
}
