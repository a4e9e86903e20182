// SPDX-License-Identifier: MIT

// Package builder turns row-of-element sources into grid.Grid values
// through a short, chainable pipeline.
//
// A Builder wraps a lazy two-level sequence: the outer iter.Seq yields rows,
// each row is an iter.Seq of elements. Combinators wrap the sequence and
// stay lazy; terminals walk it once and allocate the grid.
//
// Combinators:
//
//   - WithPos:  pairs every element with its Pos (element type becomes Cell[T]).
//   - Border:   drops the first/last row and the first/last element of each row.
//   - Find:     scans eagerly for the first match and records its Pos.
//
// Terminals:
//
//   - Map:      per-element transform, shape preserved.
//   - FlatMap:  per-element transform to zero or more values, concatenated per row.
//   - Collect:  identity Map.
//
// Example:
//
//	var start grid.Pos
//	g := builder.Map(
//		builder.FromStrings(lines).Find(&start, func(r rune) bool { return r == 'S' }),
//		func(r rune) bool { return r == '#' },
//	)
//
// Rectangularity of the produced grid is not checked here; call
// grid.Grid.Validate where the source is not trusted.
package builder
