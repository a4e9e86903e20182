// SPDX-License-Identifier: MIT

// Package lvlgrid is a small toolkit for turning puzzle text into 2-D grids
// and walking around on them safely.
//
// 🧭 What is in the box?
//
//   - direction/: Dir offsets, All4 / All8, Left / Right rotations, arrow
//     parsing in both the parsed (text) and the true (narrative) frame
//   - grid/: Grid[T], Pos, PosIter and bounds-checked neighbour arithmetic
//     (AddDir, AddDirN, Get2D, Count2D, Adj) over any [][]T
//   - builder/: lazy row pipeline, WithPos, Border, Find, then Map / FlatMap
//   - parse/: lines, paragraphs, integer extraction, text to builder
//   - gridgraph/: connected regions and cheapest bridges between them
//   - puzzles/: reference puzzle solutions built on the above
//   - cmd/lvlgrid: CLI running the tools on input files
//
// ✨ Typical flow:
//
//	var start grid.Pos
//	g := builder.Map(
//		parse.Map(input).Find(&start, func(r rune) bool { return r == 'S' }),
//		func(r rune) bool { return r == '#' },
//	)
//	for _, p := range g.Adj(start) { ... }
//
// Stepping off the grid through AddDir and friends is reported with a
// comma-ok result; indexing a Grid directly out of range panics.
//
//	go get github.com/katalvlaran/lvlgrid
package lvlgrid
