// SPDX-License-Identifier: MIT

// Package gridgraph treats a grid.Grid as a graph of cells, enabling
// component analysis and minimal-cost "island" bridging.
//
// What:
//
//   - GridGraph wraps a rectangular grid.Grid[T] and a land predicate.
//   - ConnectedComponents finds contiguous regions of land cells.
//   - ExpandIsland computes the fewest water cells to convert so that two
//     regions touch (0-1 BFS).
//   - Labels paints every cell with its region index.
//
// Why:
//
//   - Puzzle maps: count islands, garden plots, enclosed areas.
//   - Terrain: shortest bridge between two land masses.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)  (d = 4 or 8 neighbours).
//   - ExpandIsland:        O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - Conn4 walks direction.All4; Conn8 walks direction.All8.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
