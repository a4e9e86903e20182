// SPDX-License-Identifier: MIT

// Package grid provides a generic rectangular 2-D container and bounds-safe
// neighbour arithmetic over row-indexable data.
//
// What:
//
//   - Grid[T] is a [][]T with rectangular rows, addressed by Pos{Row, Col}.
//   - PosIter enumerates every Pos of an R×C extent in row-major order.
//   - Navigation functions (AddDir, AddDirN, Get2D, Get2DPtr, Count2D, Adj,
//     Positions) work on any [][]T, not only Grid; Grid mirrors them as
//     methods.
//
// Two failure styles coexist on purpose:
//
//   - Navigation is soft: stepping off the grid returns (zero, false).
//   - Direct access (g[r], At, Set, Ptr) is hard: an out-of-range index
//     panics. The intended pattern is "step with AddDir, then index".
//
// Rectangularity is assumed, not re-checked on every access. Use FromRows or
// Grid.Validate where input is not trusted.
//
// Complexity:
//
//   - AddDir, AddDirN (per step), Get2D, At, Set: O(1).
//   - Count2D, Transpose, Clone, full PosIter traversal: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
package grid
