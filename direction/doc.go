// SPDX-License-Identifier: MIT

// Package direction defines single-step offsets on a 2-D grid and the
// rotation algebra over them.
//
// What:
//
//   - Dir is a signed (Δrow, Δcol) offset, usually drawn from {-1,0,1}².
//   - All4 lists the orthogonal directions in a fixed order: E, S, W, N.
//     The order is stable; Dir.Index uses it as a dense slot number.
//   - All8 adds the diagonals.
//   - Left and Right rotate by exactly 90°.
//
// Coordinate conventions:
//
// Text input is indexed with rows growing southward and columns growing
// eastward. NorthParsed describes "north" in that frame. Some puzzles state
// their moves in a frame where north is a column increase; NorthTrue
// describes that one. Pick the constant that matches the puzzle text:
//
//	d, _ := direction.Parsed('^') // (-1, 0)
//	d, _ = direction.True('^')    // (0, 1)
//
// Errors:
//
//   - ErrNotOrthogonal: Index called on a value outside All4.
package direction
