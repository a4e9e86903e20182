// SPDX-License-Identifier: MIT

package direction

import (
	"errors"
	"fmt"
)

// ErrNotOrthogonal indicates a Dir that is not one of the four unit orthogonal steps.
var ErrNotOrthogonal = errors.New("direction: not an orthogonal unit direction")

// Dir is a signed single-step offset: R is the row delta, C the column delta.
type Dir struct {
	R, C int8
}

// Orthogonal unit steps in the parsed (text) frame.
var (
	East  = Dir{0, 1}
	South = Dir{1, 0}
	West  = Dir{0, -1}
	North = Dir{-1, 0}
)

// NorthParsed is north when rows grow southward and columns grow eastward,
// i.e. the frame of raw text input.
var NorthParsed = North

// NorthTrue is north for puzzles whose narrative frame maps north onto a
// column increase.
var NorthTrue = Dir{0, 1}

// All4 holds the orthogonal directions in index order.
var All4 = [4]Dir{East, South, West, North}

// All8 holds all eight neighbours, diagonals included.
var All8 = [8]Dir{
	{1, 1},
	{1, 0},
	{1, -1},
	{0, 1},
	{0, -1},
	{-1, 1},
	{-1, 0},
	{-1, -1},
}

// Left returns d rotated 90° counter-clockwise.
// Complexity: O(1).
func (d Dir) Left() Dir {
	return Dir{R: -d.C, C: d.R}
}

// Right returns d rotated 90° clockwise.
// Complexity: O(1).
func (d Dir) Right() Dir {
	return Dir{R: d.C, C: -d.R}
}

// TurnLeft rotates d in place.
func (d *Dir) TurnLeft() {
	*d = d.Left()
}

// TurnRight rotates d in place.
func (d *Dir) TurnRight() {
	*d = d.Right()
}

// Neg returns the opposite direction.
func (d Dir) Neg() Dir {
	return Dir{R: -d.R, C: -d.C}
}

// IsZero reports whether d is the null offset.
func (d Dir) IsZero() bool {
	return d.R == 0 && d.C == 0
}

// Lookup returns the slot of d within All4.
// ok is false if d is not an orthogonal unit step.
// Complexity: O(1).
func (d Dir) Lookup() (idx int, ok bool) {
	for i, o := range All4 {
		if o == d {
			return i, true
		}
	}

	return 0, false
}

// Index returns the slot of d within All4, for use as a dense per-direction
// array index (e.g. a [4]bool visited set).
// It panics with ErrNotOrthogonal if d is not in All4; use Lookup when the
// input is not trusted.
func (d Dir) Index() int {
	i, ok := d.Lookup()
	if !ok {
		panic(fmt.Errorf("Dir.Index(%v): %w", d, ErrNotOrthogonal))
	}

	return i
}

// String implements fmt.Stringer.
func (d Dir) String() string {
	return fmt.Sprintf("(%d,%d)", d.R, d.C)
}
