// SPDX-License-Identifier: MIT

// Package rolls solves the paper-roll forklift puzzle: a map of '@' rolls
// where a roll is reachable when fewer than four of its eight neighbours
// are also rolls.
package rolls

import (
	"github.com/katalvlaran/lvlgrid/builder"
	"github.com/katalvlaran/lvlgrid/direction"
	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/parse"
)

// Roll marks an occupied cell in the input.
const Roll = '@'

// crowded is the neighbour count at which a roll can no longer be reached.
const crowded = 4

// Parse reads the puzzle map; true cells hold a roll.
func Parse(input string) grid.Grid[bool] {
	return builder.Map(parse.Map(input), func(r rune) bool { return r == Roll })
}

// neighbours counts the rolls around p.
func neighbours(g grid.Grid[bool], p grid.Pos) int {
	n := 0
	for _, d := range direction.All8 {
		if v, ok := g.Get2D(p, d); ok && v {
			n++
		}
	}

	return n
}

// Accessible counts the rolls with fewer than four neighbouring rolls.
func Accessible(g grid.Grid[bool]) int {
	n := 0
	for p := range g.Positions().All() {
		if g.At(p) && neighbours(g, p) < crowded {
			n++
		}
	}

	return n
}

// RemoveAll repeatedly takes away every accessible roll until none is left
// and returns how many were removed. g is modified in place.
func RemoveAll(g grid.Grid[bool]) int {
	removed := 0
	for changed := true; changed; {
		changed = false
		for p := range g.Positions().All() {
			if g.At(p) && neighbours(g, p) < crowded {
				g.Set(p, false)
				removed++
				changed = true
			}
		}
	}

	return removed
}
