// SPDX-License-Identifier: MIT

package direction

// Arrow runes understood by Parsed and True.
const (
	ArrowUp    = '^'
	ArrowRight = '>'
	ArrowDown  = 'v'
	ArrowLeft  = '<'
)

// fromArrow maps an arrow rune onto the frame whose north is given.
func fromArrow(north Dir, r rune) (Dir, bool) {
	switch r {
	case ArrowUp:
		return north, true
	case ArrowRight:
		return north.Right(), true
	case ArrowLeft:
		return north.Left(), true
	case ArrowDown:
		return north.Left().Left(), true
	}

	return Dir{}, false
}

// Parsed converts an arrow rune to a Dir in the text frame (NorthParsed).
// ok is false for any rune other than ^ > v <.
func Parsed(r rune) (Dir, bool) {
	return fromArrow(NorthParsed, r)
}

// True converts an arrow rune to a Dir in the narrative frame (NorthTrue).
// ok is false for any rune other than ^ > v <.
func True(r rune) (Dir, bool) {
	return fromArrow(NorthTrue, r)
}

// ParseAll converts every arrow rune in s using conv, skipping the rest
// (line breaks in wrapped move lists, for instance).
// Complexity: O(len(s)).
func ParseAll(s string, conv func(rune) (Dir, bool)) []Dir {
	out := make([]Dir, 0, len(s))
	for _, r := range s {
		if d, ok := conv(r); ok {
			out = append(out, d)
		}
	}

	return out
}
