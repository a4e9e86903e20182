// SPDX-License-Identifier: MIT

package parse

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlgrid/builder"
)

// normalize turns CRLF line endings into LF.
func normalize(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// Lines splits s into lines. A trailing newline does not produce an empty
// final line; an empty input yields no lines.
func Lines(s string) []string {
	s = strings.TrimSuffix(normalize(s), "\n")
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}

// Paras splits s into blank-line separated paragraphs, each without its
// trailing newline.
func Paras(s string) []string {
	parts := strings.Split(normalize(s), "\n\n")
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\n")
	}

	return parts
}

// Map starts a grid pipeline over s: one row per line, one rune per cell.
func Map(s string) *builder.Builder[rune] {
	return builder.FromStrings(Lines(s))
}

// Ints extracts every signed decimal integer from s. A '-' directly before
// digits is a sign; runs that do not parse (a bare "-", overflow) are skipped.
func Ints(s string) []int64 {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !isDigit(r) && r != '-'
	})
	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		// "12-3" splits into 12 and -3
		for _, tok := range splitSigns(f) {
			if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
				out = append(out, n)
			}
		}
	}

	return out
}

// splitSigns cuts a run of digits and '-' before every '-'.
func splitSigns(f string) []string {
	var toks []string
	start := 0
	for i := 1; i < len(f); i++ {
		if f[i] == '-' {
			toks = append(toks, f[start:i])
			start = i
		}
	}

	return append(toks, f[start:])
}

// Uints extracts every unsigned decimal integer from s; '-' is a separator.
func Uints(s string) []uint64 {
	fields := strings.FieldsFunc(s, func(r rune) bool { return !isDigit(r) })
	out := make([]uint64, 0, len(fields))
	for _, f := range fields {
		if n, err := strconv.ParseUint(f, 10, 64); err == nil {
			out = append(out, n)
		}
	}

	return out
}

// SplitOnce splits s around the first sep.
func SplitOnce(s, sep string) (before, after string, ok bool) {
	return strings.Cut(s, sep)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// Digit returns the value of an ASCII decimal digit, or -1 for any other rune.
func Digit(r rune) int {
	if r < '0' || r > '9' {
		return -1
	}

	return int(r - '0')
}
