// SPDX-License-Identifier: MIT

// Package parse holds the small text helpers that feed puzzle input into the
// grid pipeline: line and paragraph splitting, integer extraction and the
// text-to-builder entry point Map.
//
// Line endings are normalized, so "\r\n" input behaves like "\n" input.
package parse
