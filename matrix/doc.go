// SPDX-License-Identifier: MIT

// Package matrix provides the flat, row-major storage every dynamic program
// in linealign runs on.
//
// Grid[T] keeps an r×c table in one contiguous slice (offset = i*c + j), so a
// DP step allocates exactly once and its traceback walks plain indices instead
// of nested slices. The public accessors At/Set are bounds-checked and return
// sentinel errors; hot loops inside this module use Ref (panics on bad
// coordinates) and Index (no checks) after validating shape once.
//
// Grids are not safe for concurrent mutation. Each alignment step owns its own
// grid and drops it once the traceback completes.
//
// Complexity quicksheet:
//   - NewGrid: O(r*c) zero-init; At/Set/Ref: O(1).
package matrix
