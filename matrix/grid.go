// SPDX-License-Identifier: MIT

package matrix

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// Grid is a row-major r×c table of T values.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c (offset = i*c + j).
type Grid[T any] struct {
	r, c int
	data []T
}

// NewGrid creates an r×c grid filled with the zero value of T.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate one zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewGrid[T any](rows, cols int) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Grid[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Rows returns the row count.
func (g *Grid[T]) Rows() int { return g.r }

// Cols returns the column count.
func (g *Grid[T]) Cols() int { return g.c }

// Shape packs Rows() and Cols() into a single call.
func (g *Grid[T]) Shape() (rows, cols int) { return g.r, g.c }

// InBounds reports whether (row, col) addresses a cell of g.
func (g *Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.r && col >= 0 && col < g.c
}

// Index computes the flat offset of (row, col) without bounds checks.
// Callers must have validated the coordinates (or the loop bounds) already.
func (g *Grid[T]) Index(row, col int) int { return row*g.c + col }

// At returns the value at (row, col) or a wrapped ErrOutOfRange.
// Complexity: O(1).
func (g *Grid[T]) At(row, col int) (T, error) {
	var zero T
	if !g.InBounds(row, col) {
		return zero, gridErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return g.data[g.Index(row, col)], nil
}

// Set stores v at (row, col) or returns a wrapped ErrOutOfRange.
// Complexity: O(1).
func (g *Grid[T]) Set(row, col int, v T) error {
	if !g.InBounds(row, col) {
		return gridErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	g.data[g.Index(row, col)] = v

	return nil
}

// Ref returns a pointer to the cell at (row, col) for in-place updates.
// It panics like a slice index on invalid coordinates; DP loops use it only
// inside bounds fixed by the grid shape.
func (g *Grid[T]) Ref(row, col int) *T {
	if !g.InBounds(row, col) {
		panic(gridErrorf("Ref", row, col, ErrOutOfRange))
	}

	return &g.data[g.Index(row, col)]
}
