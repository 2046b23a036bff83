package align

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/linealign/matrix"
)

// move is a bit set of the DP moves that reach a cell's minimum.
type move uint8

const (
	moveDiag move = 1 << iota
	moveUp
	moveLeft
)

// cell is one entry of the unit-cost matrix.
type cell struct {
	cost  int
	moves move
}

// Align returns every minimum-cost unit edit alignment of a and b.
//
// Errors:
//   - ErrInvalidUTF8 when a or b is not valid UTF-8.
//   - ErrGapInInput when a or b contains the gap rune.
func Align(a, b string, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ra, err := decode("a", a, o.gap)
	if err != nil {
		return Result{}, err
	}
	rb, err := decode("b", b, o.gap)
	if err != nil {
		return Result{}, err
	}

	g, err := fill(ra, rb)
	if err != nil {
		return Result{}, err
	}

	res := traceback(g, ra, rb, o)

	return res, nil
}

// decode converts s to runes after validating it.
func decode(name, s string, gap rune) ([]rune, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%s: %w", name, ErrInvalidUTF8)
	}
	if strings.ContainsRune(s, gap) {
		return nil, fmt.Errorf("%s: %q: %w", name, gap, ErrGapInInput)
	}

	return []rune(s), nil
}

// fill builds the cost matrix, recording every minimising move per cell.
func fill(a, b []rune) (*matrix.Grid[cell], error) {
	rows, cols := len(a)+1, len(b)+1
	g, err := matrix.NewGrid[cell](rows, cols)
	if err != nil {
		return nil, err
	}

	for r := 1; r < rows; r++ {
		*g.Ref(r, 0) = cell{cost: r, moves: moveUp}
	}
	for c := 1; c < cols; c++ {
		*g.Ref(0, c) = cell{cost: c, moves: moveLeft}
	}

	for r := 1; r < rows; r++ {
		for c := 1; c < cols; c++ {
			up := g.Ref(r-1, c).cost + 1
			left := g.Ref(r, c-1).cost + 1
			diag := g.Ref(r-1, c-1).cost
			if a[r-1] != b[c-1] {
				diag++
			}

			best := min(up, left, diag)
			var moves move
			if diag == best {
				moves |= moveDiag
			}
			if up == best {
				moves |= moveUp
			}
			if left == best {
				moves |= moveLeft
			}
			*g.Ref(r, c) = cell{cost: best, moves: moves}
		}
	}

	return g, nil
}
