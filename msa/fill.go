// SPDX-License-Identifier: MIT

package msa

import (
	"fmt"

	"github.com/katalvlaran/linealign/matrix"
	"github.com/katalvlaran/linealign/subst"
)

// fill scores the (W+1)×(L+1) matrix for folding s into block.
//
// Implementation:
//   - Stage 1: borders. Column 0 (gaps in s) and row 0 (gaps in the block)
//     both run gapOpen, gapOpen+gapSkew, ...; val, up and left all carry the
//     border score so interior recurrences need no special case.
//   - Stage 2: interior, row-major. Each cell reads its three finished
//     neighbours, so one pass suffices.
//
// Errors:
//   - *subst.MissingEntryError or ErrGapColumn from columnScore; the matrix is
//     discarded and nothing partial is returned.
func fill(block [][]rune, s []rune, table *subst.Table, o options) (*matrix.Grid[cell], error) {
	rows, cols := len(block[0])+1, len(s)+1
	g, err := matrix.NewGrid[cell](rows, cols)
	if err != nil {
		return nil, err
	}

	penalty := o.gapOpen
	for r := 1; r < rows; r++ {
		*g.Ref(r, 0) = cell{val: penalty, up: penalty, left: penalty, dir: dirUp}
		penalty += o.gapSkew
	}
	penalty = o.gapOpen
	for c := 1; c < cols; c++ {
		*g.Ref(0, c) = cell{val: penalty, up: penalty, left: penalty, dir: dirLeft}
		penalty += o.gapSkew
	}

	for r := 1; r < rows; r++ {
		for c := 1; c < cols; c++ {
			score, err := columnScore(block, r-1, s[c-1], table, o.gap)
			if err != nil {
				return nil, err
			}

			above := g.Ref(r-1, c)
			beside := g.Ref(r, c-1)
			corner := g.Ref(r-1, c-1)
			cur := g.Ref(r, c)

			cur.up = max(above.up+o.gapSkew, above.val+o.gapOpen)
			cur.left = max(beside.left+o.gapSkew, beside.val+o.gapOpen)
			diag := corner.val + score

			// max returns one of its operands bit for bit, so the equality
			// tests below are exact and the precedence is diag > up > left.
			cur.val = max(diag, cur.up, cur.left)
			switch cur.val {
			case diag:
				cur.dir = dirDiag
			case cur.up:
				cur.dir = dirUp
			default:
				cur.dir = dirLeft
			}
		}
	}

	return g, nil
}

// columnScore is the best table score of ch against any ungapped rune in
// block column col.
func columnScore(block [][]rune, col int, ch rune, table *subst.Table, gap rune) (float64, error) {
	var best float64
	found := false
	for _, row := range block {
		x := row[col]
		if x == gap {
			continue
		}
		s, err := table.Score(x, ch)
		if err != nil {
			return 0, err
		}
		if !found || s > best {
			best, found = s, true
		}
	}
	if !found {
		return 0, fmt.Errorf("column %d: %w", col, ErrGapColumn)
	}

	return best, nil
}
