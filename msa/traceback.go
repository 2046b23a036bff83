// SPDX-License-Identifier: MIT

package msa

import "github.com/katalvlaran/linealign/matrix"

// traceback walks the stored directions from (W, L) back to the origin and
// returns the widened block: the k existing rows followed by s. Rows are built
// back to front and flipped once at the end.
func traceback(g *matrix.Grid[cell], block [][]rune, s []rune, gap rune) [][]rune {
	k := len(block)
	rows, cols := g.Shape()

	out := make([][]rune, k+1)
	for i := range out {
		out[i] = make([]rune, 0, rows+cols-2)
	}

	r, c := rows-1, cols-1
	for r > 0 || c > 0 {
		switch g.Ref(r, c).dir {
		case dirDiag:
			for i, row := range block {
				out[i] = append(out[i], row[r-1])
			}
			out[k] = append(out[k], s[c-1])
			r, c = r-1, c-1
		case dirUp:
			for i, row := range block {
				out[i] = append(out[i], row[r-1])
			}
			out[k] = append(out[k], gap)
			r--
		default:
			for i := range block {
				out[i] = append(out[i], gap)
			}
			out[k] = append(out[k], s[c-1])
			c--
		}
	}

	for _, row := range out {
		reverse(row)
	}

	return out
}

func reverse(rs []rune) {
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
}
