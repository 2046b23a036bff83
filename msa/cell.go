// SPDX-License-Identifier: MIT

package msa

// direction is the single move stored per cell for the traceback.
type direction uint8

const (
	dirNone direction = iota // origin only
	dirDiag                  // block column against a rune of s
	dirUp                    // block column against a gap in s
	dirLeft                  // gap in every block row against a rune of s
)

func (d direction) String() string {
	switch d {
	case dirDiag:
		return "diag"
	case dirUp:
		return "up"
	case dirLeft:
		return "left"
	default:
		return "none"
	}
}

// cell holds the running scores of one DP position.
//   - val:  best score reaching this cell by any move.
//   - up:   best score ending in a gap in the new sequence.
//   - left: best score ending in a gap in every block row.
type cell struct {
	val  float64
	up   float64
	left float64
	dir  direction
}
