// SPDX-License-Identifier: MIT

// Package msa builds a multiple alignment of near-duplicate text fragments by
// progressive folding: the first fragment is the initial block, and every
// further fragment is aligned against the whole block (treated as a profile of
// k rows) and merged into it.
//
// What it produces:
//
//	AlignAll([]string{"aba", "aa"}, table) // ["aba", "a⋄a"]
//
//	Every output row has the same rune length and removing the gap rune
//	(DefaultGap, U+22C4) from row k gives back input k exactly. Rows are
//	parallel to the input order.
//
// Scoring (higher is better, penalties are negative):
//
//	For block width W and new fragment s of length L, one (W+1)×(L+1) matrix of
//	cells is filled. Row 0 and column 0 hold gapOpen, gapOpen+gapSkew, ...;
//	an interior cell keeps
//	  up   = max(up(r-1,c)   + skew, val(r-1,c)   + open)   gap in s
//	  left = max(left(r,c-1) + skew, val(r,c-1)   + open)   gap in the block
//	  diag = val(r-1,c-1) + max_k table(block_k[r-1], s[c-1]) over ungapped rows
//	  val  = max(diag, up, left), direction diag > up > left on exact ties.
//	The traceback follows the one stored direction per cell from (W,L) to (0,0).
//
// Errors:
//   - ErrEmptyInput: no fragments were given.
//   - ErrNilTable: no substitution table was given.
//   - subst.ErrMissingEntry: a rune pair is not scored; errors.As yields
//     *subst.MissingEntryError naming both runes. There is no partial result.
//   - ErrInvalidUTF8, ErrGapInInput: a fragment cannot be aligned faithfully.
//
// Complexity:
//   - One fold step: Time O(W·L·k), Memory O(W·L).
//   - Whole block:   Time O(Σ Lᵢ·Wᵢ·i); intended for fragments of tens of runes.
package msa
