// SPDX-License-Identifier: MIT

package msa

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/linealign/subst"
)

// AlignAll folds seqs, in the given order, into one aligned block.
//
// Implementation:
//   - Stage 1: validate (ErrEmptyInput before any allocation, then table,
//     UTF-8 and gap-rune checks for every fragment).
//   - Stage 2: the block starts as seqs[0]; each following fragment is
//     aligned against the block (fill) and merged in (traceback).
//   - Stage 3: render rows back to strings.
//
// A single fragment comes back unchanged as a one-row block. Inputs are never
// modified; each step owns its matrix and drops it after the traceback.
//
// Example:
//
//	table, _ := subst.FromMap(map[string]float64{"aa": 0, "ab": -1, "bb": 0})
//	block, err := msa.AlignAll([]string{"aab", "aa"}, table,
//		msa.WithGapOpen(-1), msa.WithGapSkew(-1))
//	// block == ["aab", "aa⋄"]
func AlignAll(seqs []string, table *subst.Table, opts ...Option) ([]string, error) {
	if len(seqs) == 0 {
		return nil, ErrEmptyInput
	}
	if table == nil {
		return nil, ErrNilTable
	}
	o := gatherOptions(opts)

	runes := make([][]rune, len(seqs))
	for i, s := range seqs {
		rs, err := decode(i, s, o.gap)
		if err != nil {
			return nil, err
		}
		runes[i] = rs
	}

	block := [][]rune{runes[0]}
	for i := 1; i < len(runes); i++ {
		next, err := fold(block, runes[i], table, o)
		if err != nil {
			return nil, fmt.Errorf("msa: sequence %d: %w", i, err)
		}
		block = next
	}

	out := make([]string, len(block))
	for i, row := range block {
		out[i] = string(row)
	}

	return out, nil
}

// AlignPair is AlignAll for exactly two fragments: the scored pairwise
// alignment of a against b.
func AlignPair(a, b string, table *subst.Table, opts ...Option) (string, string, error) {
	block, err := AlignAll([]string{a, b}, table, opts...)
	if err != nil {
		return "", "", err
	}

	return block[0], block[1], nil
}

// fold aligns s against block and returns the widened block.
func fold(block [][]rune, s []rune, table *subst.Table, o options) ([][]rune, error) {
	g, err := fill(block, s, table, o)
	if err != nil {
		return nil, err
	}

	return traceback(g, block, s, o.gap), nil
}

// decode validates fragment i and converts it to runes.
func decode(i int, s string, gap rune) ([]rune, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("msa: sequence %d: %w", i, ErrInvalidUTF8)
	}
	if strings.ContainsRune(s, gap) {
		return nil, fmt.Errorf("msa: sequence %d: %q: %w", i, gap, ErrGapInInput)
	}

	return []rune(s), nil
}
