// SPDX-License-Identifier: MIT

package msa

import (
	"errors"

	"github.com/katalvlaran/linealign/subst"
)

var (
	// ErrEmptyInput indicates that AlignAll received no fragments.
	ErrEmptyInput = errors.New("msa: no sequences to align")

	// ErrNilTable indicates that no substitution table was supplied.
	ErrNilTable = errors.New("msa: substitution table is nil")

	// ErrGapColumn indicates a block column with no ungapped row to score.
	ErrGapColumn = errors.New("msa: block column is all gaps")

	// ErrInvalidUTF8 indicates that a fragment is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("msa: sequence is not valid UTF-8")

	// ErrGapInInput indicates that a fragment contains the gap rune.
	ErrGapInInput = errors.New("msa: sequence contains the gap rune")

	// ErrMissingEntry is subst.ErrMissingEntry, re-exported for callers that
	// only import msa.
	ErrMissingEntry = subst.ErrMissingEntry
)
