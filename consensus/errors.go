package consensus

import "errors"

var (
	// ErrEmptyBlock indicates a block without rows.
	ErrEmptyBlock = errors.New("consensus: block has no rows")

	// ErrRaggedBlock indicates rows of different rune lengths.
	ErrRaggedBlock = errors.New("consensus: block rows differ in length")
)
