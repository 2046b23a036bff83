package subst

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingEntry indicates that a rune pair has no score in the table.
	// Lookups surface it as *MissingEntryError, which names both runes.
	ErrMissingEntry = errors.New("subst: missing substitution entry")

	// ErrBadKey indicates that a map key is not exactly two runes.
	ErrBadKey = errors.New("subst: key must be exactly two characters")

	// ErrConflictingEntry indicates that "ab" and "ba" were given different scores.
	ErrConflictingEntry = errors.New("subst: conflicting scores for symmetric pair")

	// ErrBadScore indicates a NaN or infinite score.
	ErrBadScore = errors.New("subst: score must be finite")
)

// MissingEntryError reports the pair that was not found. It matches
// ErrMissingEntry under errors.Is.
type MissingEntryError struct {
	A, B rune
}

// Error names both characters so the caller can repair the table.
func (e *MissingEntryError) Error() string {
	return fmt.Sprintf("subst: missing substitution entry for %q and %q", e.A, e.B)
}

// Unwrap exposes the ErrMissingEntry sentinel.
func (e *MissingEntryError) Unwrap() error { return ErrMissingEntry }
