package align

import (
	"errors"
	"fmt"
)

// DefaultGap is the rune written into aligned rows where one side has no
// character: U+22C4 DIAMOND OPERATOR, outside any expected label alphabet.
const DefaultGap = '⋄'

// DefaultMaxTies caps how many tied alignments Align enumerates.
const DefaultMaxTies = 1024

var (
	// ErrInvalidUTF8 indicates that an input is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("align: input is not valid UTF-8")

	// ErrGapInInput indicates that an input already contains the gap rune.
	ErrGapInInput = errors.New("align: input contains the gap rune")
)

// Alignment is one optimal alignment. A and B have equal rune length; removing
// the gap rune from them yields the original inputs.
type Alignment struct {
	Cost int
	A, B string
}

// Result is the outcome of Align.
type Result struct {
	// Cost is the edit distance shared by every alignment (path-independent).
	Cost int
	// Alignments lists the optimal alignments in traceback order: at each cell
	// the diagonal move is explored before up, and up before left.
	Alignments []Alignment
	// Truncated is true when enumeration stopped at the tie cap.
	Truncated bool
}

// Option configures Align.
type Option func(*options)

type options struct {
	gap     rune
	maxTies int
}

func defaultOptions() options {
	return options{gap: DefaultGap, maxTies: DefaultMaxTies}
}

// WithGap sets the gap rune written into aligned rows.
func WithGap(r rune) Option {
	return func(o *options) { o.gap = r }
}

// WithMaxTies caps the number of returned alignments. Zero means no cap.
// Panics on a negative value (programmer error).
func WithMaxTies(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("align: WithMaxTies: negative cap %d", n))
	}

	return func(o *options) { o.maxTies = n }
}
