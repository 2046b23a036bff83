// SPDX-License-Identifier: MIT

package msa

import "math"

// DefaultGap is the reserved gap rune, U+22C4 DIAMOND OPERATOR.
const DefaultGap = '⋄'

// Default penalties. Scores grow with similarity, so both are negative:
// opening a gap costs 3, each further gap in the same run costs 0.5.
const (
	DefaultGapOpen = -3.0
	DefaultGapSkew = -0.5
)

const (
	panicGapOpenInvalid = "msa: WithGapOpen: penalty must be finite"
	panicGapSkewInvalid = "msa: WithGapSkew: penalty must be finite"
)

// Option configures AlignAll and AlignPair.
type Option func(*options)

type options struct {
	gap     rune
	gapOpen float64
	gapSkew float64
}

func defaultOptions() options {
	return options{gap: DefaultGap, gapOpen: DefaultGapOpen, gapSkew: DefaultGapSkew}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithGapOpen sets the score added when a gap run starts.
// Panics on NaN or ±Inf (programmer error).
func WithGapOpen(penalty float64) Option {
	if math.IsNaN(penalty) || math.IsInf(penalty, 0) {
		panic(panicGapOpenInvalid)
	}

	return func(o *options) { o.gapOpen = penalty }
}

// WithGapSkew sets the score added for each gap after the first in a run.
// Panics on NaN or ±Inf (programmer error).
func WithGapSkew(penalty float64) Option {
	if math.IsNaN(penalty) || math.IsInf(penalty, 0) {
		panic(panicGapSkewInvalid)
	}

	return func(o *options) { o.gapSkew = penalty }
}

// WithGap sets the gap rune written into the block. It must not occur in any
// input fragment.
func WithGap(r rune) Option {
	return func(o *options) { o.gap = r }
}
