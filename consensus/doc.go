// Package consensus collapses an aligned block into a single line by column
// majority.
//
// A block is what msa.AlignAll returns: rows of equal rune length where the
// gap rune marks positions a fragment skipped. For every column the most
// frequent runes are kept (all of them on a tie) and ordered by a fixed
// preference so the result does not depend on row order:
//
//   - sentence punctuation first ('.' then ',' ':' ';', then other common marks),
//   - letters, then digits, dashes, brackets and quotes, other numerals,
//     connector punctuation, spaces, currency and other symbols, math symbols,
//   - everything else, and the gap rune last of all.
//
// Runes of the same class are ordered by code point.
//
// Build takes the first option of every column and drops gaps:
//
//	consensus.Build([]string{"Mojave", "Moj⋄ve", "MOjave"}, '⋄') // "Mojave"
//
// Options is exposed for callers that want to resolve ties themselves, for
// example against a vocabulary.
package consensus
