// Package linealign lines up several noisy readings of the same line of text
// (typically OCR output of one herbarium or museum label line) so that a
// single consensus line can be read off column by column.
//
// 🚀 What is in the box?
//
//   - Edit distance: Levenshtein over runes, all-pairs ranking, closest-first order
//   - Unit-cost alignment: every optimal alignment of two lines, tie cap, gap-run filter
//   - Progressive alignment: many lines folded into one gapped block, scored by a
//     substitution table with affine gap penalties
//   - Consensus: column-majority line from an aligned block
//
// Everything is organized in flat subpackages:
//
//	levenshtein/ Distance, DistanceAll, Order
//	align/       Align, Best: unit-cost alignment with full tie enumeration
//	msa/         AlignAll, AlignPair: scored progressive alignment
//	subst/       substitution tables (map and YAML loading, uniform builder)
//	consensus/   Options, Build: column majority over an aligned block
//	matrix/      Grid[T], the flat row-major arena behind every DP
//	cmd/linealign command-line front end
//
// Quick example:
//
//	table, _ := subst.LoadFile("subs.yaml")
//	lines := levenshtein.Reorder([]string{"Johns Island Sta tion", "Johns Isiand Station", "Johns Island Station"})
//	block, _ := msa.AlignAll(lines, table)
//	line, _ := consensus.Build(block, msa.DefaultGap)
//
// All functions are synchronous and pure: each call owns its matrices, tables
// are passed explicitly, and there is no package-level mutable state.
//
//	go get github.com/katalvlaran/linealign
package linealign
