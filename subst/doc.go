// Package subst holds character-substitution tables: scores for aligning one
// rune against another, keyed by an unordered rune pair.
//
// Tables are always supplied by the caller. There is no built-in table and
// no package-level state, so independent alignments with different scoring
// can run concurrently. A Table is safe for concurrent readers once built.
//
// Sources:
//   - FromMap:   {"ab": -1.0, ...} where each key is exactly two runes.
//   - ParseYAML: a document with a top-level `substitutions:` mapping of the
//     same shape (see LoadFile).
//   - Uniform:   a complete match/mismatch table over an alphabet.
//
// Symmetry is assumed: "ab" and "ba" name the same entry, so only one of them
// needs to be given. Giving both with different scores is an error.
package subst
