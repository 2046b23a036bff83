// Package levenshtein computes unit-cost edit distances between text
// fragments and ranks every pair of a collection by distance.
//
// What is it?
//
//	The Levenshtein distance counts the minimum number of single-rune
//	insertions, deletions and substitutions that turn one sequence into
//	another. It is a metric: zero only for identical inputs, symmetric, and
//	it satisfies the triangle inequality.
//
// Key features:
//   - Distance / DistanceRunes: two-row DP (linear memory in the shorter input).
//   - DistanceAll: all unordered pairs, stable-sorted ascending by distance.
//   - Order / Reorder: a closest-first presentation order for progressive
//     alignment, grown from the nearest pair outwards.
//
// Lengths are counted in runes (Unicode code points), not bytes, so "五五"
// and "五六" are one edit apart.
//
// Complexity:
//
//   - Distance:    Time O(n·m), Memory O(min(n,m))
//   - DistanceAll: Time O(k²·n·m) for k sequences, Memory O(k²)
package levenshtein
