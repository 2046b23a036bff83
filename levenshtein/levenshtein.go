package levenshtein

import agnivade "github.com/agnivade/levenshtein"

// Distance returns the Levenshtein distance between a and b counted in runes.
//
// Example:
//
//	levenshtein.Distance("abcd", "a.cd") // 1
func Distance(a, b string) int {
	return agnivade.ComputeDistance(a, b)
}

// DistanceRunes is Distance over already-decoded rune slices, for callers
// such as DistanceAll that decode each sequence once and compare it many
// times. The inputs are only read, never modified.
//
// Algorithm Outline:
//  1. Keep b as the shorter sequence so the row buffer is O(min(n,m)).
//  2. row[j] holds the cost of turning a[:i] into b[:j]; row starts as 0..m.
//  3. For each a[i-1], walk j left to right carrying the diagonal
//     predecessor in a scalar:
//     row[j] = min(row[j]+1, row[j-1]+1, diag + (a[i-1] != b[j-1]))
//  4. The answer is row[m].
func DistanceRunes(a, b []rune) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	m := len(b)
	if m == 0 {
		return len(a)
	}

	row := make([]int, m+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(a); i++ {
		diag := row[0] // cost(a[:i-1], b[:0])
		row[0] = i
		for j := 1; j <= m; j++ {
			sub := diag
			if a[i-1] != b[j-1] {
				sub++
			}
			diag = row[j] // save before overwrite: becomes next diagonal
			row[j] = min(row[j]+1, row[j-1]+1, sub)
		}
	}

	return row[m]
}
