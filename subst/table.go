package subst

import (
	"fmt"
	"math"
	"sort"
)

// Pair is a canonical, unordered rune pair: A <= B always holds.
type Pair struct {
	A, B rune
}

// MakePair canonicalises (a, b) by sorting the two runes.
func MakePair(a, b rune) Pair {
	if b < a {
		a, b = b, a
	}

	return Pair{A: a, B: b}
}

// String renders the pair as its two-character key, e.g. "ab".
func (p Pair) String() string { return string([]rune{p.A, p.B}) }

// Table maps canonical rune pairs to substitution scores. Higher is better.
type Table struct {
	scores map[Pair]float64
}

// New returns an empty table.
func New() *Table {
	return &Table{scores: make(map[Pair]float64)}
}

// Set stores score for the unordered pair (a, b), replacing any previous value.
func (t *Table) Set(a, b rune, score float64) {
	t.scores[MakePair(a, b)] = score
}

// Lookup returns the score for (a, b) in either order.
func (t *Table) Lookup(a, b rune) (float64, bool) {
	s, ok := t.scores[MakePair(a, b)]

	return s, ok
}

// Score is Lookup that reports a miss as *MissingEntryError.
func (t *Table) Score(a, b rune) (float64, error) {
	s, ok := t.scores[MakePair(a, b)]
	if !ok {
		return 0, &MissingEntryError{A: a, B: b}
	}

	return s, nil
}

// Len returns the number of distinct canonical pairs.
func (t *Table) Len() int { return len(t.scores) }

// Pairs returns every stored pair in ascending (A, B) order.
func (t *Table) Pairs() []Pair {
	pairs := make([]Pair, 0, len(t.scores))
	for p := range t.scores {
		pairs = append(pairs, p)
	}
	sortPairs(pairs)

	return pairs
}

// Covers returns the pairs over alphabet that have no score, in ascending
// order. An empty result means every alignment over alphabet can be scored.
func (t *Table) Covers(alphabet []rune) []Pair {
	seen := make(map[rune]struct{}, len(alphabet))
	uniq := make([]rune, 0, len(alphabet))
	for _, r := range alphabet {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		uniq = append(uniq, r)
	}

	var missing []Pair
	for i, a := range uniq {
		for _, b := range uniq[i:] {
			if _, ok := t.scores[MakePair(a, b)]; !ok {
				missing = append(missing, MakePair(a, b))
			}
		}
	}
	sortPairs(missing)

	return missing
}

// FromMap builds a table from two-character keys such as "ab".
//
// Errors:
//   - ErrBadKey when a key is not exactly two runes.
//   - ErrBadScore for NaN or infinite scores.
//   - ErrConflictingEntry when "ab" and "ba" disagree.
func FromMap(m map[string]float64) (*Table, error) {
	t := New()

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys) // deterministic error reporting

	for _, k := range keys {
		score := m[k]
		rs := []rune(k)
		if len(rs) != 2 {
			return nil, fmt.Errorf("%q: %w", k, ErrBadKey)
		}
		if math.IsNaN(score) || math.IsInf(score, 0) {
			return nil, fmt.Errorf("%q: %w", k, ErrBadScore)
		}
		if prev, ok := t.Lookup(rs[0], rs[1]); ok && prev != score {
			return nil, fmt.Errorf("%q: %v vs %v: %w", k, prev, score, ErrConflictingEntry)
		}
		t.Set(rs[0], rs[1], score)
	}

	return t, nil
}

// Uniform builds a complete table over the runes of alphabet: match for a
// rune against itself, mismatch for any two different runes.
func Uniform(alphabet string, match, mismatch float64) *Table {
	t := New()
	rs := []rune(alphabet)
	for i, a := range rs {
		for _, b := range rs[i:] {
			if a == b {
				t.Set(a, b, match)
			} else {
				t.Set(a, b, mismatch)
			}
		}
	}

	return t
}

func sortPairs(pairs []Pair) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}

		return pairs[i].B < pairs[j].B
	})
}
