package levenshtein_test

import (
	"testing"

	"github.com/katalvlaran/linealign/levenshtein"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDistanceAll checks pair enumeration and the stable distance sort.
func TestDistanceAll(t *testing.T) {
	cases := []struct {
		name string
		seqs []string
		want []levenshtein.Entry
	}{
		{"Empty", nil, []levenshtein.Entry{}},
		{"Single", []string{"aa"}, []levenshtein.Entry{}},
		{"Pair", []string{"aa", "bb"}, []levenshtein.Entry{{2, 0, 1}}},
		{"Three", []string{"aa", "bb", "ab"}, []levenshtein.Entry{{1, 0, 2}, {1, 1, 2}, {2, 0, 1}}},
		{"Prefixes", []string{"abc", "abcde", "abcd"}, []levenshtein.Entry{{1, 0, 2}, {1, 1, 2}, {2, 0, 1}}},
		{"AllTied", []string{"cat", "bat", "hat"}, []levenshtein.Entry{{1, 0, 1}, {1, 0, 2}, {1, 1, 2}}},
		{"TwoSubstitutionsLast", []string{"cat", "bat", "cot"}, []levenshtein.Entry{{1, 0, 1}, {1, 0, 2}, {2, 1, 2}}},
		{
			"LabelLines",
			[]string{
				"MOJAVE DESERT, PROVIDENCE MTS.: canyon above",
				"E. MOJAVE DESERT , PROVIDENCE MTS . : canyon above",
				"E MOJAVE DESERT PROVTDENCE MTS. # canyon above",
				"Be ‘MOJAVE DESERT, PROVIDENCE canyon “above",
			},
			[]levenshtein.Entry{{6, 0, 1}, {6, 0, 2}, {6, 1, 2}, {11, 0, 3}, {13, 1, 3}, {13, 2, 3}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := levenshtein.DistanceAll(tc.seqs)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestDistanceAll_SortedAndStable verifies ordering invariants on a larger input.
func TestDistanceAll_SortedAndStable(t *testing.T) {
	seqs := []string{"Station on", "Sta tion on", "Station or", "Stati on on", "tion", "Johns"}
	got := levenshtein.DistanceAll(seqs)
	require.Len(t, got, len(seqs)*(len(seqs)-1)/2)

	for k, e := range got {
		assert.Less(t, e.I, e.J, "entry %d must have I<J", k)
		assert.Equal(t, levenshtein.Distance(seqs[e.I], seqs[e.J]), e.Distance)
		if k == 0 {
			continue
		}
		prev := got[k-1]
		require.LessOrEqual(t, prev.Distance, e.Distance, "non-decreasing distance")
		if prev.Distance == e.Distance {
			before := prev.I < e.I || (prev.I == e.I && prev.J < e.J)
			assert.True(t, before, "ties keep (i,j) enumeration order: %v then %v", prev, e)
		}
	}
}

// TestOrder checks the closest-first presentation order.
func TestOrder(t *testing.T) {
	assert.Equal(t, []int{}, levenshtein.Order(nil))
	assert.Equal(t, []int{0}, levenshtein.Order([]string{"x"}))
	assert.Equal(t, []int{0, 1}, levenshtein.Order([]string{"far away", "x"}))

	// entries: (1,0,2) (1,1,2) (2,0,1) -> seed 0,2 then 1 joins through 2
	assert.Equal(t, []int{0, 2, 1}, levenshtein.Order([]string{"aa", "bb", "ab"}))

	seqs := []string{"Station or", "Johns Island Sta tion on", " Johns Island Stati on on", "Johns Island Station on i"}
	order := levenshtein.Order(seqs)
	require.Len(t, order, len(seqs))
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, order, "every index exactly once")
	assert.NotEqual(t, 0, order[0], "the short outlier is not the seed")
}

// TestReorder returns strings in Order.
func TestReorder(t *testing.T) {
	got := levenshtein.Reorder([]string{"aa", "bb", "ab"})
	assert.Equal(t, []string{"aa", "ab", "bb"}, got)
}
