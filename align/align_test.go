package align_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/linealign/align"
	"github.com/katalvlaran/linealign/levenshtein"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pairs flattens a Result into (A,B) tuples for compact assertions.
func pairs(res align.Result) [][2]string {
	out := make([][2]string, len(res.Alignments))
	for i, al := range res.Alignments {
		out[i] = [2]string{al.A, al.B}
	}

	return out
}

// TestAlign_TrailingDelete is the reference scenario: one trailing delete.
func TestAlign_TrailingDelete(t *testing.T) {
	res, err := align.Align("ab", "a")
	require.NoError(t, err)

	assert.Equal(t, 1, res.Cost)
	assert.False(t, res.Truncated)
	require.NotEmpty(t, res.Alignments)
	assert.Contains(t, pairs(res), [2]string{"ab", "a⋄"})
	for _, al := range res.Alignments {
		assert.Equal(t, 1, al.Cost)
	}
}

// TestAlign_AllTies verifies every optimal path is returned, diagonal first.
func TestAlign_AllTies(t *testing.T) {
	res, err := align.Align("aa", "a")
	require.NoError(t, err)

	assert.Equal(t, 1, res.Cost)
	assert.Equal(t, [][2]string{{"aa", "⋄a"}, {"aa", "a⋄"}}, pairs(res))
}

// TestAlign_Identical yields a single gap-free alignment of cost 0.
func TestAlign_Identical(t *testing.T) {
	res, err := align.Align("aba", "aba")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Cost)
	assert.Equal(t, [][2]string{{"aba", "aba"}}, pairs(res))
}

// TestAlign_Empty covers degenerate inputs.
func TestAlign_Empty(t *testing.T) {
	res, err := align.Align("", "")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Cost)
	assert.Equal(t, [][2]string{{"", ""}}, pairs(res))

	res, err = align.Align("五六", "")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Cost)
	assert.Equal(t, [][2]string{{"五六", "⋄⋄"}}, pairs(res))

	res, err = align.Align("", "ab")
	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"⋄⋄", "ab"}}, pairs(res))
}

// TestAlign_Invariants checks cost, width and round-trip on assorted inputs.
func TestAlign_Invariants(t *testing.T) {
	inputs := [][2]string{
		{"kitten", "sitting"},
		{"Sta tion on", "Stati on on"},
		{"aab", "baa"},
		{"五aa", "aa五"},
		{"abcabc", "cbacba"},
	}
	for _, in := range inputs {
		res, err := align.Align(in[0], in[1], align.WithMaxTies(0))
		require.NoError(t, err)
		assert.Equal(t, levenshtein.Distance(in[0], in[1]), res.Cost, "cost of %q/%q", in[0], in[1])
		require.NotEmpty(t, res.Alignments)

		seen := make(map[[2]string]bool)
		for _, al := range res.Alignments {
			key := [2]string{al.A, al.B}
			assert.False(t, seen[key], "duplicate alignment %v", key)
			seen[key] = true

			assert.Equal(t, len([]rune(al.A)), len([]rune(al.B)), "equal widths")
			assert.Equal(t, in[0], strings.ReplaceAll(al.A, "⋄", ""))
			assert.Equal(t, in[1], strings.ReplaceAll(al.B, "⋄", ""))
			assert.Equal(t, res.Cost, editCost(al), "path cost of %v", key)
		}
	}
}

// editCost recomputes the unit cost of an alignment column by column.
func editCost(al align.Alignment) int {
	a, b := []rune(al.A), []rune(al.B)
	cost := 0
	for i := range a {
		if a[i] != b[i] {
			cost++
		}
	}

	return cost
}

// TestAlign_MaxTies checks the tie cap and the Truncated flag.
// "aaaa" vs "aa" has C(4,2)=6 optimal alignments.
func TestAlign_MaxTies(t *testing.T) {
	full, err := align.Align("aaaa", "aa", align.WithMaxTies(0))
	require.NoError(t, err)
	assert.Equal(t, 2, full.Cost)
	assert.Len(t, full.Alignments, 6)
	assert.False(t, full.Truncated)
	assert.Equal(t, [2]string{"aaaa", "⋄⋄aa"}, pairs(full)[0], "diagonal explored first from the end")

	capped, err := align.Align("aaaa", "aa", align.WithMaxTies(2))
	require.NoError(t, err)
	assert.Len(t, capped.Alignments, 2)
	assert.True(t, capped.Truncated)
	assert.Equal(t, full.Alignments[:2], capped.Alignments, "cap keeps enumeration order")

	exact, err := align.Align("ab", "a", align.WithMaxTies(1))
	require.NoError(t, err)
	assert.Len(t, exact.Alignments, 1)
	assert.False(t, exact.Truncated, "nothing left to enumerate")

	assert.Panics(t, func() { align.WithMaxTies(-1) })
}

// TestAlign_Errors covers input validation.
func TestAlign_Errors(t *testing.T) {
	_, err := align.Align("a⋄b", "ab")
	assert.ErrorIs(t, err, align.ErrGapInInput)

	_, err = align.Align("ab", "a-b", align.WithGap('-'))
	assert.ErrorIs(t, err, align.ErrGapInInput)

	_, err = align.Align("ab", string([]byte{0xff, 'a'}))
	assert.ErrorIs(t, err, align.ErrInvalidUTF8)
}

// TestAlign_CustomGap writes the configured gap rune.
func TestAlign_CustomGap(t *testing.T) {
	res, err := align.Align("ab", "a", align.WithGap('-'))
	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"ab", "a-"}}, pairs(res))
}
