package msa

import (
	"testing"

	"github.com/katalvlaran/linealign/subst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoCharTable(t *testing.T) *subst.Table {
	t.Helper()
	tbl, err := subst.FromMap(map[string]float64{"aa": 0, "ab": -1, "bb": 0})
	require.NoError(t, err)

	return tbl
}

func TestFill_Borders(t *testing.T) {
	o := gatherOptions([]Option{WithGapOpen(-3), WithGapSkew(-0.5)})
	g, err := fill([][]rune{[]rune("ab")}, []rune("abb"), twoCharTable(t), o)
	require.NoError(t, err)

	rows, cols := g.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)

	assert.Equal(t, dirNone, g.Ref(0, 0).dir)
	assert.Equal(t, cell{val: -3, up: -3, left: -3, dir: dirUp}, *g.Ref(1, 0))
	assert.Equal(t, cell{val: -3.5, up: -3.5, left: -3.5, dir: dirUp}, *g.Ref(2, 0))
	assert.Equal(t, cell{val: -3, up: -3, left: -3, dir: dirLeft}, *g.Ref(0, 1))
	assert.Equal(t, cell{val: -4, up: -4, left: -4, dir: dirLeft}, *g.Ref(0, 3))
}

// "aba" against "aa" with unit penalties: the middle b must be skipped.
func TestFill_InteriorAndTraceback(t *testing.T) {
	o := gatherOptions([]Option{WithGapOpen(-1), WithGapSkew(-1)})
	block := [][]rune{[]rune("aba")}
	s := []rune("aa")

	g, err := fill(block, s, twoCharTable(t), o)
	require.NoError(t, err)

	assert.Equal(t, 0.0, g.Ref(1, 1).val)
	assert.Equal(t, dirDiag, g.Ref(1, 1).dir)
	assert.Equal(t, -1.0, g.Ref(3, 2).val)
	assert.Equal(t, dirDiag, g.Ref(3, 2).dir)
	assert.Equal(t, dirUp, g.Ref(2, 1).dir)

	out := traceback(g, block, s, o.gap)
	require.Len(t, out, 2)
	assert.Equal(t, "aba", string(out[0]))
	assert.Equal(t, "a⋄a", string(out[1]))
}

func TestColumnScore(t *testing.T) {
	tbl := twoCharTable(t)
	block := [][]rune{[]rune("a⋄"), []rune("b⋄")}

	got, err := columnScore(block, 0, 'a', tbl, DefaultGap)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got, "best over rows, not the first row")

	got, err = columnScore(block, 0, 'b', tbl, DefaultGap)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	_, err = columnScore(block, 1, 'a', tbl, DefaultGap)
	assert.ErrorIs(t, err, ErrGapColumn)

	_, err = columnScore(block, 0, 'z', tbl, DefaultGap)
	assert.ErrorIs(t, err, subst.ErrMissingEntry)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "diag", dirDiag.String())
	assert.Equal(t, "up", dirUp.String())
	assert.Equal(t, "left", dirLeft.String())
	assert.Equal(t, "none", dirNone.String())
}
