package consensus

import "unicode"

// Rank classes, lower sorts first.
const (
	rankOtherPunct = 10
	rankLetter     = 20
	rankDigit      = 30
	rankDash       = 40
	rankBracket    = 50
	rankNumber     = 60
	rankConnector  = 70
	rankSpace      = 80
	rankSymbol     = 90
	rankMath       = 99
	rankOther      = 100
	rankGap        = 1000
)

// classes is checked in order; the first table containing the rune wins.
var classes = []struct {
	table *unicode.RangeTable
	rank  int
}{
	{unicode.L, rankLetter},
	{unicode.Nd, rankDigit},
	{unicode.Pd, rankDash},
	{unicode.Ps, rankBracket},
	{unicode.Pe, rankBracket},
	{unicode.Pi, rankBracket},
	{unicode.Pf, rankBracket},
	{unicode.Nl, rankNumber},
	{unicode.No, rankNumber},
	{unicode.Pc, rankConnector},
	{unicode.Po, rankOtherPunct},
	{unicode.Zs, rankSpace},
	{unicode.Sc, rankSymbol},
	{unicode.So, rankSymbol},
	{unicode.Sm, rankMath},
}

// punct refines rankOtherPunct for the marks OCR most often confuses.
var punct = map[rune]int{
	'.':  1,
	',':  2,
	':':  2,
	';':  2,
	'!':  5,
	'"':  5,
	'\'': 5,
	'*':  5,
	'/':  5,
	'%':  6,
	'&':  6,
}

func rank(r, gap rune) int {
	if r == gap {
		return rankGap
	}
	if n, ok := punct[r]; ok {
		return n
	}
	for _, c := range classes {
		if unicode.Is(c.table, r) {
			return c.rank
		}
	}

	return rankOther
}

// less orders two candidate runes of one column.
func less(a, b, gap rune) bool {
	ra, rb := rank(a, gap), rank(b, gap)
	if ra != rb {
		return ra < rb
	}

	return a < b
}
