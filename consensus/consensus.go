package consensus

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Options returns, for every column of block, the runes that occur most often
// in that column, best first. Every column has at least one option.
func Options(block []string, gap rune) ([][]rune, error) {
	rows, err := split(block)
	if err != nil {
		return nil, err
	}

	width := len(rows[0])
	out := make([][]rune, width)
	column := make([]rune, len(rows))
	for c := 0; c < width; c++ {
		for k, row := range rows {
			column[k] = row[c]
		}
		out[c] = majority(column, gap)
	}

	return out, nil
}

// Build joins the first option of every column, leaving out gaps.
func Build(block []string, gap rune) (string, error) {
	opts, err := Options(block, gap)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, o := range opts {
		if o[0] != gap {
			sb.WriteRune(o[0])
		}
	}

	return sb.String(), nil
}

// Choices is the number of distinct lines the options could spell.
// It saturates at limit so callers can bound an enumeration cheaply;
// a limit below 1 is treated as 1.
func Choices(opts [][]rune, limit int) int {
	limit = max(limit, 1)
	n := 1
	for _, o := range opts {
		n *= len(o)
		if n >= limit {
			return limit
		}
	}

	return n
}

func majority(column []rune, gap rune) []rune {
	counts := lo.CountValues(column)
	top := lo.Max(lo.Values(counts))
	best := lo.Filter(lo.Keys(counts), func(r rune, _ int) bool { return counts[r] == top })
	sort.Slice(best, func(i, j int) bool { return less(best[i], best[j], gap) })

	return best
}

func split(block []string) ([][]rune, error) {
	if len(block) == 0 {
		return nil, ErrEmptyBlock
	}
	rows := lo.Map(block, func(s string, _ int) []rune { return []rune(s) })
	for k, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, fmt.Errorf("row %d has %d runes, row 0 has %d: %w", k, len(row), len(rows[0]), ErrRaggedBlock)
		}
	}

	return rows, nil
}
