package align

// GapRuns counts the maximal runs of gap runes across both rows of al.
//
//	GapRuns(Alignment{A: "a⋄⋄b", B: "⋄cdb"}, '⋄') // 2
func GapRuns(al Alignment, gap rune) int {
	return runs(al.A, gap) + runs(al.B, gap)
}

func runs(s string, gap rune) int {
	n := 0
	inRun := false
	for _, r := range s {
		switch {
		case r == gap && !inRun:
			n++
			inRun = true
		case r != gap:
			inRun = false
		}
	}

	return n
}

// Best returns the alignment of res with the fewest gap runs; among equals
// the earliest in res.Alignments wins. ok is false when res is empty.
func Best(res Result, gap rune) (best Alignment, ok bool) {
	bestRuns := -1
	for _, al := range res.Alignments {
		n := GapRuns(al, gap)
		if bestRuns < 0 || n < bestRuns {
			best, bestRuns = al, n
		}
	}

	return best, bestRuns >= 0
}
