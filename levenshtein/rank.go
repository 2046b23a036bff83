package levenshtein

import "sort"

// Entry is the distance between the sequences at indices I and J (I < J)
// of a collection passed to DistanceAll.
type Entry struct {
	Distance int
	I, J     int
}

// DistanceAll computes the distance for every unordered pair of seqs and
// returns the entries sorted ascending by distance.
//
// Pairs are enumerated i ascending, then j ascending, and the sort is stable,
// so entries with equal distance keep that enumeration order. Callers may rely
// on it as a deterministic tie-break.
//
// Example:
//
//	DistanceAll([]string{"abc", "abcde", "abcd"})
//	// [{1 0 2} {1 1 2} {2 0 1}]
//
// Collections with fewer than two sequences yield an empty, non-nil slice.
func DistanceAll(seqs []string) []Entry {
	runes := make([][]rune, len(seqs))
	for i, s := range seqs {
		runes[i] = []rune(s)
	}

	n := len(seqs)
	entries := make([]Entry, 0, n*(n-1)/2+1)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			entries = append(entries, Entry{
				Distance: DistanceRunes(runes[i], runes[j]),
				I:        i,
				J:        j,
			})
		}
	}

	sort.SliceStable(entries, func(x, y int) bool {
		return entries[x].Distance < entries[y].Distance
	})

	return entries
}

// Order returns a presentation order for progressive alignment: the indices
// of seqs arranged so that each sequence is close to one already placed.
//
// Implementation:
//   - Stage 1: the first (closest) DistanceAll entry seeds the order with I, J.
//   - Stage 2: repeatedly scan the remaining entries in DistanceAll order and
//     take the first one joining a placed index to an unplaced one; the
//     unplaced index is appended.
//
// Collections of two or fewer sequences keep their original order.
func Order(seqs []string) []int {
	n := len(seqs)
	if n <= 2 {
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}

		return order
	}

	entries := DistanceAll(seqs)
	placed := make([]bool, n)
	used := make([]bool, len(entries))

	first := entries[0]
	used[0] = true
	placed[first.I], placed[first.J] = true, true
	order := []int{first.I, first.J}

	for len(order) < n {
		for k, e := range entries {
			if used[k] || placed[e.I] == placed[e.J] {
				continue
			}
			next := e.I
			if placed[e.I] {
				next = e.J
			}
			used[k] = true
			placed[next] = true
			order = append(order, next)

			break
		}
	}

	return order
}

// Reorder returns the sequences of seqs arranged by Order.
func Reorder(seqs []string) []string {
	order := Order(seqs)
	out := make([]string, len(order))
	for k, idx := range order {
		out[k] = seqs[idx]
	}

	return out
}
