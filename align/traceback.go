package align

import "github.com/katalvlaran/linealign/matrix"

// frame is a pending traceback branch: at cell (r, c) take move m, with the
// reversed path prefix truncated to depth runes first.
type frame struct {
	r, c  int
	depth int
	m     move
}

// preference is the order in which tied moves are explored.
var preference = [...]move{moveDiag, moveUp, moveLeft}

// traceback enumerates every optimal path from the bottom-right corner to the
// origin, depth-first over an explicit stack. The current path lives in two
// reusable buffers that are cut back to frame.depth whenever a parked branch
// resumes, so memory stays O(n+m) plus the stack.
func traceback(g *matrix.Grid[cell], a, b []rune, o options) Result {
	rows, cols := g.Shape()
	res := Result{Cost: g.Ref(rows-1, cols-1).cost}
	if rows == 1 && cols == 1 {
		// Two empty inputs: the empty path is the only alignment.
		res.Alignments = []Alignment{{}}

		return res
	}

	pathA := make([]rune, 0, len(a)+len(b))
	pathB := make([]rune, 0, len(a)+len(b))

	var stack []frame
	stack = pushBranches(stack, g, rows-1, cols-1, 0)

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		pathA, pathB = pathA[:f.depth], pathB[:f.depth]

		r, c, m := f.r, f.c, f.m
		for {
			ea, eb := emit(a, b, r, c, m, o.gap)
			pathA = append(pathA, ea)
			pathB = append(pathB, eb)
			r, c = step(r, c, m)
			if r == 0 && c == 0 {
				break
			}
			// Park the alternatives at the new cell; continue with the
			// preferred one, which pushBranches leaves on top.
			stack = pushBranches(stack, g, r, c, len(pathA))
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			m = top.m
		}

		res.Alignments = append(res.Alignments, Alignment{
			Cost: res.Cost,
			A:    reversed(pathA),
			B:    reversed(pathB),
		})
		if o.maxTies > 0 && len(res.Alignments) >= o.maxTies {
			res.Truncated = len(stack) > 0

			break
		}
	}

	return res
}

// pushBranches pushes one frame per recorded move at (r, c), least preferred
// first, so the most preferred move ends up on top of the stack.
func pushBranches(stack []frame, g *matrix.Grid[cell], r, c, depth int) []frame {
	moves := g.Ref(r, c).moves
	for i := len(preference) - 1; i >= 0; i-- {
		if moves&preference[i] != 0 {
			stack = append(stack, frame{r: r, c: c, depth: depth, m: preference[i]})
		}
	}

	return stack
}

// step returns the predecessor of (r, c) under move m.
func step(r, c int, m move) (int, int) {
	switch m {
	case moveDiag:
		return r - 1, c - 1
	case moveUp:
		return r - 1, c
	default:
		return r, c - 1
	}
}

// emit returns the pair of runes a move contributes to the aligned rows.
func emit(a, b []rune, r, c int, m move, gap rune) (rune, rune) {
	switch m {
	case moveDiag:
		return a[r-1], b[c-1]
	case moveUp:
		return a[r-1], gap
	default:
		return gap, b[c-1]
	}
}

// reversed returns the string of rs read back to front.
func reversed(rs []rune) string {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[len(rs)-1-i] = r
	}

	return string(out)
}
