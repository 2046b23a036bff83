// Package align computes unit-cost edit alignments of two text fragments and
// returns every optimal alignment, not just one.
//
// Algorithm:
//
//	A (len(a)+1)×(len(b)+1) cost matrix holds the minimum edit cost of turning
//	a[:r] into b[:c]; cell(r,0)=r and cell(0,c)=c. Each interior cell keeps a
//	bit set of every move that reaches its minimum:
//	  up    = cell(r-1,c)   + 1             (a[r-1] against a gap)
//	  left  = cell(r,c-1)   + 1             (gap against b[c-1])
//	  diag  = cell(r-1,c-1) + (a[r-1]!=b[c-1])
//	Traceback walks every recorded move from (len(a),len(b)) to (0,0) with an
//	explicit stack, so deep inputs never hit recursion limits.
//
// Ties:
//
//	The number of optimal paths can grow exponentially with the number of
//	ties. Enumeration stops after WithMaxTies alignments (DefaultMaxTies
//	unless changed) and Result.Truncated reports that it did. Best picks one
//	alignment among the ties: the one with the fewest gap runs.
//
// Complexity:
//   - Matrix: Time O(n·m), Memory O(n·m)
//   - Traceback: O((n+m)·T) for T returned alignments
package align
