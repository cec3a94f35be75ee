package engine

import "sort"

// lengthEps absorbs float rounding when comparing cut lengths against
// remaining board capacity.
const lengthEps = 1e-9

// pattern is one board-length's worth of assigned cuts: a non-empty multiset
// of lengths whose sum fits the board.
type pattern struct {
	counts map[float64]int
	cuts   []float64 // expanded multiset, descending
	used   float64   // total material consumed
}

// count reports how many cuts of the given length the pattern yields.
func (p pattern) count(length float64) int {
	return p.counts[length]
}

// enumeratePatterns lists the feasible cutting patterns for a board of the
// given length over the distinct cut lengths of one dimension group.
//
// The search walks the lengths sorted descending with a cursor that never
// moves backward: each recursion level may add more copies of the current
// length or advance, so every distinct multiset is reached exactly once.
// Every non-empty multiset reached along the way is recorded. Enumeration
// stops at maxPatterns; past that point the pattern set is no longer
// exhaustive, which trades completeness for bounded runtime.
//
// The result is ordered by material used descending (ties broken by the cut
// multiset, largest cuts first) so variable indexing is deterministic. A
// board too short for every cut length yields an empty set, marking the
// board type unusable for the group.
func enumeratePatterns(boardLen float64, lengths []float64, maxPatterns int) []pattern {
	sorted := make([]float64, len(lengths))
	copy(sorted, lengths)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	var out []pattern
	var stack []float64

	var walk func(start int, remaining float64)
	walk = func(start int, remaining float64) {
		for i := start; i < len(sorted); i++ {
			if len(out) >= maxPatterns {
				return
			}
			length := sorted[i]
			if length > remaining+lengthEps {
				continue
			}
			stack = append(stack, length)
			out = append(out, snapshot(stack, boardLen-(remaining-length)))
			walk(i, remaining-length)
			stack = stack[:len(stack)-1]
		}
	}
	walk(0, boardLen)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].used != out[j].used {
			return out[i].used > out[j].used
		}
		return lessCuts(out[j].cuts, out[i].cuts)
	})
	return out
}

// snapshot copies the current search path into a standalone pattern. The
// path is already descending because the walk never revisits longer lengths.
func snapshot(stack []float64, used float64) pattern {
	cuts := make([]float64, len(stack))
	copy(cuts, stack)
	counts := make(map[float64]int, len(cuts))
	for _, c := range cuts {
		counts[c]++
	}
	return pattern{counts: counts, cuts: cuts, used: used}
}

// lessCuts compares two descending cut multisets lexicographically.
func lessCuts(a, b []float64) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
