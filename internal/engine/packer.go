package engine

import "sort"

// openBoard tracks one board being filled during packing.
type openBoard struct {
	remaining float64
	cuts      []float64
}

// bestFitDecreasing packs a bag of cut lengths into the fewest boards it can
// of a single board length. Cuts are placed largest first into the open board
// with the smallest non-negative remaining capacity after placement; a new
// board is opened only when no open board fits. Ties go to the earliest
// opened board, so the result is stable for a given input multiset.
//
// Every cut length must individually fit the board length; group validation
// guarantees that before packing runs, so the board count is always finite.
func bestFitDecreasing(cuts []float64, boardLen float64) [][]float64 {
	if len(cuts) == 0 {
		return nil
	}

	sorted := make([]float64, len(cuts))
	copy(sorted, cuts)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	var boards []*openBoard
	for _, cut := range sorted {
		bestIdx := -1
		bestRemaining := boardLen + 1
		for i, b := range boards {
			after := b.remaining - cut
			if after >= -lengthEps && after < bestRemaining {
				bestIdx = i
				bestRemaining = after
			}
		}

		if bestIdx >= 0 {
			boards[bestIdx].remaining -= cut
			boards[bestIdx].cuts = append(boards[bestIdx].cuts, cut)
		} else {
			boards = append(boards, &openBoard{
				remaining: boardLen - cut,
				cuts:      []float64{cut},
			})
		}
	}

	result := make([][]float64, len(boards))
	for i, b := range boards {
		result[i] = b.cuts
	}
	return result
}
