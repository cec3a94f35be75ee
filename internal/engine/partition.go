package engine

import (
	"fmt"
	"sort"

	"github.com/piwi3910/BoardCut/internal/model"
)

// indexedBoard carries a board offering together with its position in the
// input sequence, which is the board's identity in every output mapping.
type indexedBoard struct {
	index int
	board model.BoardOffering
}

// dimensionGroup owns the cut requests and board offerings sharing one
// cross-section. Groups partition the inputs and are solved independently.
type dimensionGroup struct {
	dim    model.Dimension
	cuts   []model.CutRequest
	boards []indexedBoard
}

// maxBoardLength returns the longest board offered in the group.
func (g dimensionGroup) maxBoardLength() float64 {
	var max float64
	for _, b := range g.boards {
		if b.board.Length > max {
			max = b.board.Length
		}
	}
	return max
}

// partition validates the inputs and splits them into dimension groups.
// Board offerings without matching cut demand are dropped; cut demand
// without a matching offering fails the whole call, as does any cut longer
// than every board in its group.
func partition(cuts []model.CutRequest, boards []model.BoardOffering) ([]dimensionGroup, error) {
	for _, c := range cuts {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}
	for _, b := range boards {
		if err := b.Validate(); err != nil {
			return nil, err
		}
	}

	byDim := make(map[model.Dimension]*dimensionGroup)
	var order []model.Dimension
	for _, c := range cuts {
		dim := c.Dimension()
		g, ok := byDim[dim]
		if !ok {
			g = &dimensionGroup{dim: dim}
			byDim[dim] = g
			order = append(order, dim)
		}
		g.cuts = append(g.cuts, c)
	}

	for i, b := range boards {
		if g, ok := byDim[b.Dimension()]; ok {
			g.boards = append(g.boards, indexedBoard{index: i, board: b})
		}
	}

	// Groups are solved in cross-section order so identical inputs always
	// produce identical results regardless of map iteration.
	sort.Slice(order, func(i, j int) bool {
		if order[i].Width != order[j].Width {
			return order[i].Width < order[j].Width
		}
		return order[i].Height < order[j].Height
	})

	groups := make([]dimensionGroup, 0, len(order))
	for _, dim := range order {
		g := byDim[dim]
		if len(g.boards) == 0 {
			return nil, fmt.Errorf("dimension %s: %w", dim, model.ErrNoBoardsForDimension)
		}
		maxLen := g.maxBoardLength()
		for _, c := range g.cuts {
			if c.Length > maxLen+lengthEps {
				return nil, fmt.Errorf("dimension %s: cut length %g exceeds maximum available board length %g: %w",
					dim, c.Length, maxLen, model.ErrCutExceedsMaxBoard)
			}
		}
		groups = append(groups, *g)
	}
	return groups, nil
}

// aggregateDemand merges equal-length cut requests into total quantities and
// returns the distinct lengths in descending order.
func aggregateDemand(cuts []model.CutRequest) (map[float64]int, []float64) {
	demand := make(map[float64]int, len(cuts))
	for _, c := range cuts {
		demand[c.Length] += c.Quantity
	}
	lengths := make([]float64, 0, len(demand))
	for l := range demand {
		lengths = append(lengths, l)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(lengths)))
	return demand, lengths
}
