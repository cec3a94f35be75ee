// Package engine implements the cutting-stock optimization core: it turns a
// cut list and a board catalog into the cheapest purchase plan together with
// a board-by-board cutting layout.
//
// Cuts and boards are partitioned by cross-section and each group is solved
// independently: feasible cutting patterns are enumerated per board type, an
// integer program picks the cheapest pattern usage that satisfies the demand
// exactly, and the chosen patterns become the physical layout. The engine is
// a pure function of its inputs and keeps no state between calls.
package engine

import (
	"github.com/piwi3910/BoardCut/internal/model"
)

// Optimizer runs the cutting-stock optimization.
type Optimizer struct {
	Settings model.Settings
}

func New(settings model.Settings) *Optimizer {
	return &Optimizer{Settings: settings}
}

// Optimize computes the minimum-cost combination of boards to purchase and a
// physical cutting layout satisfying every cut request exactly. Board types
// are identified in all output maps by their 0-based position in the boards
// slice. Any group's failure aborts the whole call with no partial result.
func (o *Optimizer) Optimize(cuts []model.CutRequest, boards []model.BoardOffering) (model.OptimizeResult, error) {
	result := model.OptimizeResult{
		BoardPlan:    make(map[int]int),
		CutPlan:      make(map[int][]model.PhysicalBoard),
		WasteSummary: make(map[int]float64),
	}

	groups, err := partition(cuts, boards)
	if err != nil {
		return model.OptimizeResult{}, err
	}

	// Groups partition the board offerings disjointly, so merging by board
	// index below is a plain union.
	for _, g := range groups {
		usages, err := o.solveGroup(g)
		if err != nil {
			return model.OptimizeResult{}, err
		}

		for _, u := range usages {
			for _, cutList := range u.boards {
				physical := model.PhysicalBoard{
					BoardIndex: u.boardIndex,
					Length:     u.length,
					Cuts:       cutList,
				}
				result.CutPlan[u.boardIndex] = append(result.CutPlan[u.boardIndex], physical)
				result.WasteSummary[u.boardIndex] += physical.Waste()
			}
			result.BoardPlan[u.boardIndex] += len(u.boards)
			result.TotalCost += float64(len(u.boards)) * u.price
		}
	}

	return result, nil
}
