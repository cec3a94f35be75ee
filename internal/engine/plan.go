package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/BoardCut/internal/model"
	"github.com/piwi3910/BoardCut/internal/solver"
)

// patternVar ties one (board type, pattern) usage-count variable to its
// column in the integer program.
type patternVar struct {
	boardPos int // position within the group's board list
	pat      pattern
	col      int
}

// typeUsage is the solved physical layout for one board type in a group.
type typeUsage struct {
	boardIndex int // index into the input board offerings
	length     float64
	price      float64
	boards     [][]float64 // cut lists, one per purchased board
}

// solveGroup builds and solves the integer program for one dimension group
// and converts the solution into per-board-type physical layouts.
//
// One variable per (board type, pattern) pair counts boards of that type cut
// with that pattern. For every required length the pattern counts weighted
// by usage must equal the required quantity exactly, so nothing is
// overproduced. The objective minimizes total purchase price.
func (o *Optimizer) solveGroup(g dimensionGroup) ([]typeUsage, error) {
	demand, lengths := aggregateDemand(g.cuts)

	m := solver.NewModel()
	var vars []patternVar
	for pos, b := range g.boards {
		pats := enumeratePatterns(b.board.Length, lengths, o.Settings.MaxPatternsPerBoardType)
		for _, p := range pats {
			ub := float64(o.Settings.BoundMultiplier * worstCaseBoards(p, demand))
			col := m.AddIntVar(b.board.Price, ub)
			vars = append(vars, patternVar{boardPos: pos, pat: p, col: col})
		}
	}

	// Group validation already guarantees every length fits some board, so
	// an uncovered length here would mean the enumeration is broken.
	for _, length := range lengths {
		covered := false
		for _, v := range vars {
			if v.pat.count(length) > 0 {
				covered = true
				break
			}
		}
		if !covered {
			return nil, fmt.Errorf("dimension %s: length %g: %w", g.dim, length, model.ErrNoPatternForLength)
		}
	}

	for _, length := range lengths {
		var indices []int
		var coeffs []float64
		for _, v := range vars {
			if n := v.pat.count(length); n > 0 {
				indices = append(indices, v.col)
				coeffs = append(coeffs, float64(n))
			}
		}
		m.AddEquality(indices, coeffs, float64(demand[length]))
	}

	sol, err := m.Minimize(o.Settings.SolveTimeout)
	if err != nil {
		return nil, fmt.Errorf("dimension %s: %v: %w", g.dim, err, model.ErrNoFeasiblePlan)
	}

	return o.extractUsage(g, vars, sol), nil
}

// worstCaseBoards estimates how many boards of one pattern could ever be
// needed: enough for the pattern alone to supply every unit of each length
// it contains. Scaled by the bound multiplier this caps the usage variable
// without ever excluding an optimum.
func worstCaseBoards(p pattern, demand map[float64]int) int {
	worst := 1
	for length, perBoard := range p.counts {
		need := int(math.Ceil(float64(demand[length]) / float64(perBoard)))
		if need > worst {
			worst = need
		}
	}
	return worst
}

// extractUsage expands the solved pattern counts into literal boards. The
// solver's chosen patterns are each feasible by construction, so they are
// emitted directly as physical cut lists. The same bag of lengths is also
// re-packed with best-fit-decreasing; the re-pack replaces the pattern
// layout only when it opens strictly fewer boards, which can happen when the
// solve stopped at a best-effort incumbent. Cost is always computed from the
// layout actually emitted.
func (o *Optimizer) extractUsage(g dimensionGroup, vars []patternVar, sol solver.Solution) []typeUsage {
	var usages []typeUsage
	for pos, b := range g.boards {
		var patternBoards [][]float64
		var bag []float64
		for _, v := range vars {
			if v.boardPos != pos {
				continue
			}
			n := sol.Value(v.col)
			for i := 0; i < n; i++ {
				cuts := make([]float64, len(v.pat.cuts))
				copy(cuts, v.pat.cuts)
				patternBoards = append(patternBoards, cuts)
				bag = append(bag, cuts...)
			}
		}
		if len(patternBoards) == 0 {
			continue
		}

		boards := patternBoards
		if packed := bestFitDecreasing(bag, b.board.Length); len(packed) < len(patternBoards) {
			boards = packed
		}

		usages = append(usages, typeUsage{
			boardIndex: b.index,
			length:     b.board.Length,
			price:      b.board.Price,
			boards:     boards,
		})
	}
	return usages
}
