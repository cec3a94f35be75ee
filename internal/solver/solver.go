// Package solver wraps the HiGHS mixed-integer programming library behind a
// small facade sized for the cutting-stock engine: bounded integer variables,
// linear equality constraints, cost minimization, and a solve with an
// explicit time limit. A fresh model is built per solve; no solver session
// is held between calls.
package solver

import (
	"fmt"
	"time"

	highs "github.com/bartolsthoorn/gohighs/highs"
)

// Model is an integer program under construction. The zero value is not
// usable; create one with NewModel.
type Model struct {
	h    *highs.Model
	cols int
}

func NewModel() *Model {
	return &Model{h: &highs.Model{}}
}

// AddIntVar declares a non-negative bounded integer variable with the given
// objective cost and returns its column index.
func (m *Model) AddIntVar(cost, upper float64) int {
	col := m.cols
	m.h.ColCosts = append(m.h.ColCosts, cost)
	m.h.ColLower = append(m.h.ColLower, 0)
	m.h.ColUpper = append(m.h.ColUpper, upper)
	m.h.VarTypes = append(m.h.VarTypes, highs.Integer)
	m.cols++
	return col
}

// AddEquality adds the constraint sum(coeffs[i] * x[indices[i]]) == rhs.
func (m *Model) AddEquality(indices []int, coeffs []float64, rhs float64) {
	m.h.AddSparseRow(rhs, indices, coeffs, rhs)
}

// NumVars returns the number of variables declared so far.
func (m *Model) NumVars() int {
	return m.cols
}

// Solution holds the usable outcome of a solve.
type Solution struct {
	// Optimal is true when the solver proved optimality; false means the
	// solve hit its time limit with a best-effort feasible incumbent.
	Optimal   bool
	Values    []float64
	Objective float64
}

// Value returns the solved value of a variable, rounded to the nearest
// integer to strip solver tolerance noise.
func (s Solution) Value(col int) int {
	if col < 0 || col >= len(s.Values) {
		return 0
	}
	v := s.Values[col]
	if v < 0 {
		return 0
	}
	return int(v + 0.5)
}

// Minimize solves the model, minimizing total cost. Any terminal status
// other than proven-optimal or feasible-with-incumbent is returned as an
// error; expiry of the time limit without an incumbent counts as failure.
func (m *Model) Minimize(limit time.Duration) (Solution, error) {
	// HiGHS minimizes by default; the objective sense is never changed.
	var opts []highs.SolveOption
	if limit > 0 {
		opts = append(opts, highs.WithTimeLimit(limit.Seconds()))
	}

	sol, err := m.h.Solve(opts...)
	if err != nil {
		return Solution{}, fmt.Errorf("solver error: %w", err)
	}

	switch {
	case sol.IsOptimal():
		return Solution{Optimal: true, Values: sol.ColValues, Objective: sol.Objective}, nil
	case sol.HasSolution():
		// Feasible but not proven optimal, e.g. stopped at the time limit
		// with an incumbent. Accepted as best effort.
		return Solution{Optimal: false, Values: sol.ColValues, Objective: sol.Objective}, nil
	case sol.IsInfeasible():
		return Solution{}, fmt.Errorf("model is infeasible")
	case sol.IsTimeLimit():
		return Solution{}, fmt.Errorf("time limit of %s reached without a feasible solution", limit)
	default:
		return Solution{}, fmt.Errorf("solver terminated with status %v", sol.Status)
	}
}
