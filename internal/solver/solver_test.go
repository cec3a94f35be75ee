package solver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimize_SingleVariable(t *testing.T) {
	m := NewModel()
	x := m.AddIntVar(3, 100)
	m.AddEquality([]int{x}, []float64{1}, 7)

	sol, err := m.Minimize(time.Minute)
	require.NoError(t, err)
	assert.True(t, sol.Optimal)
	assert.Equal(t, 7, sol.Value(x))
	assert.InDelta(t, 21, sol.Objective, 1e-6)
}

func TestMinimize_PicksCheaperColumn(t *testing.T) {
	// Two ways to satisfy the same demand of 4 units: x covers 1 unit at
	// cost 3, y covers 2 units at cost 5. The all-y plan wins.
	m := NewModel()
	x := m.AddIntVar(3, 10)
	y := m.AddIntVar(5, 10)
	m.AddEquality([]int{x, y}, []float64{1, 2}, 4)

	sol, err := m.Minimize(time.Minute)
	require.NoError(t, err)
	assert.True(t, sol.Optimal)
	assert.Equal(t, 0, sol.Value(x))
	assert.Equal(t, 2, sol.Value(y))
	assert.InDelta(t, 10, sol.Objective, 1e-6)
}

func TestMinimize_IntegralityMatters(t *testing.T) {
	// LP relaxation would take 2.5 of the cheap column; integrality forces
	// a mix. Demand of 5 with columns covering 2 and 1 per unit.
	m := NewModel()
	x := m.AddIntVar(3, 10) // covers 2
	y := m.AddIntVar(2, 10) // covers 1
	m.AddEquality([]int{x, y}, []float64{2, 1}, 5)

	sol, err := m.Minimize(time.Minute)
	require.NoError(t, err)
	got := 2*sol.Value(x) + sol.Value(y)
	assert.Equal(t, 5, got)
	assert.InDelta(t, 8, sol.Objective, 1e-6) // x=2, y=1
}

func TestMinimize_Infeasible(t *testing.T) {
	// Upper bound of 2 cannot reach a demand of 10.
	m := NewModel()
	x := m.AddIntVar(1, 2)
	m.AddEquality([]int{x}, []float64{1}, 10)

	_, err := m.Minimize(time.Minute)
	assert.Error(t, err)
}

func TestNumVars(t *testing.T) {
	m := NewModel()
	assert.Equal(t, 0, m.NumVars())
	m.AddIntVar(1, 5)
	m.AddIntVar(1, 5)
	assert.Equal(t, 2, m.NumVars())
}

func TestSolutionValue_Rounding(t *testing.T) {
	s := Solution{Values: []float64{2.9999999, 3.0000001, -0.0000002}}
	assert.Equal(t, 3, s.Value(0))
	assert.Equal(t, 3, s.Value(1))
	assert.Equal(t, 0, s.Value(2))
	assert.Equal(t, 0, s.Value(99)) // out of range
}
