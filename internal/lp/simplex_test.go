package lp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplexMinimizesCost(t *testing.T) {
	// min 2x + y  s.t.  -x - y <= -10  (x + y >= 10), x,y >= 0
	p := NewProblem(2)
	p.Objective[0] = 2
	p.Objective[1] = 1
	require.NoError(t, p.AddRow([]float64{-1, -1}, -10))

	sol, err := NewSimplexSolver().Solve(p)
	require.NoError(t, err)
	assert.InDelta(t, 0, sol.X[0], 1e-8)
	assert.InDelta(t, 10, sol.X[1], 1e-8)
	assert.InDelta(t, 10, sol.Objective, 1e-8)
}

func TestSimplexRespectsLowerBounds(t *testing.T) {
	// Same problem, but x is pinned to at least 4.
	p := NewProblem(2)
	p.Objective[0] = 2
	p.Objective[1] = 1
	require.NoError(t, p.AddRow([]float64{-1, -1}, -10))
	p.SetBounds(0, 4, math.Inf(1))

	sol, err := NewSimplexSolver().Solve(p)
	require.NoError(t, err)
	assert.InDelta(t, 4, sol.X[0], 1e-8)
	assert.InDelta(t, 6, sol.X[1], 1e-8)
	assert.InDelta(t, 14, sol.Objective, 1e-8)
}

func TestSimplexRespectsUpperBounds(t *testing.T) {
	// Cheap variable capped at 3, forcing the rest onto the expensive one.
	p := NewProblem(2)
	p.Objective[0] = 2
	p.Objective[1] = 1
	require.NoError(t, p.AddRow([]float64{-1, -1}, -10))
	p.SetBounds(1, 0, 3)

	sol, err := NewSimplexSolver().Solve(p)
	require.NoError(t, err)
	assert.InDelta(t, 7, sol.X[0], 1e-8)
	assert.InDelta(t, 3, sol.X[1], 1e-8)
}

func TestSimplexInfeasible(t *testing.T) {
	// x >= 10 with x <= 5 has no feasible point.
	p := NewProblem(1)
	p.Objective[0] = 1
	require.NoError(t, p.AddRow([]float64{-1}, -10))
	p.SetBounds(0, 0, 5)

	_, err := NewSimplexSolver().Solve(p)
	assert.ErrorIs(t, err, ErrInfeasible)
}

func TestSimplexUnbounded(t *testing.T) {
	// min -x with x unbounded above.
	p := NewProblem(1)
	p.Objective[0] = -1
	require.NoError(t, p.AddRow([]float64{-1}, 0)) // x >= 0, always true

	_, err := NewSimplexSolver().Solve(p)
	assert.ErrorIs(t, err, ErrUnbounded)
}

func TestSimplexNoConstraintRows(t *testing.T) {
	p := NewProblem(2)
	p.Objective[0] = 3
	p.Objective[1] = 1
	p.SetBounds(0, 2, math.Inf(1))
	p.SetBounds(1, 5, math.Inf(1))

	sol, err := NewSimplexSolver().Solve(p)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5}, sol.X)
	assert.InDelta(t, 11, sol.Objective, 1e-12)
}

func TestSimplexZeroVariables(t *testing.T) {
	sol, err := NewSimplexSolver().Solve(NewProblem(0))
	require.NoError(t, err)
	assert.Empty(t, sol.X)
	assert.Equal(t, 0.0, sol.Objective)
}

func TestAddRowRejectsWrongWidth(t *testing.T) {
	p := NewProblem(2)
	assert.Error(t, p.AddRow([]float64{1}, 0))
}
