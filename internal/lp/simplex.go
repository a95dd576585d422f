package lp

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// SimplexSolver solves problems with gonum's two-phase simplex method.
// The zero value is not usable; construct with NewSimplexSolver.
type SimplexSolver struct {
	tol float64
}

// NewSimplexSolver returns a solver with the default pivot tolerance.
func NewSimplexSolver() *SimplexSolver {
	return &SimplexSolver{tol: 1e-10}
}

// Solve converts the box-bounded problem into standard form and runs simplex.
//
// Variables are shifted by their lower bounds (y = x - lower, y >= 0), finite
// upper bounds become extra inequality rows, and each inequality gains a slack
// variable, yielding the equality system simplex expects.
func (s *SimplexSolver) Solve(p *Problem) (*Solution, error) {
	n := p.NumVars()
	if n == 0 {
		return &Solution{X: nil, Objective: 0}, nil
	}

	// Collect inequality rows over the shifted variables.
	var rows [][]float64
	var rhs []float64

	for i, row := range p.Rows {
		shifted := p.RHS[i]
		for j, c := range row {
			shifted -= c * p.Lower[j]
		}
		rows = append(rows, row)
		rhs = append(rhs, shifted)
	}

	for j := 0; j < n; j++ {
		if math.IsInf(p.Upper[j], 1) {
			continue
		}
		bound := make([]float64, n)
		bound[j] = 1
		rows = append(rows, bound)
		rhs = append(rhs, p.Upper[j]-p.Lower[j])
	}

	m := len(rows)
	if m == 0 {
		// No constraints beyond the box: the minimum sits at a bound.
		x := make([]float64, n)
		var obj float64
		for j := 0; j < n; j++ {
			if p.Objective[j] < 0 {
				return nil, ErrUnbounded
			}
			x[j] = p.Lower[j]
			obj += p.Objective[j] * x[j]
		}
		return &Solution{X: x, Objective: obj}, nil
	}

	// Standard form: [rows | I] * [y; slack] = rhs, all variables >= 0.
	c := make([]float64, n+m)
	copy(c, p.Objective)

	a := mat.NewDense(m, n+m, nil)
	for i, row := range rows {
		for j, v := range row {
			a.Set(i, j, v)
		}
		a.Set(i, n+i, 1)
	}

	_, xStd, err := lp.Simplex(c, a, rhs, s.tol, nil)
	if err != nil {
		switch {
		case errors.Is(err, lp.ErrInfeasible):
			return nil, ErrInfeasible
		case errors.Is(err, lp.ErrUnbounded):
			return nil, ErrUnbounded
		default:
			return nil, err
		}
	}

	x := make([]float64, n)
	var obj float64
	for j := 0; j < n; j++ {
		x[j] = xStd[j] + p.Lower[j]
		obj += p.Objective[j] * x[j]
	}
	return &Solution{X: x, Objective: obj}, nil
}
