// Package lp defines the linear-program contract the optimizer builds against
// and a simplex-backed solver implementation.
//
// A Problem is a minimization over box-bounded variables subject to
// "at most" inequality rows:
//
//	minimize  Objective · x
//	s.t.      Rows[i] · x <= RHS[i]   for every row i
//	          Lower[j] <= x[j] <= Upper[j]
//
// Lower-bound ("at least") constraints are expressed by negating a row.
package lp

import (
	"errors"
	"fmt"
	"math"
)

// ErrInfeasible is returned when no point satisfies the constraints.
var ErrInfeasible = errors.New("lp: problem is infeasible")

// ErrUnbounded is returned when the objective can decrease without limit.
var ErrUnbounded = errors.New("lp: problem is unbounded")

// Problem is a single linear-program instance. Instances are built fresh per
// solve attempt and never shared or mutated afterwards.
type Problem struct {
	Objective []float64
	Rows      [][]float64
	RHS       []float64
	Lower     []float64
	Upper     []float64
}

// NewProblem creates a problem with n variables bounded to [0, +Inf).
func NewProblem(n int) *Problem {
	p := &Problem{
		Objective: make([]float64, n),
		Lower:     make([]float64, n),
		Upper:     make([]float64, n),
	}
	for i := range p.Upper {
		p.Upper[i] = math.Inf(1)
	}
	return p
}

// NumVars returns the number of decision variables.
func (p *Problem) NumVars() int { return len(p.Objective) }

// NumRows returns the number of inequality rows.
func (p *Problem) NumRows() int { return len(p.Rows) }

// AddRow appends an inequality row coeffs · x <= rhs.
// The coefficient slice is owned by the problem after the call.
func (p *Problem) AddRow(coeffs []float64, rhs float64) error {
	if len(coeffs) != p.NumVars() {
		return fmt.Errorf("lp: row has %d coefficients, want %d", len(coeffs), p.NumVars())
	}
	p.Rows = append(p.Rows, coeffs)
	p.RHS = append(p.RHS, rhs)
	return nil
}

// SetBounds sets the box bounds for variable i.
func (p *Problem) SetBounds(i int, lower, upper float64) {
	p.Lower[i] = lower
	p.Upper[i] = upper
}

// Solution is an optimal assignment for a Problem.
type Solution struct {
	X         []float64
	Objective float64
}

// Solver solves linear programs. Implementations must be deterministic for a
// given input; tie-breaking between optimal vertices is unspecified.
type Solver interface {
	Solve(p *Problem) (*Solution, error)
}
