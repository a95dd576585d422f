// Package optimizer formulates diet selection as a linear program and solves
// it under one of six strategies, falling back through progressively relaxed
// formulations when the strict problem has no feasible point.
package optimizer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nutriplan/diet-service/internal/catalog"
	"github.com/nutriplan/diet-service/internal/lp"
	"github.com/nutriplan/diet-service/internal/nutrient"
	"github.com/nutriplan/diet-service/internal/standards"
)

// Engine runs diet optimizations against a catalog snapshot. It is purely
// functional over its inputs; one engine is shared by all requests.
type Engine struct {
	catalog *catalog.Catalog
	solver  lp.Solver
	cfg     *Config
	metrics *MetricsRecorder
	logger  zerolog.Logger
}

// NewEngine creates an engine. A nil config uses Defaults.
func NewEngine(cat *catalog.Catalog, solver lp.Solver, cfg *Config, metrics *MetricsRecorder) *Engine {
	if cfg == nil {
		cfg = Defaults()
	}
	return &Engine{
		catalog: cat,
		solver:  solver,
		cfg:     cfg,
		metrics: metrics,
		logger:  log.With().Str("component", "optimizer").Logger(),
	}
}

// Optimize resolves requirements for the request's demographics, runs the
// selected strategy and interprets the solution. Expected infeasibility and
// structural problems come back as a failed Result; an error is returned
// only for invalid requests.
func (e *Engine) Optimize(ctx context.Context, req *Request) (*Result, error) {
	strategy := req.Strategy
	if strategy == "" {
		strategy = StrategyBalanced
	}
	scope := req.MealScope
	if scope == "" {
		scope = standards.ScopeDaily
	}

	if err := req.Validate(e.cfg.MaxSelectedFoods); err != nil {
		return nil, err
	}

	maxPerFood := req.MaxFoodAmountG
	if maxPerFood == 0 {
		maxPerFood = e.cfg.DefaultMaxFoodAmountG
	}

	foods := e.catalog.Select(req.Foods)
	sel, err := newSelection(foods, req.FixedAmounts, req.MinimumAmounts, maxPerFood)
	if err != nil {
		var invalid ErrInvalidRequest
		if errors.As(err, &invalid) {
			return nil, invalid
		}
		return failureResult(strategy, err.Error()), nil
	}

	reqs, uppers := standards.Resolve(req.Age, req.Gender, scope)

	start := time.Now()
	var result *Result
	switch strategy {
	case StrategyStrict:
		result = e.runStrict(sel, reqs, uppers)
	case StrategyBalanced:
		result = e.runBalanced(sel, reqs, uppers)
	case StrategyCalorieFocused:
		result = e.runCalorieFocused(sel, reqs, uppers)
	case StrategyCustomScore:
		result = e.runCustomScore(sel, reqs, uppers, req.Scoring)
	case StrategyCostLimited:
		result = e.runCostLimited(sel, reqs, uppers, req.MaxCost)
	case StrategyBestEffort:
		result = e.runBestEffort(sel, reqs, math.Inf(1))
	}

	elapsed := time.Since(start)
	if e.metrics != nil {
		e.metrics.RecordOptimization(string(strategy), elapsed.Seconds(), result.Success)
		e.metrics.RecordSelectionSize(len(foods))
		if result.Success && len(result.Nutrients) > 0 {
			var sum float64
			for _, st := range result.Nutrients {
				sum += st.Ratio / 100
			}
			e.metrics.RecordAchievement(string(strategy), sum/float64(len(result.Nutrients)))
		}
	}
	e.logger.Debug().
		Str("strategy", string(strategy)).
		Str("attempt", result.Attempt).
		Bool("success", result.Success).
		Int("foods", len(foods)).
		Dur("duration", elapsed).
		Msg("Optimization finished")

	return result, nil
}

// attempt is one entry in a strategy's ordered solve sequence. Building may
// fail with errUpperLimitViolated, which counts as infeasibility for the
// attempt.
type attempt struct {
	name  string
	build func() (*lp.Problem, error)
}

// solve runs one attempt end to end and returns grams per variable food.
func (e *Engine) solve(sel *selection, a attempt) (map[string]float64, error) {
	p, err := a.build()
	if err != nil {
		var violated errUpperLimitViolated
		if errors.As(err, &violated) || errors.Is(err, errBudgetExceeded) {
			return nil, lp.ErrInfeasible
		}
		return nil, err
	}
	sol, err := e.solver.Solve(p)
	if err != nil {
		return nil, err
	}
	return sel.amountsFrom(sol), nil
}

// costMinAttempt builds the cost-minimization formulation: requirements
// scaled by scale (optionally restricted to only), upper limits relaxed by
// relax, skipped entirely when relax is 0.
func (e *Engine) costMinAttempt(name string, sel *selection, reqs, uppers nutrient.Profile, scale, relax float64, only []nutrient.Key) attempt {
	return attempt{name: name, build: func() (*lp.Problem, error) {
		p, err := sel.newProblem()
		if err != nil {
			return nil, err
		}
		if err := sel.addRequirementRows(p, reqs, scale, only); err != nil {
			return nil, err
		}
		if relax > 0 {
			if err := sel.addUpperLimitRows(p, uppers, relax); err != nil {
				return nil, err
			}
		}
		sel.setCostObjective(p)
		return p, nil
	}}
}

// calorieAttempt builds the calorie-focused formulation: an energy band
// around the target, a full protein floor, optional upper limits.
func (e *Engine) calorieAttempt(name string, sel *selection, reqs, uppers nutrient.Profile, includeUppers bool) attempt {
	return attempt{name: name, build: func() (*lp.Problem, error) {
		p, err := sel.newProblem()
		if err != nil {
			return nil, err
		}

		energyTarget := reqs[nutrient.Energy]
		if lower := energyTarget*e.cfg.EnergyLowerFactor - sel.fixedNutrients[nutrient.Energy]; lower > 0 {
			row := sel.perGramColumn(nutrient.Energy)
			for j := range row {
				row[j] = -row[j]
			}
			if err := p.AddRow(row, -lower); err != nil {
				return nil, err
			}
		}
		upper := energyTarget*e.cfg.EnergyUpperFactor - sel.fixedNutrients[nutrient.Energy]
		if upper <= 0 {
			return nil, errUpperLimitViolated{Key: nutrient.Energy}
		}
		if err := p.AddRow(sel.perGramColumn(nutrient.Energy), upper); err != nil {
			return nil, err
		}

		if protein := reqs[nutrient.Protein] - sel.fixedNutrients[nutrient.Protein]; protein > 0 {
			row := sel.perGramColumn(nutrient.Protein)
			for j := range row {
				row[j] = -row[j]
			}
			if err := p.AddRow(row, -protein); err != nil {
				return nil, err
			}
		}

		if includeUppers {
			if err := sel.addUpperLimitRows(p, uppers, 1.0); err != nil {
				return nil, err
			}
		}
		sel.setCostObjective(p)
		return p, nil
	}}
}

func (e *Engine) runStrict(sel *selection, reqs, uppers nutrient.Profile) *Result {
	a := e.costMinAttempt("strict", sel, reqs, uppers, 1.0, 1.0, nil)
	amounts, err := e.solve(sel, a)
	if err != nil {
		if errors.Is(err, lp.ErrInfeasible) {
			return failureResult(StrategyStrict, "no combination of the selected foods satisfies every requirement and upper limit")
		}
		return failureResult(StrategyStrict, "solver error: "+err.Error())
	}
	return e.buildResult(sel, reqs, amounts, StrategyStrict, a.name, "all requirements satisfied at minimum cost")
}

// runBalanced drives the default cascade: each step is a fresh, independent
// build and solve, and the first success wins. The greedy heuristic closes
// the cascade, so balanced never fails for a valid selection.
func (e *Engine) runBalanced(sel *selection, reqs, uppers nutrient.Profile) *Result {
	relax := e.cfg.UpperLimitRelax

	attempts := []attempt{
		e.costMinAttempt("strict", sel, reqs, uppers, 1.0, 1.0, nil),
		e.costMinAttempt("upper_limits_relaxed", sel, reqs, uppers, 1.0, relax, nil),
	}
	for _, scale := range e.cfg.RequirementSteps {
		name := fmt.Sprintf("requirements_%d", int(math.Round(scale*100)))
		attempts = append(attempts, e.costMinAttempt(name, sel, reqs, uppers, scale, relax, nil))
	}
	attempts = append(attempts,
		e.costMinAttempt("essential_nutrients", sel, reqs, uppers, 1.0, 0, essentialNutrients),
		e.calorieAttempt("calorie_focused", sel, reqs, uppers, false),
	)

	for _, a := range attempts {
		if e.metrics != nil {
			e.metrics.RecordCascadeStep(a.name)
		}
		amounts, err := e.solve(sel, a)
		if err != nil {
			if errors.Is(err, lp.ErrInfeasible) || errors.Is(err, lp.ErrUnbounded) {
				continue
			}
			e.logger.Warn().Err(err).Str("attempt", a.name).Msg("Solve attempt failed, continuing cascade")
			continue
		}
		msg := "all requirements satisfied at minimum cost"
		if a.name != "strict" {
			msg = "requirements satisfied after relaxation (" + a.name + ")"
		}
		return e.buildResult(sel, reqs, amounts, StrategyBalanced, a.name, msg)
	}

	if e.metrics != nil {
		e.metrics.RecordCascadeStep("best_effort")
	}
	result := e.runBestEffort(sel, reqs, math.Inf(1))
	result.Strategy = StrategyBalanced
	result.Attempt = "best_effort"
	result.Message = "no feasible solution found; returning a best-effort selection"
	return result
}

func (e *Engine) runCalorieFocused(sel *selection, reqs, uppers nutrient.Profile) *Result {
	a := e.calorieAttempt("calorie_focused", sel, reqs, uppers, true)
	amounts, err := e.solve(sel, a)
	if err != nil {
		if errors.Is(err, lp.ErrInfeasible) {
			return failureResult(StrategyCalorieFocused, "no combination of the selected foods satisfies the energy band and protein floor")
		}
		return failureResult(StrategyCalorieFocused, "solver error: "+err.Error())
	}
	return e.buildResult(sel, reqs, amounts, StrategyCalorieFocused, a.name, "energy and protein targets satisfied at minimum cost")
}

// runCustomScore maximizes weighted per-nutrient achievement minus a cost
// penalty. There are no hard nutrient floors: deficits are discouraged by
// the objective, not forbidden.
func (e *Engine) runCustomScore(sel *selection, reqs, uppers nutrient.Profile, params *ScoringParams) *Result {
	if params == nil {
		params = DefaultScoringParams()
	}

	a := attempt{name: "custom_score", build: func() (*lp.Problem, error) {
		p, err := sel.newProblem()
		if err != nil {
			return nil, err
		}
		if err := sel.addUpperLimitRows(p, uppers, 1.0); err != nil {
			return nil, err
		}
		for j, f := range sel.variable {
			var score float64
			for _, k := range reqs.Keys() {
				remaining := reqs[k] - sel.fixedNutrients[k]
				if remaining <= 0 {
					continue
				}
				score += params.categoryWeight(k) * params.DeficitPenalty * f.NutrientPerGram(k) / remaining
			}
			p.Objective[j] = params.CostBonus*f.PricePerGram() - score
		}
		return p, nil
	}}

	amounts, err := e.solve(sel, a)
	if err != nil {
		if errors.Is(err, lp.ErrInfeasible) {
			return failureResult(StrategyCustomScore, "upper limits leave no feasible selection")
		}
		return failureResult(StrategyCustomScore, "solver error: "+err.Error())
	}
	return e.buildResult(sel, reqs, amounts, StrategyCustomScore, a.name, "achievement score maximized under upper limits")
}

// runCostLimited maximizes achievement under a hard spending ceiling, with
// energy weighted x2 and protein x3. Infeasibility falls back to the greedy
// heuristic with the same budget.
func (e *Engine) runCostLimited(sel *selection, reqs, uppers nutrient.Profile, maxCost float64) *Result {
	if maxCost <= 0 {
		return failureResult(StrategyCostLimited, "cost_limited strategy requires a positive maxCost")
	}

	a := attempt{name: "cost_limited", build: func() (*lp.Problem, error) {
		p, err := sel.newProblem()
		if err != nil {
			return nil, err
		}

		budget := maxCost - sel.fixedCost
		if budget < 0 {
			return nil, errBudgetExceeded
		}
		costRow := make([]float64, len(sel.variable))
		for j, f := range sel.variable {
			costRow[j] = f.PricePerGram()
		}
		if err := p.AddRow(costRow, budget); err != nil {
			return nil, err
		}
		if err := sel.addUpperLimitRows(p, uppers, e.cfg.UpperLimitRelax); err != nil {
			return nil, err
		}

		for j, f := range sel.variable {
			var score float64
			for _, k := range reqs.Keys() {
				remaining := reqs[k] - sel.fixedNutrients[k]
				if remaining <= 0 {
					continue
				}
				weight := 1.0
				switch k {
				case nutrient.Energy:
					weight = 2.0
				case nutrient.Protein:
					weight = 3.0
				}
				score += weight * f.NutrientPerGram(k) / remaining
			}
			p.Objective[j] = -score
		}
		return p, nil
	}}

	amounts, err := e.solve(sel, a)
	if err == nil {
		return e.buildResult(sel, reqs, amounts, StrategyCostLimited, a.name, "achievement maximized within budget")
	}
	if !errors.Is(err, lp.ErrInfeasible) && !errors.Is(err, lp.ErrUnbounded) {
		return failureResult(StrategyCostLimited, "solver error: "+err.Error())
	}

	result := e.runBestEffort(sel, reqs, maxCost)
	result.Strategy = StrategyCostLimited
	result.Attempt = "best_effort"
	result.Message = "budget too tight for the LP formulation; returning a best-effort selection"
	return result
}

func failureResult(strategy Strategy, msg string) *Result {
	return &Result{
		Success:  false,
		Message:  msg,
		Strategy: strategy,
		Amounts:  map[string]float64{},
	}
}
