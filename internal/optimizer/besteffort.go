package optimizer

import (
	"math"
	"sort"

	"github.com/nutriplan/diet-service/internal/catalog"
	"github.com/nutriplan/diet-service/internal/nutrient"
)

// greedyScore ranks a food by nutrient density per unit price on its 100g
// basis. Free or mispriced foods score zero so they never dominate.
func greedyScore(f *catalog.Food) float64 {
	if f.PricePer100g <= 0 {
		return 0
	}
	value := f.NutrientPer100g(nutrient.Energy) +
		f.NutrientPer100g(nutrient.Protein)*10 +
		f.NutrientPer100g(nutrient.Calcium)*0.1 +
		f.NutrientPer100g(nutrient.Iron)*5
	return value / f.PricePer100g
}

// runBestEffort is the non-LP fallback: apply pins, then greedily stack the
// most nutrient-dense foods in fixed-size increments until weight or budget
// runs out. It returns a successful result whenever any food can be added.
func (e *Engine) runBestEffort(sel *selection, reqs nutrient.Profile, budget float64) *Result {
	remainingWeight := sel.remainingWeightG()
	remainingBudget := math.Inf(1)
	if !math.IsInf(budget, 1) {
		remainingBudget = budget - sel.fixedCost
		if remainingBudget < 0 {
			remainingBudget = 0
		}
	}

	amounts := make(map[string]float64, len(sel.variable))

	// Minimum pins first, clipped to whatever weight and budget allow.
	for _, f := range sel.variable {
		want := sel.minimums[f.Name]
		if want <= 0 {
			continue
		}
		take := math.Min(want, remainingWeight)
		if price := f.PricePerGram(); price > 0 && !math.IsInf(remainingBudget, 1) {
			take = math.Min(take, remainingBudget/price)
		}
		if take <= 0 {
			continue
		}
		amounts[f.Name] = take
		remainingWeight -= take
		remainingBudget -= take * f.PricePerGram()
	}

	order := make([]int, len(sel.variable))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		fa, fb := &sel.variable[order[a]], &sel.variable[order[b]]
		sa, sb := greedyScore(fa), greedyScore(fb)
		if sa != sb {
			return sa > sb
		}
		return fa.Name < fb.Name
	})

	for added := true; added; {
		added = false
		for _, j := range order {
			f := &sel.variable[j]
			inc := math.Min(e.cfg.GreedyStepG, remainingWeight)
			inc = math.Min(inc, sel.maxPerFoodG-amounts[f.Name])
			if price := f.PricePerGram(); price > 0 && !math.IsInf(remainingBudget, 1) {
				inc = math.Min(inc, remainingBudget/price)
			}
			if inc < e.cfg.GreedyMinStepG {
				continue
			}
			amounts[f.Name] += inc
			remainingWeight -= inc
			remainingBudget -= inc * f.PricePerGram()
			added = true
		}
	}

	// Guarantee a non-empty selection when anything at all fits.
	if len(amounts) == 0 && len(sel.fixed) == 0 {
		for _, j := range order {
			f := &sel.variable[j]
			inc := math.Min(e.cfg.GreedyStepG, remainingWeight)
			if price := f.PricePerGram(); price > 0 && !math.IsInf(remainingBudget, 1) {
				inc = math.Min(inc, remainingBudget/price)
			}
			if inc > 0 {
				amounts[f.Name] = inc
				break
			}
		}
	}

	return e.buildResult(sel, reqs, amounts, StrategyBestEffort, "best_effort",
		"greedy selection by nutrient density per unit price")
}
