package optimizer

import (
	"sort"

	"github.com/nutriplan/diet-service/internal/catalog"
	"github.com/nutriplan/diet-service/internal/nutrient"
)

// buildResult converts raw grams per variable food into the final result:
// noise-floored amounts with fixed pins merged back verbatim, authoritative
// re-aggregated totals, per-nutrient achievement and per-food attribution.
func (e *Engine) buildResult(sel *selection, reqs nutrient.Profile, varAmounts map[string]float64, strategy Strategy, attempt, message string) *Result {
	type chosen struct {
		food  catalog.Food
		grams float64
	}

	var foods []chosen
	for _, f := range sel.variable {
		grams := varAmounts[f.Name]
		if grams < e.cfg.NoiseFloorG {
			continue
		}
		foods = append(foods, chosen{food: f, grams: grams})
	}
	for _, pin := range sel.fixed {
		foods = append(foods, chosen{food: pin.food, grams: pin.grams})
	}

	amounts := make(map[string]float64, len(foods))
	var totalCost float64
	totals := nutrient.Profile{}
	for _, c := range foods {
		amounts[c.food.Name] = c.grams
		totalCost += c.grams / 100 * c.food.PricePer100g
		for _, k := range nutrient.All() {
			if v := c.food.NutrientPer100g(k); v != 0 {
				totals[k] += c.grams / 100 * v
			}
		}
	}

	statuses := make([]NutrientStatus, 0, len(reqs))
	for _, k := range reqs.Keys() {
		required := reqs[k]
		actual := totals[k]

		var ratio float64
		if required > 0 {
			ratio = actual / required * 100
		}

		contributions := make([]FoodContribution, 0, len(foods))
		for _, c := range foods {
			amount := c.grams / 100 * c.food.NutrientPer100g(k)
			if amount <= 0 {
				continue
			}
			var pct float64
			if required > 0 {
				pct = amount / required * 100
			}
			contributions = append(contributions, FoodContribution{
				Food:       c.food.Name,
				AmountG:    c.grams,
				Amount:     amount,
				Percentage: pct,
			})
		}
		sort.SliceStable(contributions, func(a, b int) bool {
			return contributions[a].Percentage > contributions[b].Percentage
		})

		statuses = append(statuses, NutrientStatus{
			Key:           k,
			Display:       k.DisplayName(),
			Unit:          string(k.UnitOf()),
			Actual:        actual,
			Required:      required,
			Ratio:         ratio,
			Achieved:      ratio >= 100,
			Contributions: contributions,
		})
	}

	// Overall ranking: each food's requirement-normalized contribution summed
	// across nutrients, capping each nutrient at 100% of its requirement so a
	// single overstuffed nutrient cannot dominate.
	scores := make([]float64, len(foods))
	var scoreSum float64
	for i, c := range foods {
		for _, k := range reqs.Keys() {
			required := reqs[k]
			if required <= 0 {
				continue
			}
			contribution := c.grams / 100 * c.food.NutrientPer100g(k)
			if contribution > required {
				contribution = required
			}
			scores[i] += contribution / required
		}
		scoreSum += scores[i]
	}

	shares := make([]FoodShare, len(foods))
	for i, c := range foods {
		var pct float64
		if scoreSum > 0 {
			pct = scores[i] / scoreSum * 100
		}
		shares[i] = FoodShare{
			Food:                c.food.Name,
			AmountG:             c.grams,
			Cost:                c.grams / 100 * c.food.PricePer100g,
			ContributionPercent: pct,
		}
	}
	sort.SliceStable(shares, func(a, b int) bool {
		return shares[a].ContributionPercent > shares[b].ContributionPercent
	})

	return &Result{
		Success:     true,
		Message:     message,
		Strategy:    strategy,
		Attempt:     attempt,
		Amounts:     amounts,
		TotalCost:   totalCost,
		DailyCost:   totalCost,
		MonthlyCost: totalCost * e.cfg.DaysPerMonth,
		Nutrients:   statuses,
		Foods:       shares,
	}
}
