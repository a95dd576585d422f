package optimizer

import (
	"errors"
	"fmt"

	"github.com/nutriplan/diet-service/internal/catalog"
	"github.com/nutriplan/diet-service/internal/lp"
	"github.com/nutriplan/diet-service/internal/nutrient"
)

// errNoFoods reports a selection with no matching catalog rows. No solve is
// attempted.
var errNoFoods = errors.New("no foods match the selection")

// errBudgetExceeded reports fixed pins whose cost alone exceeds the budget.
// The attempt is infeasible before any solve.
var errBudgetExceeded = errors.New("fixed amounts alone exceed the budget")

// errUnknownFood reports a pin that references a food outside the selection.
type errUnknownFood struct {
	Pin  string // "fixed" or "minimum"
	Name string
}

func (e errUnknownFood) Error() string {
	return fmt.Sprintf("%s pin references unknown food %q", e.Pin, e.Name)
}

// errUpperLimitViolated reports an upper limit already exceeded by the fixed
// pins alone. The attempt is infeasible before any solve.
type errUpperLimitViolated struct {
	Key nutrient.Key
}

func (e errUpperLimitViolated) Error() string {
	return fmt.Sprintf("upper limit for %s is violated by fixed amounts alone", e.Key.DisplayName())
}

// pinned is a food forced to an exact gram amount. Pinned foods are additive
// constants in every attempt, never solver variables.
type pinned struct {
	food  catalog.Food
	grams float64
}

// selection is the resolved, partitioned input to every solve attempt: the
// variable foods, the fixed pins with their precomputed aggregates, and the
// shared weight bounds.
type selection struct {
	variable       []catalog.Food
	fixed          []pinned
	fixedCost      float64
	fixedWeightG   float64
	fixedNutrients nutrient.Profile
	minimums       map[string]float64
	maxPerFoodG    float64
}

// newSelection partitions the chosen foods into fixed and variable sets and
// precomputes the fixed aggregates. Pins naming foods outside the selection
// are structural failures.
func newSelection(foods []catalog.Food, fixedAmounts, minimums map[string]float64, maxPerFoodG float64) (*selection, error) {
	if len(foods) == 0 {
		return nil, errNoFoods
	}

	byName := make(map[string]catalog.Food, len(foods))
	for _, f := range foods {
		byName[f.Name] = f
	}
	for name := range fixedAmounts {
		if _, ok := byName[name]; !ok {
			return nil, errUnknownFood{Pin: "fixed", Name: name}
		}
	}
	for name := range minimums {
		if _, ok := byName[name]; !ok {
			return nil, errUnknownFood{Pin: "minimum", Name: name}
		}
	}

	s := &selection{
		fixedNutrients: nutrient.Profile{},
		minimums:       minimums,
		maxPerFoodG:    maxPerFoodG,
	}
	for _, f := range foods {
		grams, isFixed := fixedAmounts[f.Name]
		if !isFixed {
			s.variable = append(s.variable, f)
			continue
		}
		s.fixed = append(s.fixed, pinned{food: f, grams: grams})
		s.fixedCost += grams * f.PricePerGram()
		s.fixedWeightG += grams
		for _, k := range nutrient.All() {
			if v := f.NutrientPerGram(k); v != 0 {
				s.fixedNutrients[k] += grams * v
			}
		}
	}

	if s.fixedWeightG > maxPerFoodG {
		return nil, ErrInvalidRequest{
			Field:  "fixedAmounts",
			Reason: fmt.Sprintf("fixed amounts total %.0fg, exceeding the %.0fg weight cap", s.fixedWeightG, maxPerFoodG),
		}
	}
	for name, grams := range minimums {
		if grams > maxPerFoodG {
			return nil, ErrInvalidRequest{
				Field:  "minimumAmounts",
				Reason: fmt.Sprintf("%s: minimum %.0fg exceeds the %.0fg per-food cap", name, grams, maxPerFoodG),
			}
		}
	}

	return s, nil
}

// remainingWeightG is the weight budget left for variable foods.
func (s *selection) remainingWeightG() float64 {
	return s.maxPerFoodG - s.fixedWeightG
}

// newProblem returns a fresh minimization instance over the variable foods:
// per-food box bounds plus the global weight row. Rows and objective are
// added by the caller.
func (s *selection) newProblem() (*lp.Problem, error) {
	n := len(s.variable)
	p := lp.NewProblem(n)

	weights := make([]float64, n)
	for j, f := range s.variable {
		p.SetBounds(j, s.minimums[f.Name], s.maxPerFoodG)
		weights[j] = 1
	}
	if err := p.AddRow(weights, s.remainingWeightG()); err != nil {
		return nil, err
	}
	return p, nil
}

// perGramColumn returns the per-gram values of a nutrient across the
// variable foods.
func (s *selection) perGramColumn(k nutrient.Key) []float64 {
	col := make([]float64, len(s.variable))
	for j, f := range s.variable {
		col[j] = f.NutrientPerGram(k)
	}
	return col
}

// addRequirementRows adds one "at least" row per requirement nutrient with a
// positive remaining target. Requirements are scaled before the fixed
// contribution is subtracted; nutrients the pins already satisfy are
// dropped. When only is non-nil, requirements outside it are skipped.
func (s *selection) addRequirementRows(p *lp.Problem, reqs nutrient.Profile, scale float64, only []nutrient.Key) error {
	keep := map[nutrient.Key]bool{}
	if only != nil {
		for _, k := range only {
			keep[k] = true
		}
	}
	for _, k := range reqs.Keys() {
		if only != nil && !keep[k] {
			continue
		}
		remaining := reqs[k]*scale - s.fixedNutrients[k]
		if remaining <= 0 {
			continue
		}
		row := s.perGramColumn(k)
		for j := range row {
			row[j] = -row[j]
		}
		if err := p.AddRow(row, -remaining); err != nil {
			return err
		}
	}
	return nil
}

// addUpperLimitRows adds one "at most" row per upper-limit nutrient, with
// limits relaxed by the given factor. A limit the fixed pins alone already
// exceed makes the whole attempt infeasible.
func (s *selection) addUpperLimitRows(p *lp.Problem, uppers nutrient.Profile, relax float64) error {
	for _, k := range uppers.Keys() {
		remaining := uppers[k]*relax - s.fixedNutrients[k]
		if remaining <= 0 {
			return errUpperLimitViolated{Key: k}
		}
		if err := p.AddRow(s.perGramColumn(k), remaining); err != nil {
			return err
		}
	}
	return nil
}

// setCostObjective sets the default cost-minimization objective.
func (s *selection) setCostObjective(p *lp.Problem) {
	for j, f := range s.variable {
		p.Objective[j] = f.PricePerGram()
	}
}

// amountsFrom converts a solver solution into grams per variable food.
func (s *selection) amountsFrom(sol *lp.Solution) map[string]float64 {
	amounts := make(map[string]float64, len(s.variable))
	for j, f := range s.variable {
		amounts[f.Name] = sol.X[j]
	}
	return amounts
}
