package optimizer

import (
	"fmt"

	"github.com/nutriplan/diet-service/internal/nutrient"
	"github.com/nutriplan/diet-service/internal/standards"
)

// Strategy selects how the engine formulates and relaxes the diet problem.
type Strategy string

const (
	// StrategyStrict minimizes cost under all requirement and upper-limit
	// rows with no relaxation. Infeasibility is a hard failure.
	StrategyStrict Strategy = "strict"
	// StrategyBalanced runs the default cascade of progressively relaxed
	// attempts and always produces a result.
	StrategyBalanced Strategy = "balanced"
	// StrategyCalorieFocused constrains only energy and protein.
	StrategyCalorieFocused Strategy = "calorie_focused"
	// StrategyCustomScore maximizes a weighted achievement score minus a
	// cost penalty, with no hard nutrient floors.
	StrategyCustomScore Strategy = "custom_score"
	// StrategyCostLimited maximizes achievement under a spending ceiling.
	StrategyCostLimited Strategy = "cost_limited"
	// StrategyBestEffort runs the greedy heuristic directly.
	StrategyBestEffort Strategy = "best_effort"
)

// ScoringParams tunes the custom-score objective.
type ScoringParams struct {
	DeficitPenalty float64 `json:"deficitPenalty"`
	CostBonus      float64 `json:"costBonus"`
	CalorieWeight  float64 `json:"calorieWeight"`
	ProteinWeight  float64 `json:"proteinWeight"`
	VitaminWeight  float64 `json:"vitaminWeight"`
	MineralWeight  float64 `json:"mineralWeight"`
}

// DefaultScoringParams returns the scoring weights used when a custom-score
// request does not supply its own.
func DefaultScoringParams() *ScoringParams {
	return &ScoringParams{
		DeficitPenalty: 10.0,
		CostBonus:      1.0,
		CalorieWeight:  1.0,
		ProteinWeight:  2.0,
		VitaminWeight:  1.0,
		MineralWeight:  1.0,
	}
}

// categoryWeight maps a nutrient's category to its scoring weight.
func (s *ScoringParams) categoryWeight(k nutrient.Key) float64 {
	switch k.CategoryOf() {
	case nutrient.CategoryCalorie:
		return s.CalorieWeight
	case nutrient.CategoryProtein:
		return s.ProteinWeight
	case nutrient.CategoryVitamin:
		return s.VitaminWeight
	case nutrient.CategoryMineral:
		return s.MineralWeight
	default:
		return 1.0
	}
}

// Request contains the parameters for one diet optimization call.
type Request struct {
	Foods          []string            // Catalog food names to choose among
	FixedAmounts   map[string]float64  // Foods pinned to an exact gram amount
	MinimumAmounts map[string]float64  // Foods given a lower-bound gram amount
	MaxFoodAmountG float64             // Per-food and total weight cap in grams (0 = config default)
	Strategy       Strategy            // Empty selects the balanced cascade
	Scoring        *ScoringParams      // Custom-score weights (custom_score only)
	MaxCost        float64             // Spending ceiling (cost_limited only)
	Age            int                 // Age in years
	Gender         string              // Free-form gender token
	MealScope      standards.MealScope // Empty selects the daily scope
}

// Validate checks the request against programming-contract limits. It does
// not consult the catalog; unknown food names surface as a failure result,
// not an error.
func (r *Request) Validate(maxFoods int) error {
	if len(r.Foods) == 0 {
		return ErrInvalidRequest{Field: "foods", Reason: "must select at least one food"}
	}
	if len(r.Foods) > maxFoods {
		return ErrInvalidRequest{Field: "foods", Reason: "exceeds maximum allowed"}
	}
	if r.Age < 0 || r.Age > 150 {
		return ErrInvalidRequest{Field: "age", Reason: "must be between 0 and 150"}
	}
	if r.MaxFoodAmountG < 0 {
		return ErrInvalidRequest{Field: "maxFoodAmountG", Reason: "must be non-negative"}
	}
	if r.MaxCost < 0 {
		return ErrInvalidRequest{Field: "maxCost", Reason: "must be non-negative"}
	}
	switch r.Strategy {
	case "", StrategyStrict, StrategyBalanced, StrategyCalorieFocused,
		StrategyCustomScore, StrategyCostLimited, StrategyBestEffort:
	default:
		return ErrInvalidRequest{Field: "strategy", Reason: fmt.Sprintf("unknown strategy %q", r.Strategy)}
	}
	switch r.MealScope {
	case "", standards.ScopeDaily, standards.ScopePerMeal, standards.ScopeSchoolLunch:
	default:
		return ErrInvalidRequest{Field: "mealScope", Reason: fmt.Sprintf("unknown meal scope %q", r.MealScope)}
	}
	for name, grams := range r.FixedAmounts {
		if grams < 0 {
			return ErrInvalidRequest{Field: "fixedAmounts", Reason: fmt.Sprintf("%s: amount must be non-negative", name)}
		}
	}
	for name, grams := range r.MinimumAmounts {
		if grams < 0 {
			return ErrInvalidRequest{Field: "minimumAmounts", Reason: fmt.Sprintf("%s: amount must be non-negative", name)}
		}
	}
	return nil
}

// FoodContribution is one food's contribution toward a single nutrient.
type FoodContribution struct {
	Food       string  `json:"food"`
	AmountG    float64 `json:"amountG"`    // Grams of the food chosen
	Amount     float64 `json:"amount"`     // Nutrient amount contributed, in the nutrient's unit
	Percentage float64 `json:"percentage"` // Share of the requirement, 0 when requirement <= 0
}

// NutrientStatus reports achievement for one requirement nutrient.
type NutrientStatus struct {
	Key           nutrient.Key       `json:"key"`
	Display       string             `json:"display"`
	Unit          string             `json:"unit"`
	Actual        float64            `json:"actual"`
	Required      float64            `json:"required"`
	Ratio         float64            `json:"ratio"` // actual/required*100, 0 when required <= 0
	Achieved      bool               `json:"achieved"`
	Contributions []FoodContribution `json:"contributions"` // Sorted descending by percentage
}

// FoodShare ranks one chosen food by its overall requirement-normalized
// contribution across all constrained nutrients.
type FoodShare struct {
	Food                string  `json:"food"`
	AmountG             float64 `json:"amountG"`
	Cost                float64 `json:"cost"`
	ContributionPercent float64 `json:"contributionPercent"`
}

// Result is the outcome of one optimization call. Expected infeasibility is
// reported here with Success=false; errors are reserved for invalid input.
type Result struct {
	Success     bool               `json:"success"`
	Message     string             `json:"message"`
	Strategy    Strategy           `json:"strategy"`
	Attempt     string             `json:"attempt,omitempty"` // Cascade step that produced the solution
	Amounts     map[string]float64 `json:"amounts"`           // Grams per food, noise-floored
	TotalCost   float64            `json:"totalCost"`
	DailyCost   float64            `json:"dailyCost"`
	MonthlyCost float64            `json:"monthlyCost"`
	Nutrients   []NutrientStatus   `json:"nutrients"`
	Foods       []FoodShare        `json:"foods"` // Sorted descending by contribution
}

// ErrInvalidRequest is returned when the optimization request is invalid.
type ErrInvalidRequest struct {
	Field  string
	Reason string
}

func (e ErrInvalidRequest) Error() string {
	return e.Field + ": " + e.Reason
}
