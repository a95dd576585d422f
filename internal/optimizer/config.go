package optimizer

import (
	"github.com/nutriplan/diet-service/internal/nutrient"
)

// Config holds the tuning knobs for the diet engine.
// It is loaded from environment variables or a config file.
type Config struct {
	// Weight caps
	DefaultMaxFoodAmountG float64 `mapstructure:"default_max_food_amount_g"`

	// Validation limits
	MaxSelectedFoods int `mapstructure:"max_selected_foods"`

	// Balanced cascade policy
	UpperLimitRelax  float64   `mapstructure:"upper_limit_relax"`
	RequirementSteps []float64 `mapstructure:"requirement_steps"`

	// Calorie-focused band around the energy target
	EnergyLowerFactor float64 `mapstructure:"energy_lower_factor"`
	EnergyUpperFactor float64 `mapstructure:"energy_upper_factor"`

	// Greedy heuristic
	GreedyStepG    float64 `mapstructure:"greedy_step_g"`
	GreedyMinStepG float64 `mapstructure:"greedy_min_step_g"`

	// Result shaping
	NoiseFloorG  float64 `mapstructure:"noise_floor_g"`
	DaysPerMonth float64 `mapstructure:"days_per_month"`
}

// Defaults returns the default engine configuration.
func Defaults() *Config {
	return &Config{
		DefaultMaxFoodAmountG: 1000,
		MaxSelectedFoods:      200,
		UpperLimitRelax:       1.5,
		RequirementSteps:      []float64{0.95, 0.90, 0.85, 0.80},
		EnergyLowerFactor:     0.95,
		EnergyUpperFactor:     1.10,
		GreedyStepG:           100,
		GreedyMinStepG:        10,
		NoiseFloorG:           1,
		DaysPerMonth:          30,
	}
}

// essentialNutrients is the reduced requirement set the cascade falls back
// to before abandoning nutrient floors entirely.
var essentialNutrients = []nutrient.Key{
	nutrient.Energy,
	nutrient.Protein,
	nutrient.Calcium,
	nutrient.Iron,
	nutrient.VitaminA,
	nutrient.VitaminC,
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.DefaultMaxFoodAmountG <= 0 {
		return ErrInvalidConfig{Field: "default_max_food_amount_g", Reason: "must be positive"}
	}
	if c.MaxSelectedFoods < 1 {
		return ErrInvalidConfig{Field: "max_selected_foods", Reason: "must be at least 1"}
	}
	if c.UpperLimitRelax < 1.0 {
		return ErrInvalidConfig{Field: "upper_limit_relax", Reason: "must be >= 1.0"}
	}
	if len(c.RequirementSteps) == 0 {
		return ErrInvalidConfig{Field: "requirement_steps", Reason: "must have at least one step"}
	}
	for i := 0; i < len(c.RequirementSteps); i++ {
		s := c.RequirementSteps[i]
		if s <= 0 || s >= 1 {
			return ErrInvalidConfig{Field: "requirement_steps", Reason: "steps must be in (0, 1)"}
		}
		if i > 0 && c.RequirementSteps[i-1] <= s {
			return ErrInvalidConfig{Field: "requirement_steps", Reason: "steps must be in descending order"}
		}
	}
	if c.EnergyLowerFactor <= 0 || c.EnergyLowerFactor > 1 {
		return ErrInvalidConfig{Field: "energy_lower_factor", Reason: "must be in (0, 1]"}
	}
	if c.EnergyUpperFactor < 1 {
		return ErrInvalidConfig{Field: "energy_upper_factor", Reason: "must be >= 1.0"}
	}
	if c.GreedyStepG <= 0 {
		return ErrInvalidConfig{Field: "greedy_step_g", Reason: "must be positive"}
	}
	if c.GreedyMinStepG <= 0 || c.GreedyMinStepG > c.GreedyStepG {
		return ErrInvalidConfig{Field: "greedy_min_step_g", Reason: "must be positive and <= greedy_step_g"}
	}
	if c.NoiseFloorG < 0 {
		return ErrInvalidConfig{Field: "noise_floor_g", Reason: "must be non-negative"}
	}
	if c.DaysPerMonth <= 0 {
		return ErrInvalidConfig{Field: "days_per_month", Reason: "must be positive"}
	}
	return nil
}

// ErrInvalidConfig is returned when the configuration is invalid.
type ErrInvalidConfig struct {
	Field  string
	Reason string
}

func (e ErrInvalidConfig) Error() string {
	return e.Field + ": " + e.Reason
}
