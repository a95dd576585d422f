package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nutriplan/diet-service/internal/lp"
	"github.com/nutriplan/diet-service/internal/optimizer"
	"github.com/nutriplan/diet-service/internal/standards"
)

var (
	optAge      int
	optGender   string
	optScope    string
	optStrategy string
	optFoods    []string
	optFixed    []string
	optMinimums []string
	optMaxCost  float64
	optMaxGrams float64
	optOutput   string
)

// optimizeCmd represents the optimize command
var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Find the cheapest food amounts meeting nutrient requirements",
	Long: `Run a cost-minimizing diet optimization over the selected catalog foods.
Without --foods, all catalog foods are candidates. Fixed and minimum amounts
take the form name=grams.`,
	Example: `  diet-service optimize --age 30 --gender male --catalog ./data/foods.csv
  diet-service optimize --age 25 --foods "white rice" --foods "chicken breast" --strategy strict
  diet-service optimize --age 30 --fixed "white rice=150" --strategy cost_limited --max-cost 500`,
	RunE: runOptimize,
}

func init() {
	rootCmd.AddCommand(optimizeCmd)

	optimizeCmd.Flags().IntVar(&optAge, "age", 0, "Age in years (required)")
	optimizeCmd.Flags().StringVar(&optGender, "gender", "male", "Gender: male or female")
	optimizeCmd.Flags().StringVar(&optScope, "scope", "daily", "Scope: daily, per_meal, or school_lunch")
	optimizeCmd.Flags().StringVar(&optStrategy, "strategy", "", "Strategy: strict, balanced, calorie_focused, custom_score, cost_limited, or best_effort")
	optimizeCmd.Flags().StringArrayVar(&optFoods, "foods", nil, "Candidate food names (default: whole catalog)")
	optimizeCmd.Flags().StringArrayVar(&optFixed, "fixed", nil, "Fixed amount as name=grams, repeatable")
	optimizeCmd.Flags().StringArrayVar(&optMinimums, "min", nil, "Minimum amount as name=grams, repeatable")
	optimizeCmd.Flags().Float64Var(&optMaxCost, "max-cost", 0, "Spending ceiling (cost_limited only)")
	optimizeCmd.Flags().Float64Var(&optMaxGrams, "max-grams", 0, "Per-food gram cap (0 = default)")
	optimizeCmd.Flags().StringVar(&optOutput, "output", "table", "Output format: table or json")
	optimizeCmd.MarkFlagRequired("age")
}

func runOptimize(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cat, err := loadCatalog(ctx)
	if err != nil {
		return err
	}

	foods := optFoods
	if len(foods) == 0 {
		for _, f := range cat.All() {
			foods = append(foods, f.Name)
		}
	}

	fixed, err := parseAmounts(optFixed)
	if err != nil {
		return fmt.Errorf("invalid --fixed: %w", err)
	}
	minimums, err := parseAmounts(optMinimums)
	if err != nil {
		return fmt.Errorf("invalid --min: %w", err)
	}

	var optCfg *optimizer.Config
	if cfg != nil {
		optCfg = &cfg.Optimizer
	}
	engine := optimizer.NewEngine(cat, lp.NewSimplexSolver(), optCfg, nil)

	result, err := engine.Optimize(ctx, &optimizer.Request{
		Foods:          foods,
		FixedAmounts:   fixed,
		MinimumAmounts: minimums,
		MaxFoodAmountG: optMaxGrams,
		Strategy:       optimizer.Strategy(optStrategy),
		MaxCost:        optMaxCost,
		Age:            optAge,
		Gender:         optGender,
		MealScope:      standards.MealScope(optScope),
	})
	if err != nil {
		return err
	}

	switch strings.ToLower(optOutput) {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case "table":
		outputResultTable(result)
		return nil
	default:
		return fmt.Errorf("invalid output format: %s (use 'table' or 'json')", optOutput)
	}
}

func parseAmounts(pairs []string) (map[string]float64, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	amounts := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		name, grams, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("expected name=grams, got %q", pair)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(grams), 64)
		if err != nil {
			return nil, fmt.Errorf("bad gram amount in %q: %w", pair, err)
		}
		amounts[strings.TrimSpace(name)] = value
	}
	return amounts, nil
}

func outputResultTable(result *optimizer.Result) {
	fmt.Printf("\nOptimization: %s", result.Strategy)
	if result.Attempt != "" {
		fmt.Printf(" (%s)", result.Attempt)
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", 60))

	if !result.Success {
		fmt.Printf("FAILED: %s\n", result.Message)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "Food\tGrams\tCost\tContribution %%\n")
	fmt.Fprintf(w, "----\t-----\t----\t--------------\n")
	for _, share := range result.Foods {
		fmt.Fprintf(w, "%s\t%.0f\t%.2f\t%.1f\n", share.Food, share.AmountG, share.Cost, share.ContributionPercent)
	}
	w.Flush()

	fmt.Printf("\nTotal cost: %.2f (monthly %.2f)\n", result.TotalCost, result.MonthlyCost)

	fmt.Println("\nNutrient achievement")
	fmt.Println(strings.Repeat("-", 60))
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "Nutrient\tActual\tRequired\tRatio %%\tMet\n")
	fmt.Fprintf(w, "--------\t------\t--------\t-------\t---\n")
	for _, status := range result.Nutrients {
		met := " "
		if status.Achieved {
			met = "yes"
		}
		fmt.Fprintf(w, "%s\t%.1f %s\t%.1f %s\t%.1f\t%s\n",
			status.Display, status.Actual, status.Unit, status.Required, status.Unit, status.Ratio, met)
	}
	w.Flush()
}
