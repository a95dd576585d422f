package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nutriplan/diet-service/internal/catalog"
	"github.com/nutriplan/diet-service/internal/nutrient"
)

var foodsOutput string

// foodsCmd represents the foods command
var foodsCmd = &cobra.Command{
	Use:   "foods [name]",
	Short: "List catalog foods or show one food's nutrient profile",
	Long: `List the foods in the catalog with their prices, or show the full per-100g
nutrient profile of a single food when a name is given.`,
	Example: `  diet-service foods --catalog ./data/foods.csv
  diet-service foods "chicken breast" --catalog ./data/foods.xlsx
  diet-service foods --output json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFoods,
}

func init() {
	rootCmd.AddCommand(foodsCmd)

	foodsCmd.Flags().StringVar(&foodsOutput, "output", "table", "Output format: table or json")
}

func runFoods(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cat, err := loadCatalog(ctx)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		food, ok := cat.Lookup(args[0])
		if !ok {
			return fmt.Errorf("food not found: %s", args[0])
		}
		return outputFood(&food)
	}

	foods := cat.All()
	switch strings.ToLower(foodsOutput) {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(foods)
	case "table":
		outputFoodsTable(foods)
		return nil
	default:
		return fmt.Errorf("invalid output format: %s (use 'table' or 'json')", foodsOutput)
	}
}

func outputFoodsTable(foods []catalog.Food) {
	fmt.Printf("\nCatalog (%d foods)\n", len(foods))
	fmt.Println(strings.Repeat("-", 60))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "Name\tPrice/100g\tEnergy kcal\tProtein g\n")
	fmt.Fprintf(w, "----\t----------\t-----------\t---------\n")
	for i := range foods {
		f := &foods[i]
		fmt.Fprintf(w, "%s\t%.2f\t%.1f\t%.1f\n",
			f.Name,
			f.PricePer100g,
			f.NutrientPer100g(nutrient.Energy),
			f.NutrientPer100g(nutrient.Protein),
		)
	}
	w.Flush()
}

func outputFood(food *catalog.Food) error {
	if strings.ToLower(foodsOutput) == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(food)
	}

	fmt.Printf("\n%s (%.2f per 100g)\n", food.Name, food.PricePer100g)
	fmt.Println(strings.Repeat("-", 60))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "Nutrient\tPer 100g\tUnit\n")
	fmt.Fprintf(w, "--------\t--------\t----\n")
	for _, k := range nutrient.All() {
		amount, ok := food.Nutrients[k]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s\t%.2f\t%s\n", k.DisplayName(), amount, k.UnitOf())
	}
	w.Flush()
	return nil
}
