package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nutriplan/diet-service/internal/standards"
)

var (
	reqAge    int
	reqGender string
	reqScope  string
)

// requirementsCmd represents the requirements command
var requirementsCmd = &cobra.Command{
	Use:   "requirements",
	Short: "Show dietary reference intakes for an age and gender",
	Long: `Show the resolved nutrient requirements and tolerable upper limits for the
given age and gender. The scope selects daily totals, one-third per-meal
portions, or school lunch standards.`,
	Example: `  diet-service requirements --age 30 --gender male
  diet-service requirements --age 8 --scope school_lunch
  diet-service requirements --age 25 --gender female --scope per_meal`,
	RunE: runRequirements,
}

func init() {
	rootCmd.AddCommand(requirementsCmd)

	requirementsCmd.Flags().IntVar(&reqAge, "age", 0, "Age in years (required)")
	requirementsCmd.Flags().StringVar(&reqGender, "gender", "male", "Gender: male or female")
	requirementsCmd.Flags().StringVar(&reqScope, "scope", "daily", "Scope: daily, per_meal, or school_lunch")
	requirementsCmd.MarkFlagRequired("age")
}

func runRequirements(cmd *cobra.Command, args []string) error {
	if reqAge < 1 {
		return fmt.Errorf("age must be at least 1")
	}

	scope := standards.MealScope(reqScope)
	switch scope {
	case standards.ScopeDaily, standards.ScopePerMeal, standards.ScopeSchoolLunch:
	default:
		return fmt.Errorf("invalid scope: %s (use daily, per_meal, or school_lunch)", reqScope)
	}

	gender := standards.NormalizeGender(reqGender)
	reqs, uppers := standards.Resolve(reqAge, gender, scope)

	fmt.Printf("\nRequirements for age %d, %s, %s (bracket %s)\n", reqAge, gender, scope, standards.BracketID(reqAge))
	fmt.Println(strings.Repeat("-", 60))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "Nutrient\tRequired\tUpper Limit\tUnit\n")
	fmt.Fprintf(w, "--------\t--------\t-----------\t----\n")
	for _, k := range reqs.Keys() {
		upper := "-"
		if u, ok := uppers[k]; ok {
			upper = fmt.Sprintf("%.2f", u)
		}
		fmt.Fprintf(w, "%s\t%.2f\t%s\t%s\n", k.DisplayName(), reqs[k], upper, k.UnitOf())
	}
	w.Flush()

	return nil
}
