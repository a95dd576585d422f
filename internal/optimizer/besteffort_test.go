package optimizer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriplan/diet-service/internal/catalog"
	"github.com/nutriplan/diet-service/internal/nutrient"
)

func TestBestEffortNeverEmpty(t *testing.T) {
	e := bareEngine()
	sel := mustSelection(t, twoFoodCatalog(), nil, nil, 1000)

	res := e.runBestEffort(sel, nutrient.Profile{nutrient.Energy: 2000}, math.Inf(1))
	require.True(t, res.Success)
	assert.NotEmpty(t, res.Amounts)
	assert.Greater(t, totalWeight(res.Amounts), 0.0)
}

func TestBestEffortRespectsWeightCap(t *testing.T) {
	e := bareEngine()
	sel := mustSelection(t, twoFoodCatalog(), nil, nil, 250)

	res := e.runBestEffort(sel, nutrient.Profile{nutrient.Energy: 2000}, math.Inf(1))
	require.True(t, res.Success)
	assert.LessOrEqual(t, totalWeight(res.Amounts), 250+1e-6)
}

func TestBestEffortRespectsBudget(t *testing.T) {
	e := bareEngine()
	sel := mustSelection(t, twoFoodCatalog(), nil, nil, 1000)

	res := e.runBestEffort(sel, nutrient.Profile{nutrient.Energy: 2000}, 25)
	require.True(t, res.Success)
	assert.NotEmpty(t, res.Amounts)
	assert.LessOrEqual(t, res.TotalCost, 25+1e-6)
}

func TestBestEffortPrefersNutrientDensePerPrice(t *testing.T) {
	foods := []catalog.Food{
		testFood("dense", 50, nutrient.Profile{nutrient.Energy: 400, nutrient.Protein: 30}),
		testFood("thin", 50, nutrient.Profile{nutrient.Energy: 50}),
	}
	e := bareEngine()
	sel := mustSelection(t, foods, nil, nil, 150)

	res := e.runBestEffort(sel, nutrient.Profile{nutrient.Energy: 2000}, math.Inf(1))
	require.True(t, res.Success)
	// With only 150g of room the first full step goes to the denser food.
	assert.GreaterOrEqual(t, res.Amounts["dense"], res.Amounts["thin"])
	assert.Equal(t, 100.0, res.Amounts["dense"])
}

func TestBestEffortAppliesPinsFirst(t *testing.T) {
	e := bareEngine()
	sel := mustSelection(t, twoFoodCatalog(),
		map[string]float64{"A": 80},
		map[string]float64{"B": 60}, 1000)

	res := e.runBestEffort(sel, nutrient.Profile{nutrient.Energy: 2000}, math.Inf(1))
	require.True(t, res.Success)
	assert.Equal(t, 80.0, res.Amounts["A"])
	assert.GreaterOrEqual(t, res.Amounts["B"], 60.0)
}

func TestBestEffortSkipsIncrementsBelowMinimum(t *testing.T) {
	// Budget 0.30 buys 6g of B (0.05/g), below the 10g minimum increment,
	// so the greedy loop adds nothing beyond the final guarantee.
	e := bareEngine()
	sel := mustSelection(t, twoFoodCatalog(), nil, nil, 1000)

	res := e.runBestEffort(sel, nutrient.Profile{nutrient.Energy: 2000}, 0.30)
	require.True(t, res.Success)
	// The non-empty guarantee still yields a sub-increment amount.
	assert.NotEmpty(t, res.Amounts)
	assert.LessOrEqual(t, res.TotalCost, 0.30+1e-6)
}

func TestBestEffortZeroPriceScoresZero(t *testing.T) {
	free := testFood("free", 0, nutrient.Profile{nutrient.Energy: 900})
	paid := testFood("paid", 10, nutrient.Profile{nutrient.Energy: 100})
	assert.Equal(t, 0.0, greedyScore(&free))
	assert.Greater(t, greedyScore(&paid), 0.0)
}
