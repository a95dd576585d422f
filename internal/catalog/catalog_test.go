package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriplan/diet-service/internal/nutrient"
)

type stubLoader struct {
	foods []Food
	err   error
	calls int
}

func (s *stubLoader) Load(ctx context.Context) ([]Food, error) {
	s.calls++
	return s.foods, s.err
}

func sampleFoods() []Food {
	return []Food{
		{
			Name:         "chicken breast",
			PricePer100g: 98,
			Nutrients: nutrient.Profile{
				nutrient.Energy:  108,
				nutrient.Protein: 22.3,
			},
			SourcePrice: "store-a",
		},
		{
			Name:         "white rice",
			PricePer100g: 41,
			Nutrients: nutrient.Profile{
				nutrient.Energy:        342,
				nutrient.Carbohydrate: 77.6,
			},
		},
	}
}

func TestCatalogLoadAndLookup(t *testing.T) {
	c := New(&stubLoader{foods: sampleFoods()})

	assert.False(t, c.IsHealthy(context.Background()))
	assert.Equal(t, 0, c.Len())

	require.NoError(t, c.Load(context.Background()))

	assert.True(t, c.IsHealthy(context.Background()))
	assert.Equal(t, 2, c.Len())
	assert.False(t, c.LoadedAt().IsZero())

	food, ok := c.Lookup("chicken breast")
	require.True(t, ok)
	assert.Equal(t, 98.0, food.PricePer100g)
	assert.InDelta(t, 0.223, food.NutrientPerGram(nutrient.Protein), 1e-9)
	assert.InDelta(t, 0.98, food.PricePerGram(), 1e-9)

	_, ok = c.Lookup("tofu")
	assert.False(t, ok)
}

func TestCatalogLoadError(t *testing.T) {
	c := New(&stubLoader{err: errors.New("boom")})

	err := c.Load(context.Background())
	require.Error(t, err)
	assert.False(t, c.IsHealthy(context.Background()))
}

func TestCatalogSelectPreservesOrder(t *testing.T) {
	c := New(&stubLoader{foods: sampleFoods()})
	require.NoError(t, c.Load(context.Background()))

	selected := c.Select([]string{"white rice", "tofu", "chicken breast"})
	require.Len(t, selected, 2)
	assert.Equal(t, "white rice", selected[0].Name)
	assert.Equal(t, "chicken breast", selected[1].Name)
}

func TestCatalogReloadSwapsSnapshot(t *testing.T) {
	loader := &stubLoader{foods: sampleFoods()}
	c := New(loader)
	require.NoError(t, c.Load(context.Background()))

	loader.foods = sampleFoods()[:1]
	require.NoError(t, c.Load(context.Background()))

	assert.Equal(t, 1, c.Len())
	_, ok := c.Lookup("white rice")
	assert.False(t, ok)
}

func TestParseRows(t *testing.T) {
	header := []string{"name", "price_per_100g", "energy_kcal", "protein_g", "source_price"}

	t.Run("parses nutrient columns by header", func(t *testing.T) {
		foods, err := parseRows(header, [][]string{
			{"chicken breast", "98", "108", "22.3", "store-a"},
		}, "test")
		require.NoError(t, err)
		require.Len(t, foods, 1)
		assert.Equal(t, 108.0, foods[0].Nutrients[nutrient.Energy])
		assert.Equal(t, 22.3, foods[0].Nutrients[nutrient.Protein])
		assert.Equal(t, "store-a", foods[0].SourcePrice)
	})

	t.Run("skips rows with unparsable price", func(t *testing.T) {
		foods, err := parseRows(header, [][]string{
			{"good", "98", "108", "22.3", ""},
			{"bad", "n/a", "10", "1", ""},
		}, "test")
		require.NoError(t, err)
		require.Len(t, foods, 1)
		assert.Equal(t, "good", foods[0].Name)
	})

	t.Run("last row wins on duplicate names", func(t *testing.T) {
		foods, err := parseRows(header, [][]string{
			{"rice", "41", "342", "6.1", ""},
			{"rice", "45", "342", "6.1", ""},
		}, "test")
		require.NoError(t, err)
		require.Len(t, foods, 1)
		assert.Equal(t, 45.0, foods[0].PricePer100g)
	})

	t.Run("rejects header without name column", func(t *testing.T) {
		_, err := parseRows([]string{"price_per_100g"}, nil, "test")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("rejects tables with no usable rows", func(t *testing.T) {
		_, err := parseRows(header, [][]string{{"", "98"}}, "test")
		require.Error(t, err)
	})
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"98", 98, true},
		{"1,280", 1280, true},
		{" 22.3 ", 22.3, true},
		{"108 kcal", 108, true},
		{"n/a", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, err := parseNumber(tt.input)
		if tt.ok {
			require.NoError(t, err, "input %q", tt.input)
			assert.Equal(t, tt.want, got, "input %q", tt.input)
		} else {
			assert.Error(t, err, "input %q", tt.input)
		}
	}
}
