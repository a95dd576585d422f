package standards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriplan/diet-service/internal/nutrient"
)

func TestNormalizeGender(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"female", "female"},
		{"F", "female"},
		{"Woman", "female"},
		{"w", "female"},
		{"male", "male"},
		{"m", "male"},
		{"", "male"},
		{"unknown", "male"},
		{"  Female ", "female"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeGender(tt.input), "input %q", tt.input)
	}
}

func TestBracketID(t *testing.T) {
	tests := []struct {
		age  int
		want string
	}{
		{0, "1-2"}, // clamps below the table
		{1, "1-2"},
		{2, "1-2"},
		{3, "3-5"},
		{18, "18-29"},
		{29, "18-29"},
		{30, "30-49"},
		{74, "65-74"},
		{75, "75+"},
		{120, "75+"},
		{130, "75+"}, // clamps above the table
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BracketID(tt.age), "age %d", tt.age)
	}
}

func TestResolveDaily(t *testing.T) {
	reqs, uppers := Resolve(25, "male", ScopeDaily)
	assert.Equal(t, 2650.0, reqs[nutrient.Energy])
	assert.Equal(t, 65.0, reqs[nutrient.Protein])
	assert.NotEmpty(t, uppers)

	female, _ := Resolve(25, "female", ScopeDaily)
	assert.Equal(t, 2000.0, female[nutrient.Energy])
	assert.Equal(t, 10.5, female[nutrient.Iron])
}

func TestResolvePerMealIsOneThird(t *testing.T) {
	daily, dailyUppers := Resolve(25, "male", ScopeDaily)
	meal, mealUppers := Resolve(25, "male", ScopePerMeal)

	for k, v := range daily {
		assert.InDelta(t, v/3, meal[k], 1e-9, "nutrient %s", k)
	}
	for k, v := range dailyUppers {
		assert.InDelta(t, v/3, mealUppers[k], 1e-9, "upper limit %s", k)
	}
}

func TestResolveSchoolLunch(t *testing.T) {
	reqs, uppers := Resolve(7, "female", ScopeSchoolLunch)
	assert.Equal(t, 530.0, reqs[nutrient.Energy])
	assert.InDelta(t, 530*0.15/4, reqs[nutrient.Protein], 1e-9)
	assert.Empty(t, uppers)

	// Gender is ignored for school lunch.
	other, _ := Resolve(7, "male", ScopeSchoolLunch)
	assert.Equal(t, reqs, other)

	mid, _ := Resolve(9, "male", ScopeSchoolLunch)
	assert.Equal(t, 650.0, mid[nutrient.Energy])
}

func TestResolveNeverFails(t *testing.T) {
	for _, age := range []int{0, 5, 17, 40, 200} {
		for _, gender := range []string{"male", "female", "???"} {
			for _, scope := range []MealScope{ScopeDaily, ScopePerMeal, ScopeSchoolLunch} {
				reqs, _ := Resolve(age, gender, scope)
				require.NotEmpty(t, reqs, "age=%d gender=%s scope=%s", age, gender, scope)
				assert.Greater(t, reqs[nutrient.Energy], 0.0)
			}
		}
	}
}

func TestResolveReturnsClones(t *testing.T) {
	first, _ := Resolve(25, "male", ScopeDaily)
	first[nutrient.Energy] = -1
	second, _ := Resolve(25, "male", ScopeDaily)
	assert.Equal(t, 2650.0, second[nutrient.Energy])
}

func TestBracketsOrdered(t *testing.T) {
	ids := Brackets()
	require.NotEmpty(t, ids)
	assert.Equal(t, "1-2", ids[0])
	assert.Equal(t, "75+", ids[len(ids)-1])
}
