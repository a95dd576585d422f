package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nutriplan/diet-service/internal/standards"
)

// RequirementEntry is one nutrient's resolved target
type RequirementEntry struct {
	Key        string  `json:"key"`
	Display    string  `json:"display"`
	Unit       string  `json:"unit"`
	Required   float64 `json:"required"`
	UpperLimit float64 `json:"upperLimit,omitempty"`
}

// RequirementsResponse is the resolved requirement profile for a demographic
type RequirementsResponse struct {
	Age       int                `json:"age"`
	Gender    string             `json:"gender"`
	MealScope string             `json:"mealScope"`
	Bracket   string             `json:"bracket"`
	Nutrients []RequirementEntry `json:"nutrients"`
}

// GetRequirements resolves a demographic profile
// GET /api/requirements?age=30&gender=female&scope=daily
func GetRequirements(c *gin.Context) {
	age, err := strconv.Atoi(c.DefaultQuery("age", ""))
	if err != nil || age < 0 || age > 150 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "age must be an integer between 0 and 150"})
		return
	}

	gender := standards.NormalizeGender(c.DefaultQuery("gender", "male"))

	scope := standards.MealScope(c.DefaultQuery("scope", string(standards.ScopeDaily)))
	switch scope {
	case standards.ScopeDaily, standards.ScopePerMeal, standards.ScopeSchoolLunch:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "scope must be daily, per_meal or school_lunch"})
		return
	}

	reqs, uppers := standards.Resolve(age, gender, scope)

	entries := make([]RequirementEntry, 0, len(reqs))
	for _, k := range reqs.Keys() {
		entries = append(entries, RequirementEntry{
			Key:        string(k),
			Display:    k.DisplayName(),
			Unit:       string(k.UnitOf()),
			Required:   reqs[k],
			UpperLimit: uppers[k],
		})
	}

	c.JSON(http.StatusOK, RequirementsResponse{
		Age:       age,
		Gender:    gender,
		MealScope: string(scope),
		Bracket:   standards.BracketID(age),
		Nutrients: entries,
	})
}
