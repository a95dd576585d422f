package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutriplan/diet-service/internal/catalog"
)

// FoodResponse represents one catalog food
type FoodResponse struct {
	Name            string             `json:"name"`
	PricePer100g    float64            `json:"pricePer100g"`
	Nutrients       map[string]float64 `json:"nutrients"`
	SourcePrice     string             `json:"sourcePrice,omitempty"`
	SourceNutrition string             `json:"sourceNutrition,omitempty"`
}

func toFoodResponse(f catalog.Food) FoodResponse {
	nutrients := make(map[string]float64, len(f.Nutrients))
	for k, v := range f.Nutrients {
		nutrients[string(k)] = v
	}
	return FoodResponse{
		Name:            f.Name,
		PricePer100g:    f.PricePer100g,
		Nutrients:       nutrients,
		SourcePrice:     f.SourcePrice,
		SourceNutrition: f.SourceNutrition,
	}
}

// ListFoods handles catalog listing
// GET /api/foods
func ListFoods(c *gin.Context) {
	if foodCatalog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog not initialized"})
		return
	}

	foods := foodCatalog.All()
	response := make([]FoodResponse, len(foods))
	for i, f := range foods {
		response[i] = toFoodResponse(f)
	}

	c.JSON(http.StatusOK, gin.H{
		"foods": response,
		"total": len(response),
	})
}

// GetFood handles a single catalog lookup
// GET /api/foods/:name
func GetFood(c *gin.Context) {
	if foodCatalog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog not initialized"})
		return
	}

	name := c.Param("name")
	food, ok := foodCatalog.Lookup(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found", "name": name})
		return
	}

	c.JSON(http.StatusOK, toFoodResponse(food))
}

// ReloadCatalog re-reads the catalog from its backing source
// POST /internal/catalog/reload
func ReloadCatalog(c *gin.Context) {
	if foodCatalog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog not initialized"})
		return
	}

	if err := foodCatalog.Load(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reload catalog: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"foods":    foodCatalog.Len(),
		"loadedAt": foodCatalog.LoadedAt(),
	})
}
