package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutriplan/diet-service/internal/optimizer"
	"github.com/nutriplan/diet-service/internal/standards"
)

// ScoringParams tunes the custom_score strategy objective
type ScoringParams struct {
	DeficitPenalty float64 `json:"deficitPenalty"`
	CostBonus      float64 `json:"costBonus"`
	CalorieWeight  float64 `json:"calorieWeight"`
	ProteinWeight  float64 `json:"proteinWeight"`
	VitaminWeight  float64 `json:"vitaminWeight"`
	MineralWeight  float64 `json:"mineralWeight"`
}

// OptimizeRequest represents the diet optimization request
type OptimizeRequest struct {
	Foods          []string           `json:"foods" binding:"required,min=1"`
	FixedAmounts   map[string]float64 `json:"fixedAmounts,omitempty"`
	MinimumAmounts map[string]float64 `json:"minimumAmounts,omitempty"`
	MaxFoodAmountG float64            `json:"maxFoodAmountG,omitempty"`
	Strategy       string             `json:"strategy,omitempty"`
	Scoring        *ScoringParams     `json:"scoring,omitempty"`
	MaxCost        float64            `json:"maxCost,omitempty"`
	Age            int                `json:"age" binding:"required,min=1,max=150"`
	Gender         string             `json:"gender,omitempty"`
	MealScope      string             `json:"mealScope,omitempty"`
}

// Optimize handles diet optimization
// POST /api/optimize
func Optimize(c *gin.Context) {
	var req OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if foodCatalog == nil || dietEngine == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service not initialized"})
		return
	}
	if !foodCatalog.IsHealthy(c.Request.Context()) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "food catalog not loaded"})
		return
	}

	engineReq := &optimizer.Request{
		Foods:          req.Foods,
		FixedAmounts:   req.FixedAmounts,
		MinimumAmounts: req.MinimumAmounts,
		MaxFoodAmountG: req.MaxFoodAmountG,
		Strategy:       optimizer.Strategy(req.Strategy),
		MaxCost:        req.MaxCost,
		Age:            req.Age,
		Gender:         req.Gender,
		MealScope:      standards.MealScope(req.MealScope),
	}
	if req.Scoring != nil {
		engineReq.Scoring = &optimizer.ScoringParams{
			DeficitPenalty: req.Scoring.DeficitPenalty,
			CostBonus:      req.Scoring.CostBonus,
			CalorieWeight:  req.Scoring.CalorieWeight,
			ProteinWeight:  req.Scoring.ProteinWeight,
			VitaminWeight:  req.Scoring.VitaminWeight,
			MineralWeight:  req.Scoring.MineralWeight,
		}
	}

	result, err := dietEngine.Optimize(c.Request.Context(), engineReq)
	if err != nil {
		var invalid optimizer.ErrInvalidRequest
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Infeasibility is an expected outcome, not an HTTP error.
	c.JSON(http.StatusOK, result)
}
