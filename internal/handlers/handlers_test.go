package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriplan/diet-service/internal/catalog"
	"github.com/nutriplan/diet-service/internal/lp"
	"github.com/nutriplan/diet-service/internal/nutrient"
	"github.com/nutriplan/diet-service/internal/optimizer"
)

type fixtureLoader struct{}

func (fixtureLoader) Load(ctx context.Context) ([]catalog.Food, error) {
	return []catalog.Food{
		{
			Name:         "chicken breast",
			PricePer100g: 98,
			Nutrients:    nutrient.Profile{nutrient.Energy: 108, nutrient.Protein: 22.3},
		},
		{
			Name:         "white rice",
			PricePer100g: 41,
			Nutrients:    nutrient.Profile{nutrient.Energy: 342, nutrient.Carbohydrate: 77.6},
		},
	}, nil
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat := catalog.New(fixtureLoader{})
	require.NoError(t, cat.Load(context.Background()))
	Init(cat, optimizer.NewEngine(cat, lp.NewSimplexSolver(), optimizer.Defaults(), nil))

	router := gin.New()
	router.GET("/health", HealthCheck)
	router.GET("/api/foods", ListFoods)
	router.GET("/api/foods/:name", GetFood)
	router.GET("/api/requirements", GetRequirements)
	router.POST("/api/optimize", Optimize)
	router.POST("/internal/catalog/reload", ReloadCatalog)
	return router
}

func performJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	router := setupTestRouter(t)

	w := performJSON(router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "loaded", resp.Catalog)
	assert.Equal(t, 2, resp.Foods)
}

func TestListFoods(t *testing.T) {
	router := setupTestRouter(t)

	w := performJSON(router, http.MethodGet, "/api/foods", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Foods []FoodResponse `json:"foods"`
		Total int            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "chicken breast", resp.Foods[0].Name)
	assert.Equal(t, 108.0, resp.Foods[0].Nutrients["energy_kcal"])
}

func TestGetFood(t *testing.T) {
	router := setupTestRouter(t)

	w := performJSON(router, http.MethodGet, "/api/foods/white%20rice", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var food FoodResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &food))
	assert.Equal(t, 41.0, food.PricePer100g)

	w = performJSON(router, http.MethodGet, "/api/foods/tofu", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRequirements(t *testing.T) {
	router := setupTestRouter(t)

	w := performJSON(router, http.MethodGet, "/api/requirements?age=30&gender=female&scope=daily", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp RequirementsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "female", resp.Gender)
	assert.Equal(t, "30-49", resp.Bracket)
	assert.NotEmpty(t, resp.Nutrients)

	t.Run("rejects bad age", func(t *testing.T) {
		w := performJSON(router, http.MethodGet, "/api/requirements?age=abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects bad scope", func(t *testing.T) {
		w := performJSON(router, http.MethodGet, "/api/requirements?age=30&scope=brunch", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOptimize(t *testing.T) {
	router := setupTestRouter(t)

	w := performJSON(router, http.MethodPost, "/api/optimize", OptimizeRequest{
		Foods:  []string{"chicken breast", "white rice"},
		Age:    30,
		Gender: "male",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result optimizer.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success, result.Message)
	assert.NotEmpty(t, result.Amounts)
	assert.NotEmpty(t, result.Nutrients)
}

func TestOptimizeValidation(t *testing.T) {
	router := setupTestRouter(t)

	t.Run("missing foods", func(t *testing.T) {
		w := performJSON(router, http.MethodPost, "/api/optimize", OptimizeRequest{Age: 30})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		w := performJSON(router, http.MethodPost, "/api/optimize", OptimizeRequest{
			Foods:    []string{"white rice"},
			Age:      30,
			Strategy: "frugal",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown foods are a result, not an error", func(t *testing.T) {
		w := performJSON(router, http.MethodPost, "/api/optimize", OptimizeRequest{
			Foods: []string{"tofu"},
			Age:   30,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var result optimizer.Result
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.False(t, result.Success)
	})
}

func TestReloadCatalog(t *testing.T) {
	router := setupTestRouter(t)

	w := performJSON(router, http.MethodPost, "/internal/catalog/reload", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"foods":2`)
}
