package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutriplan/diet-service/internal/database"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Catalog  string `json:"catalog"`
	Foods    int    `json:"foods"`
	Database string `json:"database"`
}

// HealthCheck handles the health check endpoint
func HealthCheck(c *gin.Context) {
	response := HealthResponse{
		Status: "ok",
	}

	if foodCatalog != nil && foodCatalog.IsHealthy(c.Request.Context()) {
		response.Catalog = "loaded"
		response.Foods = foodCatalog.Len()
	} else {
		response.Catalog = "not loaded"
		response.Status = "degraded"
	}

	// The database is optional; file-backed catalogs run without one.
	if database.Pool() != nil {
		if err := database.Status(c.Request.Context()); err != nil {
			response.Database = "disconnected"
			c.JSON(http.StatusServiceUnavailable, response)
			return
		}
		response.Database = "connected"
	} else {
		response.Database = "not configured"
	}

	if response.Status != "ok" {
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}
	c.JSON(http.StatusOK, response)
}
