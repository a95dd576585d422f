package handlers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// TestSwaggerHandlerCreation verifies the gin-swagger wrapper can be built.
func TestSwaggerHandlerCreation(t *testing.T) {
	handler := ginSwagger.WrapHandler(swaggerFiles.Handler)
	assert.NotNil(t, handler)
}

// TestSwaggerRouteRegistration verifies the docs route registers cleanly.
func TestSwaggerRouteRegistration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	assert.NotPanics(t, func() {
		router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	})

	found := false
	for _, route := range router.Routes() {
		if route.Path == "/docs/*any" && route.Method == "GET" {
			found = true
			break
		}
	}
	assert.True(t, found, "docs route should be registered")
}
