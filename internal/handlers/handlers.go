// Package handlers wires the diet engine and food catalog to the HTTP API.
package handlers

import (
	"github.com/nutriplan/diet-service/internal/catalog"
	"github.com/nutriplan/diet-service/internal/optimizer"
)

// Shared service instances (initialized by the application)
var (
	foodCatalog *catalog.Catalog
	dietEngine  *optimizer.Engine
)

// Init installs the shared catalog and engine instances.
// This should be called during application startup.
func Init(cat *catalog.Catalog, engine *optimizer.Engine) {
	foodCatalog = cat
	dietEngine = engine
}
