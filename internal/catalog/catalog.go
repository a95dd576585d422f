// Package catalog provides the read-only table of priced, nutrient-annotated
// foods that optimization requests select from.
//
// The catalog is loaded once and shared across requests. Snapshots are
// immutable; a reload builds a fresh snapshot off to the side and swaps it in
// atomically, so concurrent readers never observe a partially loaded table.
package catalog

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/nutriplan/diet-service/internal/nutrient"
)

// Food is a single immutable catalog row. Nutrient values are per 100 g;
// missing nutrients are treated as zero.
type Food struct {
	Name            string
	PricePer100g    float64
	Nutrients       nutrient.Profile
	SourcePrice     string
	SourceNutrition string
}

// NutrientPer100g returns the per-100g value for a nutrient, zero if absent.
func (f *Food) NutrientPer100g(k nutrient.Key) float64 {
	return f.Nutrients[k]
}

// NutrientPerGram returns the per-gram value for a nutrient.
func (f *Food) NutrientPerGram(k nutrient.Key) float64 {
	return f.Nutrients[k] / 100
}

// PricePerGram returns the per-gram price.
func (f *Food) PricePerGram() float64 {
	return f.PricePer100g / 100
}

// Loader produces a full catalog table from some backing source.
type Loader interface {
	Load(ctx context.Context) ([]Food, error)
}

// snapshot is an immutable view of the loaded table.
type snapshot struct {
	foods    []Food
	byName   map[string]int
	loadedAt time.Time
}

// Catalog is the shared catalog service. It is constructed explicitly and
// injected into its consumers; there is no package-level instance.
type Catalog struct {
	loader   Loader
	current  atomic.Value // *snapshot
	reloadSF singleflight.Group
	logger   zerolog.Logger
}

// New creates a catalog backed by the given loader. The catalog is empty
// until Load is called.
func New(loader Loader) *Catalog {
	return &Catalog{
		loader: loader,
		logger: log.With().Str("component", "catalog").Logger(),
	}
}

// Load reads the backing source and swaps in the new table. Concurrent calls
// are collapsed into a single load.
func (c *Catalog) Load(ctx context.Context) error {
	_, err, _ := c.reloadSF.Do("load", func() (interface{}, error) {
		start := time.Now()
		foods, err := c.loader.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("catalog load failed: %w", err)
		}

		byName := make(map[string]int, len(foods))
		for i := range foods {
			byName[foods[i].Name] = i
		}

		snap := &snapshot{
			foods:    foods,
			byName:   byName,
			loadedAt: time.Now(),
		}
		c.current.Store(snap)

		c.logger.Info().
			Int("foods", len(foods)).
			Dur("duration", time.Since(start)).
			Msg("Loaded catalog snapshot")
		return snap, nil
	})
	return err
}

func (c *Catalog) getSnapshot() *snapshot {
	val := c.current.Load()
	if val == nil {
		return nil
	}
	return val.(*snapshot)
}

// Lookup returns the food with the given name, if present.
func (c *Catalog) Lookup(name string) (Food, bool) {
	snap := c.getSnapshot()
	if snap == nil {
		return Food{}, false
	}
	i, ok := snap.byName[name]
	if !ok {
		return Food{}, false
	}
	return snap.foods[i], true
}

// Select returns the catalog rows matching the given names, preserving the
// request order. Unknown names are skipped.
func (c *Catalog) Select(names []string) []Food {
	snap := c.getSnapshot()
	if snap == nil {
		return nil
	}
	out := make([]Food, 0, len(names))
	for _, name := range names {
		if i, ok := snap.byName[name]; ok {
			out = append(out, snap.foods[i])
		}
	}
	return out
}

// All returns every food in the catalog in load order.
func (c *Catalog) All() []Food {
	snap := c.getSnapshot()
	if snap == nil {
		return nil
	}
	out := make([]Food, len(snap.foods))
	copy(out, snap.foods)
	return out
}

// Len returns the number of foods currently loaded.
func (c *Catalog) Len() int {
	snap := c.getSnapshot()
	if snap == nil {
		return 0
	}
	return len(snap.foods)
}

// LoadedAt returns when the current snapshot was loaded, zero if never.
func (c *Catalog) LoadedAt() time.Time {
	snap := c.getSnapshot()
	if snap == nil {
		return time.Time{}
	}
	return snap.loadedAt
}

// IsHealthy reports whether a snapshot with at least one food is available.
func (c *Catalog) IsHealthy(ctx context.Context) bool {
	snap := c.getSnapshot()
	return snap != nil && len(snap.foods) > 0
}
