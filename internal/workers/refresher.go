// Package workers hosts the background loops that run alongside the HTTP
// server. Currently that is the periodic catalog refresher.
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nutriplan/diet-service/internal/catalog"
)

// CatalogRefresher periodically reloads the food catalog from its source so
// long-running instances pick up price and nutrition updates without a
// restart. Reload failures keep the previous snapshot in place.
type CatalogRefresher struct {
	catalog  *catalog.Catalog
	interval time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewCatalogRefresher(cat *catalog.Catalog, interval time.Duration) *CatalogRefresher {
	if interval <= 0 {
		interval = 1 * time.Hour
	}
	return &CatalogRefresher{
		catalog:  cat,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start runs the refresh loop until Stop is called or ctx is cancelled.
func (r *CatalogRefresher) Start(ctx context.Context) {
	logger := log.With().Str("component", "catalog-refresher").Logger()
	logger.Info().
		Dur("interval", r.interval).
		Msg("Starting catalog refresher")

	r.wg.Add(1)
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Catalog refresher shutting down")
			return

		case <-r.stopChan:
			logger.Info().Msg("Catalog refresher received stop signal")
			return

		case <-ticker.C:
			start := time.Now()
			if err := r.catalog.Load(ctx); err != nil {
				logger.Error().Err(err).Msg("Catalog refresh failed, keeping previous snapshot")
				continue
			}
			logger.Info().
				Int("foods", r.catalog.Len()).
				Dur("duration", time.Since(start)).
				Msg("Catalog refreshed")
		}
	}
}

// Stop signals the loop to exit and waits for it to finish.
func (r *CatalogRefresher) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopChan)
	})
	r.wg.Wait()
}
