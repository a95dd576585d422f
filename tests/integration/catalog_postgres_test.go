//go:build integration

package integration

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/nutriplan/diet-service/internal/catalog"
	"github.com/nutriplan/diet-service/internal/nutrient"
)

const foodsSchema = `
CREATE TABLE foods (
	name             TEXT PRIMARY KEY,
	price_per_100g   DOUBLE PRECISION NOT NULL,
	nutrients        JSONB NOT NULL DEFAULT '{}',
	source_price     TEXT NOT NULL DEFAULT '',
	source_nutrition TEXT NOT NULL DEFAULT ''
)`

func skipIfNoDocker(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if exec.CommandContext(ctx, "docker", "info").Run() != nil {
		t.Skip("Skipping test: Docker not available")
	}
}

func startPostgres(t *testing.T, ctx context.Context) *pgxpool.Pool {
	t.Helper()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("diet"),
		tcpostgres.WithUsername("diet"),
		tcpostgres.WithPassword("diet"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	connString, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, foodsSchema)
	require.NoError(t, err)

	return pool
}

func seedFoods(t *testing.T, ctx context.Context, pool *pgxpool.Pool) {
	t.Helper()

	rows := []struct {
		name      string
		price     float64
		nutrients string
	}{
		{"chicken breast", 98, `{"energy_kcal": 108, "protein_g": 22.3, "fat_g": 1.5}`},
		{"white rice", 45, `{"energy_kcal": 342, "protein_g": 6.1, "carbohydrate_g": 77.6}`},
		{"spinach", 120, `{"energy_kcal": 20, "iron_mg": 2.0, "bogus_key": 99}`},
	}
	for _, r := range rows {
		_, err := pool.Exec(ctx,
			`INSERT INTO foods (name, price_per_100g, nutrients, source_price) VALUES ($1, $2, $3, 'store survey')`,
			r.name, r.price, r.nutrients)
		require.NoError(t, err)
	}
}

func TestPostgresLoaderLoadsSeededFoods(t *testing.T) {
	skipIfNoDocker(t)

	ctx := context.Background()
	pool := startPostgres(t, ctx)
	seedFoods(t, ctx, pool)

	loader := catalog.NewPostgresLoader(pool)
	foods, err := loader.Load(ctx)
	require.NoError(t, err)
	require.Len(t, foods, 3)

	// ORDER BY name
	assert.Equal(t, "chicken breast", foods[0].Name)
	assert.Equal(t, "spinach", foods[1].Name)
	assert.Equal(t, "white rice", foods[2].Name)

	assert.Equal(t, 98.0, foods[0].PricePer100g)
	assert.Equal(t, "store survey", foods[0].SourcePrice)
	assert.Equal(t, 22.3, foods[0].Nutrients[nutrient.Protein])
}

func TestPostgresLoaderDropsUnknownNutrientKeys(t *testing.T) {
	skipIfNoDocker(t)

	ctx := context.Background()
	pool := startPostgres(t, ctx)
	seedFoods(t, ctx, pool)

	foods, err := catalog.NewPostgresLoader(pool).Load(ctx)
	require.NoError(t, err)

	var spinach *catalog.Food
	for i := range foods {
		if foods[i].Name == "spinach" {
			spinach = &foods[i]
		}
	}
	require.NotNil(t, spinach)

	assert.Equal(t, 2.0, spinach.Nutrients[nutrient.Iron])
	assert.Len(t, spinach.Nutrients, 2, "unknown jsonb keys must be dropped")
}

func TestPostgresLoaderEmptyTableFails(t *testing.T) {
	skipIfNoDocker(t)

	ctx := context.Background()
	pool := startPostgres(t, ctx)

	_, err := catalog.NewPostgresLoader(pool).Load(ctx)
	require.Error(t, err)
}

func TestCatalogReloadPicksUpPriceChange(t *testing.T) {
	skipIfNoDocker(t)

	ctx := context.Background()
	pool := startPostgres(t, ctx)
	seedFoods(t, ctx, pool)

	cat := catalog.New(catalog.NewPostgresLoader(pool))
	require.NoError(t, cat.Load(ctx))

	food, ok := cat.Lookup("white rice")
	require.True(t, ok)
	require.Equal(t, 45.0, food.PricePer100g)

	_, err := pool.Exec(ctx, `UPDATE foods SET price_per_100g = 52 WHERE name = 'white rice'`)
	require.NoError(t, err)

	require.NoError(t, cat.Load(ctx))
	food, ok = cat.Lookup("white rice")
	require.True(t, ok)
	assert.Equal(t, 52.0, food.PricePer100g)
}
