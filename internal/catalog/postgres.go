package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nutriplan/diet-service/internal/nutrient"
)

// PostgresLoader loads the catalog from the foods table. Nutrient profiles
// are stored as a jsonb object keyed by nutrient identifier.
type PostgresLoader struct {
	pool *pgxpool.Pool
}

// NewPostgresLoader returns a loader backed by the given pool. The pool's
// lifecycle is owned by the caller.
func NewPostgresLoader(pool *pgxpool.Pool) *PostgresLoader {
	return &PostgresLoader{pool: pool}
}

// Load queries the full foods table.
func (l *PostgresLoader) Load(ctx context.Context) ([]Food, error) {
	const query = `
		SELECT name, price_per_100g, nutrients, source_price, source_nutrition
		FROM foods
		ORDER BY name`

	rows, err := l.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query foods: %w", err)
	}
	defer rows.Close()

	var foods []Food
	for rows.Next() {
		var (
			food    Food
			rawJSON []byte
		)
		if err := rows.Scan(&food.Name, &food.PricePer100g, &rawJSON, &food.SourcePrice, &food.SourceNutrition); err != nil {
			return nil, fmt.Errorf("scan food row: %w", err)
		}

		values := map[string]float64{}
		if len(rawJSON) > 0 {
			if err := json.Unmarshal(rawJSON, &values); err != nil {
				return nil, fmt.Errorf("food %q: decode nutrients: %w", food.Name, err)
			}
		}
		food.Nutrients = nutrient.Profile{}
		for k, v := range values {
			key := nutrient.Key(k)
			if nutrient.Valid(key) {
				food.Nutrients[key] = v
			}
		}

		foods = append(foods, food)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate foods: %w", err)
	}
	if len(foods) == 0 {
		return nil, fmt.Errorf("foods table is empty")
	}
	return foods, nil
}
