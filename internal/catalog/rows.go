package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/nutriplan/diet-service/internal/nutrient"
)

// Column names shared by the CSV and XLSX table formats. Any further header
// is matched against the nutrient vocabulary and ignored when unknown.
const (
	colName            = "name"
	colPricePer100g    = "price_per_100g"
	colSourcePrice     = "source_price"
	colSourceNutrition = "source_nutrition"
)

// columnMap maps lowercased header names to their column index.
type columnMap map[string]int

func buildColumnMap(header []string) (columnMap, error) {
	cols := make(columnMap, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if key == "" {
			continue
		}
		if _, dup := cols[key]; dup {
			return nil, fmt.Errorf("duplicate column %q", key)
		}
		cols[key] = i
	}
	if _, ok := cols[colName]; !ok {
		return nil, fmt.Errorf("missing required column %q", colName)
	}
	if _, ok := cols[colPricePer100g]; !ok {
		return nil, fmt.Errorf("missing required column %q", colPricePer100g)
	}
	return cols, nil
}

func (c columnMap) cell(row []string, key string) string {
	i, ok := c[key]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseRows converts header-mapped string rows into foods. Rows with an empty
// name or an unparsable price are skipped with a warning; later rows with a
// name already seen replace the earlier one.
func parseRows(header []string, rows [][]string, origin string) ([]Food, error) {
	cols, err := buildColumnMap(header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", origin, err)
	}

	logger := log.With().Str("component", "catalog").Str("origin", origin).Logger()

	byName := make(map[string]int)
	var foods []Food

	for rowNum, row := range rows {
		name := cols.cell(row, colName)
		if name == "" {
			continue
		}

		priceStr := cols.cell(row, colPricePer100g)
		price, err := parseNumber(priceStr)
		if err != nil {
			logger.Warn().
				Int("row", rowNum+2).
				Str("name", name).
				Str("price", priceStr).
				Msg("Skipping row with unparsable price")
			continue
		}

		profile := nutrient.Profile{}
		for _, key := range nutrient.All() {
			raw := cols.cell(row, string(key))
			if raw == "" {
				continue
			}
			v, err := parseNumber(raw)
			if err != nil {
				logger.Warn().
					Int("row", rowNum+2).
					Str("name", name).
					Str("nutrient", string(key)).
					Str("value", raw).
					Msg("Skipping unparsable nutrient value")
				continue
			}
			profile[key] = v
		}

		food := Food{
			Name:            name,
			PricePer100g:    price,
			Nutrients:       profile,
			SourcePrice:     cols.cell(row, colSourcePrice),
			SourceNutrition: cols.cell(row, colSourceNutrition),
		}

		if i, seen := byName[name]; seen {
			logger.Warn().
				Int("row", rowNum+2).
				Str("name", name).
				Msg("Duplicate food name, keeping the later row")
			foods[i] = food
			continue
		}
		byName[name] = len(foods)
		foods = append(foods, food)
	}

	if len(foods) == 0 {
		return nil, fmt.Errorf("%s: no usable food rows", origin)
	}
	return foods, nil
}

// parseNumber parses a decimal that may carry thousands separators or a
// trailing unit token, as exported spreadsheets often do.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	if i := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != '-' && r != '+'
	}); i > 0 {
		s = strings.TrimSpace(s[:i])
	}
	return strconv.ParseFloat(s, 64)
}
