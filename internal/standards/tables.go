package standards

import "github.com/nutriplan/diet-service/internal/nutrient"

// ageBracket is one row of the bracket lookup table. Brackets are ordered
// and contiguous; lookups clamp to the nearest edge bracket.
type ageBracket struct {
	ID     string
	MinAge int
	MaxAge int
}

// ageBrackets spans infancy through 75+. Ages below the first bracket clamp
// to it; ages above the last clamp to the last.
var ageBrackets = []ageBracket{
	{"1-2", 1, 2},
	{"3-5", 3, 5},
	{"6-7", 6, 7},
	{"8-9", 8, 9},
	{"10-11", 10, 11},
	{"12-14", 12, 14},
	{"15-17", 15, 17},
	{"18-29", 18, 29},
	{"30-49", 30, 49},
	{"50-64", 50, 64},
	{"65-74", 65, 74},
	{"75+", 75, 120},
}

// adultBracketID is the structural-failure fallback bracket.
const adultBracketID = "18-29"

// referenceIntakes holds daily recommended intakes per gender and age bracket,
// physical activity level "moderate". Values follow the national dietary
// reference intake tables.
var referenceIntakes = map[string]map[string]nutrient.Profile{
	"male": {
		"1-2": {
			nutrient.Energy: 950, nutrient.Protein: 20,
			nutrient.Potassium: 900, nutrient.Calcium: 450, nutrient.Magnesium: 70, nutrient.Phosphorus: 500,
			nutrient.Iron: 4.5, nutrient.Zinc: 3, nutrient.Copper: 0.3,
			nutrient.VitaminA: 400, nutrient.VitaminD: 3.0, nutrient.VitaminE: 3.5, nutrient.VitaminK: 50,
			nutrient.VitaminB1: 0.5, nutrient.VitaminB2: 0.6, nutrient.Niacin: 5, nutrient.VitaminB6: 0.5,
			nutrient.VitaminB12: 0.9, nutrient.Folate: 90, nutrient.Pantothenic: 3, nutrient.VitaminC: 40,
		},
		"3-5": {
			nutrient.Energy: 1300, nutrient.Protein: 25, nutrient.Fiber: 8,
			nutrient.Potassium: 1000, nutrient.Calcium: 600, nutrient.Magnesium: 100, nutrient.Phosphorus: 700,
			nutrient.Iron: 5.5, nutrient.Zinc: 4, nutrient.Copper: 0.4,
			nutrient.VitaminA: 450, nutrient.VitaminD: 3.5, nutrient.VitaminE: 4.0, nutrient.VitaminK: 60,
			nutrient.VitaminB1: 0.7, nutrient.VitaminB2: 0.8, nutrient.Niacin: 7, nutrient.VitaminB6: 0.6,
			nutrient.VitaminB12: 1.1, nutrient.Folate: 110, nutrient.Pantothenic: 4, nutrient.VitaminC: 50,
		},
		"6-7": {
			nutrient.Energy: 1550, nutrient.Protein: 30, nutrient.Fiber: 10,
			nutrient.Potassium: 1300, nutrient.Calcium: 600, nutrient.Magnesium: 130, nutrient.Phosphorus: 900,
			nutrient.Iron: 6.5, nutrient.Zinc: 5, nutrient.Copper: 0.5,
			nutrient.VitaminA: 400, nutrient.VitaminD: 4.5, nutrient.VitaminE: 5.0, nutrient.VitaminK: 80,
			nutrient.VitaminB1: 0.8, nutrient.VitaminB2: 0.9, nutrient.Niacin: 9, nutrient.VitaminB6: 0.8,
			nutrient.VitaminB12: 1.3, nutrient.Folate: 140, nutrient.Pantothenic: 5, nutrient.VitaminC: 60,
		},
		"8-9": {
			nutrient.Energy: 1850, nutrient.Protein: 40, nutrient.Fiber: 11,
			nutrient.Potassium: 1600, nutrient.Calcium: 650, nutrient.Magnesium: 170, nutrient.Phosphorus: 1000,
			nutrient.Iron: 8.0, nutrient.Zinc: 6, nutrient.Copper: 0.6,
			nutrient.VitaminA: 500, nutrient.VitaminD: 5.0, nutrient.VitaminE: 5.5, nutrient.VitaminK: 90,
			nutrient.VitaminB1: 1.0, nutrient.VitaminB2: 1.1, nutrient.Niacin: 11, nutrient.VitaminB6: 0.9,
			nutrient.VitaminB12: 1.6, nutrient.Folate: 160, nutrient.Pantothenic: 5, nutrient.VitaminC: 70,
		},
		"10-11": {
			nutrient.Energy: 2250, nutrient.Protein: 50, nutrient.Fiber: 13,
			nutrient.Potassium: 2000, nutrient.Calcium: 700, nutrient.Magnesium: 210, nutrient.Phosphorus: 1100,
			nutrient.Iron: 10.0, nutrient.Zinc: 7, nutrient.Copper: 0.7,
			nutrient.VitaminA: 600, nutrient.VitaminD: 6.5, nutrient.VitaminE: 5.5, nutrient.VitaminK: 110,
			nutrient.VitaminB1: 1.2, nutrient.VitaminB2: 1.4, nutrient.Niacin: 13, nutrient.VitaminB6: 1.1,
			nutrient.VitaminB12: 1.9, nutrient.Folate: 190, nutrient.Pantothenic: 6, nutrient.VitaminC: 85,
		},
		"12-14": {
			nutrient.Energy: 2600, nutrient.Protein: 60, nutrient.Fiber: 17,
			nutrient.Potassium: 2400, nutrient.Calcium: 1000, nutrient.Magnesium: 290, nutrient.Phosphorus: 1200,
			nutrient.Iron: 10.0, nutrient.Zinc: 10, nutrient.Copper: 0.8,
			nutrient.VitaminA: 800, nutrient.VitaminD: 8.0, nutrient.VitaminE: 6.5, nutrient.VitaminK: 140,
			nutrient.VitaminB1: 1.4, nutrient.VitaminB2: 1.6, nutrient.Niacin: 15, nutrient.VitaminB6: 1.4,
			nutrient.VitaminB12: 2.4, nutrient.Folate: 230, nutrient.Pantothenic: 7, nutrient.VitaminC: 100,
		},
		"15-17": {
			nutrient.Energy: 2800, nutrient.Protein: 65, nutrient.Fiber: 19,
			nutrient.Potassium: 2700, nutrient.Calcium: 800, nutrient.Magnesium: 360, nutrient.Phosphorus: 1200,
			nutrient.Iron: 10.0, nutrient.Zinc: 12, nutrient.Copper: 1.0,
			nutrient.VitaminA: 900, nutrient.VitaminD: 9.0, nutrient.VitaminE: 7.0, nutrient.VitaminK: 160,
			nutrient.VitaminB1: 1.5, nutrient.VitaminB2: 1.7, nutrient.Niacin: 17, nutrient.VitaminB6: 1.5,
			nutrient.VitaminB12: 2.4, nutrient.Folate: 240, nutrient.Pantothenic: 7, nutrient.VitaminC: 100,
		},
		"18-29": {
			nutrient.Energy: 2650, nutrient.Protein: 65, nutrient.Fiber: 21,
			nutrient.Potassium: 2500, nutrient.Calcium: 800, nutrient.Magnesium: 340, nutrient.Phosphorus: 1000,
			nutrient.Iron: 7.5, nutrient.Zinc: 11, nutrient.Copper: 0.9,
			nutrient.VitaminA: 850, nutrient.VitaminD: 8.5, nutrient.VitaminE: 6.0, nutrient.VitaminK: 150,
			nutrient.VitaminB1: 1.4, nutrient.VitaminB2: 1.6, nutrient.Niacin: 15, nutrient.VitaminB6: 1.4,
			nutrient.VitaminB12: 2.4, nutrient.Folate: 240, nutrient.Pantothenic: 5, nutrient.VitaminC: 100,
		},
		"30-49": {
			nutrient.Energy: 2700, nutrient.Protein: 65, nutrient.Fiber: 21,
			nutrient.Potassium: 2500, nutrient.Calcium: 750, nutrient.Magnesium: 370, nutrient.Phosphorus: 1000,
			nutrient.Iron: 7.5, nutrient.Zinc: 11, nutrient.Copper: 0.9,
			nutrient.VitaminA: 900, nutrient.VitaminD: 8.5, nutrient.VitaminE: 6.0, nutrient.VitaminK: 150,
			nutrient.VitaminB1: 1.4, nutrient.VitaminB2: 1.6, nutrient.Niacin: 15, nutrient.VitaminB6: 1.4,
			nutrient.VitaminB12: 2.4, nutrient.Folate: 240, nutrient.Pantothenic: 5, nutrient.VitaminC: 100,
		},
		"50-64": {
			nutrient.Energy: 2600, nutrient.Protein: 65, nutrient.Fiber: 21,
			nutrient.Potassium: 2500, nutrient.Calcium: 750, nutrient.Magnesium: 370, nutrient.Phosphorus: 1000,
			nutrient.Iron: 7.5, nutrient.Zinc: 11, nutrient.Copper: 0.9,
			nutrient.VitaminA: 900, nutrient.VitaminD: 8.5, nutrient.VitaminE: 7.0, nutrient.VitaminK: 150,
			nutrient.VitaminB1: 1.3, nutrient.VitaminB2: 1.5, nutrient.Niacin: 14, nutrient.VitaminB6: 1.4,
			nutrient.VitaminB12: 2.4, nutrient.Folate: 240, nutrient.Pantothenic: 5, nutrient.VitaminC: 100,
		},
		"65-74": {
			nutrient.Energy: 2400, nutrient.Protein: 60, nutrient.Fiber: 20,
			nutrient.Potassium: 2500, nutrient.Calcium: 750, nutrient.Magnesium: 350, nutrient.Phosphorus: 1000,
			nutrient.Iron: 7.5, nutrient.Zinc: 11, nutrient.Copper: 0.9,
			nutrient.VitaminA: 850, nutrient.VitaminD: 8.5, nutrient.VitaminE: 7.0, nutrient.VitaminK: 150,
			nutrient.VitaminB1: 1.2, nutrient.VitaminB2: 1.4, nutrient.Niacin: 13, nutrient.VitaminB6: 1.4,
			nutrient.VitaminB12: 2.4, nutrient.Folate: 240, nutrient.Pantothenic: 5, nutrient.VitaminC: 100,
		},
		"75+": {
			nutrient.Energy: 2100, nutrient.Protein: 60, nutrient.Fiber: 20,
			nutrient.Potassium: 2500, nutrient.Calcium: 750, nutrient.Magnesium: 320, nutrient.Phosphorus: 1000,
			nutrient.Iron: 7.0, nutrient.Zinc: 10, nutrient.Copper: 0.8,
			nutrient.VitaminA: 800, nutrient.VitaminD: 8.5, nutrient.VitaminE: 6.5, nutrient.VitaminK: 150,
			nutrient.VitaminB1: 1.1, nutrient.VitaminB2: 1.3, nutrient.Niacin: 12, nutrient.VitaminB6: 1.4,
			nutrient.VitaminB12: 2.4, nutrient.Folate: 240, nutrient.Pantothenic: 5, nutrient.VitaminC: 100,
		},
	},
	"female": {
		"1-2": {
			nutrient.Energy: 900, nutrient.Protein: 20,
			nutrient.Potassium: 800, nutrient.Calcium: 400, nutrient.Magnesium: 70, nutrient.Phosphorus: 500,
			nutrient.Iron: 4.5, nutrient.Zinc: 3, nutrient.Copper: 0.3,
			nutrient.VitaminA: 350, nutrient.VitaminD: 3.5, nutrient.VitaminE: 3.5, nutrient.VitaminK: 50,
			nutrient.VitaminB1: 0.5, nutrient.VitaminB2: 0.5, nutrient.Niacin: 5, nutrient.VitaminB6: 0.5,
			nutrient.VitaminB12: 0.9, nutrient.Folate: 90, nutrient.Pantothenic: 3, nutrient.VitaminC: 40,
		},
		"3-5": {
			nutrient.Energy: 1250, nutrient.Protein: 25, nutrient.Fiber: 8,
			nutrient.Potassium: 1000, nutrient.Calcium: 550, nutrient.Magnesium: 100, nutrient.Phosphorus: 600,
			nutrient.Iron: 5.5, nutrient.Zinc: 4, nutrient.Copper: 0.4,
			nutrient.VitaminA: 450, nutrient.VitaminD: 3.5, nutrient.VitaminE: 4.0, nutrient.VitaminK: 60,
			nutrient.VitaminB1: 0.7, nutrient.VitaminB2: 0.8, nutrient.Niacin: 7, nutrient.VitaminB6: 0.6,
			nutrient.VitaminB12: 1.1, nutrient.Folate: 110, nutrient.Pantothenic: 4, nutrient.VitaminC: 50,
		},
		"6-7": {
			nutrient.Energy: 1450, nutrient.Protein: 30, nutrient.Fiber: 10,
			nutrient.Potassium: 1200, nutrient.Calcium: 550, nutrient.Magnesium: 130, nutrient.Phosphorus: 800,
			nutrient.Iron: 6.5, nutrient.Zinc: 5, nutrient.Copper: 0.5,
			nutrient.VitaminA: 400, nutrient.VitaminD: 5.0, nutrient.VitaminE: 5.0, nutrient.VitaminK: 80,
			nutrient.VitaminB1: 0.8, nutrient.VitaminB2: 0.9, nutrient.Niacin: 8, nutrient.VitaminB6: 0.7,
			nutrient.VitaminB12: 1.3, nutrient.Folate: 140, nutrient.Pantothenic: 5, nutrient.VitaminC: 60,
		},
		"8-9": {
			nutrient.Energy: 1700, nutrient.Protein: 40, nutrient.Fiber: 11,
			nutrient.Potassium: 1500, nutrient.Calcium: 750, nutrient.Magnesium: 160, nutrient.Phosphorus: 900,
			nutrient.Iron: 8.5, nutrient.Zinc: 5, nutrient.Copper: 0.5,
			nutrient.VitaminA: 500, nutrient.VitaminD: 6.0, nutrient.VitaminE: 5.5, nutrient.VitaminK: 90,
			nutrient.VitaminB1: 0.9, nutrient.VitaminB2: 1.0, nutrient.Niacin: 10, nutrient.VitaminB6: 0.9,
			nutrient.VitaminB12: 1.6, nutrient.Folate: 160, nutrient.Pantothenic: 5, nutrient.VitaminC: 70,
		},
		"10-11": {
			nutrient.Energy: 2100, nutrient.Protein: 50, nutrient.Fiber: 13,
			nutrient.Potassium: 1900, nutrient.Calcium: 750, nutrient.Magnesium: 220, nutrient.Phosphorus: 1000,
			nutrient.Iron: 10.0, nutrient.Zinc: 7, nutrient.Copper: 0.7,
			nutrient.VitaminA: 600, nutrient.VitaminD: 8.0, nutrient.VitaminE: 5.5, nutrient.VitaminK: 110,
			nutrient.VitaminB1: 1.1, nutrient.VitaminB2: 1.3, nutrient.Niacin: 12, nutrient.VitaminB6: 1.1,
			nutrient.VitaminB12: 1.9, nutrient.Folate: 190, nutrient.Pantothenic: 6, nutrient.VitaminC: 85,
		},
		"12-14": {
			nutrient.Energy: 2400, nutrient.Protein: 55, nutrient.Fiber: 16,
			nutrient.Potassium: 2200, nutrient.Calcium: 800, nutrient.Magnesium: 290, nutrient.Phosphorus: 1000,
			nutrient.Iron: 10.0, nutrient.Zinc: 8, nutrient.Copper: 0.8,
			nutrient.VitaminA: 700, nutrient.VitaminD: 9.5, nutrient.VitaminE: 6.0, nutrient.VitaminK: 150,
			nutrient.VitaminB1: 1.3, nutrient.VitaminB2: 1.4, nutrient.Niacin: 14, nutrient.VitaminB6: 1.3,
			nutrient.VitaminB12: 2.4, nutrient.Folate: 230, nutrient.Pantothenic: 6, nutrient.VitaminC: 100,
		},
		"15-17": {
			nutrient.Energy: 2300, nutrient.Protein: 55, nutrient.Fiber: 17,
			nutrient.Potassium: 2000, nutrient.Calcium: 650, nutrient.Magnesium: 310, nutrient.Phosphorus: 900,
			nutrient.Iron: 10.5, nutrient.Zinc: 8, nutrient.Copper: 0.8,
			nutrient.VitaminA: 650, nutrient.VitaminD: 8.5, nutrient.VitaminE: 5.5, nutrient.VitaminK: 150,
			nutrient.VitaminB1: 1.2, nutrient.VitaminB2: 1.4, nutrient.Niacin: 13, nutrient.VitaminB6: 1.3,
			nutrient.VitaminB12: 2.4, nutrient.Folate: 240, nutrient.Pantothenic: 6, nutrient.VitaminC: 100,
		},
		"18-29": {
			nutrient.Energy: 2000, nutrient.Protein: 50, nutrient.Fiber: 18,
			nutrient.Potassium: 2000, nutrient.Calcium: 650, nutrient.Magnesium: 270, nutrient.Phosphorus: 800,
			nutrient.Iron: 10.5, nutrient.Zinc: 8, nutrient.Copper: 0.7,
			nutrient.VitaminA: 650, nutrient.VitaminD: 8.5, nutrient.VitaminE: 5.0, nutrient.VitaminK: 150,
			nutrient.VitaminB1: 1.1, nutrient.VitaminB2: 1.2, nutrient.Niacin: 11, nutrient.VitaminB6: 1.1,
			nutrient.VitaminB12: 2.4, nutrient.Folate: 240, nutrient.Pantothenic: 5, nutrient.VitaminC: 100,
		},
		"30-49": {
			nutrient.Energy: 2050, nutrient.Protein: 50, nutrient.Fiber: 18,
			nutrient.Potassium: 2000, nutrient.Calcium: 650, nutrient.Magnesium: 290, nutrient.Phosphorus: 800,
			nutrient.Iron: 10.5, nutrient.Zinc: 8, nutrient.Copper: 0.7,
			nutrient.VitaminA: 700, nutrient.VitaminD: 8.5, nutrient.VitaminE: 5.5, nutrient.VitaminK: 150,
			nutrient.VitaminB1: 1.1, nutrient.VitaminB2: 1.2, nutrient.Niacin: 12, nutrient.VitaminB6: 1.1,
			nutrient.VitaminB12: 2.4, nutrient.Folate: 240, nutrient.Pantothenic: 5, nutrient.VitaminC: 100,
		},
		"50-64": {
			nutrient.Energy: 1950, nutrient.Protein: 50, nutrient.Fiber: 18,
			nutrient.Potassium: 2000, nutrient.Calcium: 650, nutrient.Magnesium: 290, nutrient.Phosphorus: 800,
			nutrient.Iron: 6.5, nutrient.Zinc: 8, nutrient.Copper: 0.7,
			nutrient.VitaminA: 700, nutrient.VitaminD: 8.5, nutrient.VitaminE: 6.0, nutrient.VitaminK: 150,
			nutrient.VitaminB1: 1.0, nutrient.VitaminB2: 1.1, nutrient.Niacin: 11, nutrient.VitaminB6: 1.1,
			nutrient.VitaminB12: 2.4, nutrient.Folate: 240, nutrient.Pantothenic: 5, nutrient.VitaminC: 100,
		},
		"65-74": {
			nutrient.Energy: 1850, nutrient.Protein: 50, nutrient.Fiber: 17,
			nutrient.Potassium: 2000, nutrient.Calcium: 650, nutrient.Magnesium: 280, nutrient.Phosphorus: 800,
			nutrient.Iron: 6.0, nutrient.Zinc: 8, nutrient.Copper: 0.7,
			nutrient.VitaminA: 700, nutrient.VitaminD: 8.5, nutrient.VitaminE: 6.5, nutrient.VitaminK: 150,
			nutrient.VitaminB1: 0.9, nutrient.VitaminB2: 1.1, nutrient.Niacin: 10, nutrient.VitaminB6: 1.1,
			nutrient.VitaminB12: 2.4, nutrient.Folate: 240, nutrient.Pantothenic: 5, nutrient.VitaminC: 100,
		},
		"75+": {
			nutrient.Energy: 1650, nutrient.Protein: 50, nutrient.Fiber: 17,
			nutrient.Potassium: 2000, nutrient.Calcium: 650, nutrient.Magnesium: 260, nutrient.Phosphorus: 800,
			nutrient.Iron: 6.0, nutrient.Zinc: 8, nutrient.Copper: 0.7,
			nutrient.VitaminA: 650, nutrient.VitaminD: 8.5, nutrient.VitaminE: 6.5, nutrient.VitaminK: 150,
			nutrient.VitaminB1: 0.8, nutrient.VitaminB2: 1.0, nutrient.Niacin: 9, nutrient.VitaminB6: 1.1,
			nutrient.VitaminB12: 2.4, nutrient.Folate: 240, nutrient.Pantothenic: 5, nutrient.VitaminC: 100,
		},
	},
}

// upperLimits holds tolerable upper intake levels. Sparser than the
// requirement tables: only nutrients with known toxicity ceilings appear.
var upperLimits = map[string]map[string]nutrient.Profile{
	"male": {
		"1-2":   {nutrient.VitaminA: 600, nutrient.VitaminD: 20, nutrient.VitaminE: 150, nutrient.Iron: 25, nutrient.Zinc: 7, nutrient.Calcium: 2500},
		"3-5":   {nutrient.VitaminA: 700, nutrient.VitaminD: 30, nutrient.VitaminE: 200, nutrient.Iron: 25, nutrient.Zinc: 8, nutrient.Calcium: 2500},
		"6-7":   {nutrient.VitaminA: 950, nutrient.VitaminD: 30, nutrient.VitaminE: 300, nutrient.Iron: 30, nutrient.Zinc: 10, nutrient.Calcium: 2500},
		"8-9":   {nutrient.VitaminA: 1200, nutrient.VitaminD: 40, nutrient.VitaminE: 350, nutrient.Iron: 35, nutrient.Zinc: 12, nutrient.Calcium: 2500},
		"10-11": {nutrient.VitaminA: 1500, nutrient.VitaminD: 60, nutrient.VitaminE: 450, nutrient.Iron: 35, nutrient.Zinc: 15, nutrient.Calcium: 2500},
		"12-14": {nutrient.VitaminA: 2100, nutrient.VitaminD: 80, nutrient.VitaminE: 650, nutrient.Iron: 40, nutrient.Zinc: 23, nutrient.Calcium: 2500},
		"15-17": {nutrient.VitaminA: 2600, nutrient.VitaminD: 90, nutrient.VitaminE: 750, nutrient.Iron: 45, nutrient.Zinc: 35, nutrient.Calcium: 2500},
		"18-29": {nutrient.VitaminA: 2700, nutrient.VitaminD: 100, nutrient.VitaminE: 850, nutrient.Iron: 50, nutrient.Zinc: 40, nutrient.Calcium: 2500},
		"30-49": {nutrient.VitaminA: 2700, nutrient.VitaminD: 100, nutrient.VitaminE: 900, nutrient.Iron: 50, nutrient.Zinc: 45, nutrient.Calcium: 2500},
		"50-64": {nutrient.VitaminA: 2700, nutrient.VitaminD: 100, nutrient.VitaminE: 850, nutrient.Iron: 50, nutrient.Zinc: 45, nutrient.Calcium: 2500},
		"65-74": {nutrient.VitaminA: 2700, nutrient.VitaminD: 100, nutrient.VitaminE: 850, nutrient.Iron: 50, nutrient.Zinc: 40, nutrient.Calcium: 2500},
		"75+":   {nutrient.VitaminA: 2700, nutrient.VitaminD: 100, nutrient.VitaminE: 750, nutrient.Iron: 50, nutrient.Zinc: 40, nutrient.Calcium: 2500},
	},
	"female": {
		"1-2":   {nutrient.VitaminA: 600, nutrient.VitaminD: 20, nutrient.VitaminE: 150, nutrient.Iron: 25, nutrient.Zinc: 7, nutrient.Calcium: 2500},
		"3-5":   {nutrient.VitaminA: 700, nutrient.VitaminD: 30, nutrient.VitaminE: 200, nutrient.Iron: 25, nutrient.Zinc: 8, nutrient.Calcium: 2500},
		"6-7":   {nutrient.VitaminA: 950, nutrient.VitaminD: 30, nutrient.VitaminE: 300, nutrient.Iron: 30, nutrient.Zinc: 10, nutrient.Calcium: 2500},
		"8-9":   {nutrient.VitaminA: 1200, nutrient.VitaminD: 40, nutrient.VitaminE: 350, nutrient.Iron: 35, nutrient.Zinc: 12, nutrient.Calcium: 2500},
		"10-11": {nutrient.VitaminA: 1500, nutrient.VitaminD: 60, nutrient.VitaminE: 450, nutrient.Iron: 35, nutrient.Zinc: 15, nutrient.Calcium: 2500},
		"12-14": {nutrient.VitaminA: 2100, nutrient.VitaminD: 80, nutrient.VitaminE: 600, nutrient.Iron: 40, nutrient.Zinc: 20, nutrient.Calcium: 2500},
		"15-17": {nutrient.VitaminA: 2600, nutrient.VitaminD: 90, nutrient.VitaminE: 650, nutrient.Iron: 40, nutrient.Zinc: 30, nutrient.Calcium: 2500},
		"18-29": {nutrient.VitaminA: 2700, nutrient.VitaminD: 100, nutrient.VitaminE: 650, nutrient.Iron: 40, nutrient.Zinc: 35, nutrient.Calcium: 2500},
		"30-49": {nutrient.VitaminA: 2700, nutrient.VitaminD: 100, nutrient.VitaminE: 700, nutrient.Iron: 40, nutrient.Zinc: 35, nutrient.Calcium: 2500},
		"50-64": {nutrient.VitaminA: 2700, nutrient.VitaminD: 100, nutrient.VitaminE: 700, nutrient.Iron: 40, nutrient.Zinc: 35, nutrient.Calcium: 2500},
		"65-74": {nutrient.VitaminA: 2700, nutrient.VitaminD: 100, nutrient.VitaminE: 650, nutrient.Iron: 40, nutrient.Zinc: 35, nutrient.Calcium: 2500},
		"75+":   {nutrient.VitaminA: 2700, nutrient.VitaminD: 100, nutrient.VitaminE: 650, nutrient.Iron: 40, nutrient.Zinc: 35, nutrient.Calcium: 2500},
	},
}

// schoolLunchStandards holds the fixed per-meal school lunch targets keyed by
// coarse school bracket. Gender-independent; no upper limits are defined.
var schoolLunchStandards = map[string]nutrient.Profile{
	// Lower elementary (age <= 7). Protein target is 15% of energy at 4 kcal/g.
	"elementary_low": {
		nutrient.Energy: 530, nutrient.Protein: 530 * 0.15 / 4,
		nutrient.Calcium: 290, nutrient.Iron: 2.0,
		nutrient.VitaminA: 160, nutrient.VitaminB1: 0.3, nutrient.VitaminB2: 0.4,
		nutrient.VitaminC: 20, nutrient.Fiber: 4.0, nutrient.Magnesium: 40, nutrient.Zinc: 2.0,
	},
	// Middle elementary (8-9).
	"elementary_mid": {
		nutrient.Energy: 650, nutrient.Protein: 650 * 0.15 / 4,
		nutrient.Calcium: 350, nutrient.Iron: 3.0,
		nutrient.VitaminA: 200, nutrient.VitaminB1: 0.4, nutrient.VitaminB2: 0.4,
		nutrient.VitaminC: 25, nutrient.Fiber: 5.0, nutrient.Magnesium: 50, nutrient.Zinc: 2.0,
	},
	// Upper elementary (10-11).
	"elementary_high": {
		nutrient.Energy: 780, nutrient.Protein: 780 * 0.15 / 4,
		nutrient.Calcium: 360, nutrient.Iron: 4.0,
		nutrient.VitaminA: 240, nutrient.VitaminB1: 0.5, nutrient.VitaminB2: 0.5,
		nutrient.VitaminC: 30, nutrient.Fiber: 5.5, nutrient.Magnesium: 70, nutrient.Zinc: 2.0,
	},
	// Junior high (12+).
	"junior_high": {
		nutrient.Energy: 830, nutrient.Protein: 830 * 0.15 / 4,
		nutrient.Calcium: 450, nutrient.Iron: 4.5,
		nutrient.VitaminA: 300, nutrient.VitaminB1: 0.5, nutrient.VitaminB2: 0.6,
		nutrient.VitaminC: 35, nutrient.Fiber: 7.0, nutrient.Magnesium: 120, nutrient.Zinc: 3.0,
	},
}
