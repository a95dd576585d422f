// Package nutrient defines the closed vocabulary of nutrients the service
// optimizes over, along with their units, display names and categories.
package nutrient

// Key identifies a single nutrient. The set of keys is closed and static;
// catalog rows and requirement tables may only reference keys defined here.
type Key string

const (
	Energy       Key = "energy_kcal"
	Protein      Key = "protein_g"
	Fat          Key = "fat_g"
	Carbohydrate Key = "carbohydrate_g"
	Fiber        Key = "fiber_g"
	Potassium    Key = "potassium_mg"
	Calcium      Key = "calcium_mg"
	Magnesium    Key = "magnesium_mg"
	Phosphorus   Key = "phosphorus_mg"
	Iron         Key = "iron_mg"
	Zinc         Key = "zinc_mg"
	Copper       Key = "copper_mg"
	VitaminA     Key = "vitamin_a_ug"
	VitaminD     Key = "vitamin_d_ug"
	VitaminE     Key = "vitamin_e_mg"
	VitaminK     Key = "vitamin_k_ug"
	VitaminB1    Key = "vitamin_b1_mg"
	VitaminB2    Key = "vitamin_b2_mg"
	Niacin       Key = "niacin_mg"
	VitaminB6    Key = "vitamin_b6_mg"
	VitaminB12   Key = "vitamin_b12_ug"
	Folate       Key = "folate_ug"
	Pantothenic  Key = "pantothenic_mg"
	VitaminC     Key = "vitamin_c_mg"
)

// Unit is the measurement unit a nutrient value is expressed in.
type Unit string

const (
	UnitKcal      Unit = "kcal"
	UnitGram      Unit = "g"
	UnitMilligram Unit = "mg"
	UnitMicrogram Unit = "ug"
)

// Category groups nutrients for strategy weighting.
type Category int

const (
	CategoryCalorie Category = iota
	CategoryProtein
	CategoryVitamin
	CategoryMineral
	CategoryOther
)

// Info holds the static metadata for a nutrient key.
type Info struct {
	Unit     Unit
	Display  string
	Category Category
}

var registry = map[Key]Info{
	Energy:       {UnitKcal, "Energy", CategoryCalorie},
	Protein:      {UnitGram, "Protein", CategoryProtein},
	Fat:          {UnitGram, "Fat", CategoryOther},
	Carbohydrate: {UnitGram, "Carbohydrate", CategoryOther},
	Fiber:        {UnitGram, "Dietary fiber", CategoryOther},
	Potassium:    {UnitMilligram, "Potassium", CategoryMineral},
	Calcium:      {UnitMilligram, "Calcium", CategoryMineral},
	Magnesium:    {UnitMilligram, "Magnesium", CategoryMineral},
	Phosphorus:   {UnitMilligram, "Phosphorus", CategoryMineral},
	Iron:         {UnitMilligram, "Iron", CategoryMineral},
	Zinc:         {UnitMilligram, "Zinc", CategoryMineral},
	Copper:       {UnitMilligram, "Copper", CategoryMineral},
	VitaminA:     {UnitMicrogram, "Vitamin A", CategoryVitamin},
	VitaminD:     {UnitMicrogram, "Vitamin D", CategoryVitamin},
	VitaminE:     {UnitMilligram, "Vitamin E", CategoryVitamin},
	VitaminK:     {UnitMicrogram, "Vitamin K", CategoryVitamin},
	VitaminB1:    {UnitMilligram, "Vitamin B1", CategoryVitamin},
	VitaminB2:    {UnitMilligram, "Vitamin B2", CategoryVitamin},
	Niacin:       {UnitMilligram, "Niacin", CategoryVitamin},
	VitaminB6:    {UnitMilligram, "Vitamin B6", CategoryVitamin},
	VitaminB12:   {UnitMicrogram, "Vitamin B12", CategoryVitamin},
	Folate:       {UnitMicrogram, "Folate", CategoryVitamin},
	Pantothenic:  {UnitMilligram, "Pantothenic acid", CategoryVitamin},
	VitaminC:     {UnitMilligram, "Vitamin C", CategoryVitamin},
}

// order fixes deterministic iteration for constraint rows and result listings.
var order = []Key{
	Energy, Protein, Fat, Carbohydrate, Fiber,
	Potassium, Calcium, Magnesium, Phosphorus, Iron, Zinc, Copper,
	VitaminA, VitaminD, VitaminE, VitaminK,
	VitaminB1, VitaminB2, Niacin, VitaminB6, VitaminB12,
	Folate, Pantothenic, VitaminC,
}

// All returns every nutrient key in canonical order.
func All() []Key {
	keys := make([]Key, len(order))
	copy(keys, order)
	return keys
}

// Lookup returns the metadata for a key and whether the key is known.
func Lookup(k Key) (Info, bool) {
	info, ok := registry[k]
	return info, ok
}

// Valid reports whether k belongs to the closed vocabulary.
func Valid(k Key) bool {
	_, ok := registry[k]
	return ok
}

// UnitOf returns the unit for a key, or the empty unit for unknown keys.
func (k Key) UnitOf() Unit {
	return registry[k].Unit
}

// DisplayName returns the human-readable name for a key, falling back to
// the raw key string for unknown keys.
func (k Key) DisplayName() string {
	if info, ok := registry[k]; ok {
		return info.Display
	}
	return string(k)
}

// CategoryOf returns the weighting category for a key.
func (k Key) CategoryOf() Category {
	if info, ok := registry[k]; ok {
		return info.Category
	}
	return CategoryOther
}

// Profile maps nutrient keys to amounts. It is used both for requirement
// targets and for tolerable upper limits; absent keys mean "no target".
type Profile map[Key]float64

// Clone returns an independent copy of the profile.
func (p Profile) Clone() Profile {
	out := make(Profile, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Scale returns a new profile with every value multiplied by factor.
func (p Profile) Scale(factor float64) Profile {
	out := make(Profile, len(p))
	for k, v := range p {
		out[k] = v * factor
	}
	return out
}

// Keys returns the profile's keys in canonical order. Keys outside the
// canonical order (which Valid() would reject) are omitted.
func (p Profile) Keys() []Key {
	keys := make([]Key, 0, len(p))
	for _, k := range order {
		if _, ok := p[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}
