// Package standards resolves demographic inputs (age, gender, meal scope)
// into nutrient requirement and tolerable-upper-limit profiles.
package standards

import (
	"strings"

	"github.com/nutriplan/diet-service/internal/nutrient"
)

// MealScope selects which requirement table a profile is drawn from.
type MealScope string

const (
	ScopeDaily       MealScope = "daily"
	ScopePerMeal     MealScope = "per_meal"
	ScopeSchoolLunch MealScope = "school_lunch"
)

// perMealDivisor converts a daily profile into a single-meal profile.
const perMealDivisor = 3

// NormalizeGender maps free-form gender tokens to the table keys.
// Unrecognized tokens default to "male".
func NormalizeGender(gender string) string {
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "female", "f", "woman", "w":
		return "female"
	default:
		return "male"
	}
}

// BracketID maps an age to its bracket, clamping out-of-range ages to the
// nearest edge bracket.
func BracketID(age int) string {
	if age < ageBrackets[0].MinAge {
		return ageBrackets[0].ID
	}
	for _, b := range ageBrackets {
		if age >= b.MinAge && age <= b.MaxAge {
			return b.ID
		}
	}
	return ageBrackets[len(ageBrackets)-1].ID
}

// schoolBracketID maps an age to one of the four coarse school brackets.
func schoolBracketID(age int) string {
	switch {
	case age <= 7:
		return "elementary_low"
	case age <= 9:
		return "elementary_mid"
	case age <= 11:
		return "elementary_high"
	default:
		return "junior_high"
	}
}

// Resolve returns the requirement and upper-limit profiles for the given
// demographic inputs. It never fails: a structurally missing bracket falls
// back to the adult bracket, and unknown genders resolve as male.
//
// The school-lunch scope ignores gender and has no upper limits.
func Resolve(age int, gender string, scope MealScope) (nutrient.Profile, nutrient.Profile) {
	if scope == ScopeSchoolLunch {
		profile, ok := schoolLunchStandards[schoolBracketID(age)]
		if !ok {
			profile = schoolLunchStandards["junior_high"]
		}
		return profile.Clone(), nutrient.Profile{}
	}

	genderKey := NormalizeGender(gender)
	bracket := BracketID(age)

	reqs, ok := referenceIntakes[genderKey][bracket]
	if !ok {
		reqs = referenceIntakes[genderKey][adultBracketID]
	}
	uppers, ok := upperLimits[genderKey][bracket]
	if !ok {
		uppers = upperLimits[genderKey][adultBracketID]
	}

	reqs = reqs.Clone()
	uppers = uppers.Clone()

	if scope == ScopePerMeal {
		reqs = reqs.Scale(1.0 / perMealDivisor)
		uppers = uppers.Scale(1.0 / perMealDivisor)
	}

	return reqs, uppers
}

// Brackets returns the ordered age bracket identifiers, for listings.
func Brackets() []string {
	ids := make([]string, len(ageBrackets))
	for i, b := range ageBrackets {
		ids[i] = b.ID
	}
	return ids
}
