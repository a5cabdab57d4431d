package nutrition

import (
	"math"

	"github.com/gymdesk/gymdesk/internal/catalog"
)

// Field selects which nutrient a contribution or total is computed for.
type Field string

const (
	FieldCalories Field = "calories"
	FieldProtein  Field = "protein"
	FieldCarbs    Field = "carbs"
	FieldFat      Field = "fat"
)

// Kcal per gram conversion factors for macronutrients.
const (
	KcalPerGramProtein = 4
	KcalPerGramCarbs   = 4
	KcalPerGramFat     = 9
)

// round rounds half-up to the nearest integer, matching how the totals are
// shown on screen.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

func per100g(f catalog.Food, field Field) float64 {
	switch field {
	case FieldCalories:
		return f.CaloriesPer100g
	case FieldProtein:
		return f.ProteinPer100g
	case FieldCarbs:
		return f.CarbsPer100g
	case FieldFat:
		return f.FatPer100g
	}
	return 0
}

// FoodContribution returns the rounded nutrient contribution of a quantity
// of the given food.
func FoodContribution(food catalog.Food, quantityGrams float64, field Field) int {
	return round(per100g(food, field) * quantityGrams / 100)
}

// MealTotal sums the contributions of all foods in a meal. Entries whose
// foodId is not in the catalog contribute zero; a stale reference must not
// break the running totals.
func MealTotal(idx *catalog.FoodIndex, meal MealDraft, field Field) int {
	total := 0
	for _, entry := range meal.Foods {
		food, ok := idx.Lookup(entry.FoodID)
		if !ok {
			continue
		}
		total += FoodContribution(food, entry.QuantityGrams, field)
	}
	return total
}

// PlanTotal sums MealTotal over all meals in the plan.
func PlanTotal(idx *catalog.FoodIndex, plan DietPlanDraft, field Field) int {
	total := 0
	for _, meal := range plan.Meals {
		total += MealTotal(idx, meal, field)
	}
	return total
}

// TotalCaloriesFromMacros derives calories from the plan's target macros.
// This is the editable-target figure shown next to the macro inputs, not
// the consumed total from added foods.
func TotalCaloriesFromMacros(plan DietPlanDraft) int {
	return plan.TargetProtein*KcalPerGramProtein +
		plan.TargetCarbs*KcalPerGramCarbs +
		plan.TargetFat*KcalPerGramFat
}

// MacroPercentOfCalories returns the share of total macro calories that
// grams of a macro represent. Returns 0 when the total is zero.
func MacroPercentOfCalories(grams float64, kcalPerGram float64, totalCaloriesFromMacros int) int {
	if totalCaloriesFromMacros == 0 {
		return 0
	}
	return round(grams * kcalPerGram / float64(totalCaloriesFromMacros) * 100)
}

// CalorieLimitReached reports whether the plan's consumed calories have
// met or exceeded the target. Advisory only: the UI shows a warning but
// adding further foods stays possible.
func CalorieLimitReached(idx *catalog.FoodIndex, plan DietPlanDraft) bool {
	return plan.TargetCalories > 0 && PlanTotal(idx, plan, FieldCalories) >= plan.TargetCalories
}
