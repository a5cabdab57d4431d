// Package dashboard derives the read-only summaries shown on the coach
// and client dashboards. Everything here is recomputed from the draft on
// demand; nothing is cached or stored.
package dashboard

import (
	"github.com/gymdesk/gymdesk/internal/catalog"
	"github.com/gymdesk/gymdesk/internal/nutrition"
	"github.com/gymdesk/gymdesk/internal/training"
)

// MealSummary is one meal's derived totals.
type MealSummary struct {
	Name     string
	Calories int
	Protein  int
	Carbs    int
	Fat      int
}

// DietSummary is a diet plan's derived state: consumed totals per meal and
// overall, target figures, and the macro split of the targets.
type DietSummary struct {
	PlanName         string
	Meals            []MealSummary
	ConsumedCalories int
	ConsumedProtein  int
	ConsumedCarbs    int
	ConsumedFat      int

	TargetCalories     int
	CaloriesFromMacros int
	ProteinPercent     int
	CarbsPercent       int
	FatPercent         int

	LimitReached bool
}

// BuildDietSummary computes the dashboard view of a diet plan.
func BuildDietSummary(idx *catalog.FoodIndex, plan nutrition.DietPlanDraft) DietSummary {
	s := DietSummary{
		PlanName:         plan.Name,
		ConsumedCalories: nutrition.PlanTotal(idx, plan, nutrition.FieldCalories),
		ConsumedProtein:  nutrition.PlanTotal(idx, plan, nutrition.FieldProtein),
		ConsumedCarbs:    nutrition.PlanTotal(idx, plan, nutrition.FieldCarbs),
		ConsumedFat:      nutrition.PlanTotal(idx, plan, nutrition.FieldFat),
		TargetCalories:   plan.TargetCalories,
		LimitReached:     nutrition.CalorieLimitReached(idx, plan),
	}

	s.CaloriesFromMacros = nutrition.TotalCaloriesFromMacros(plan)
	s.ProteinPercent = nutrition.MacroPercentOfCalories(float64(plan.TargetProtein), nutrition.KcalPerGramProtein, s.CaloriesFromMacros)
	s.CarbsPercent = nutrition.MacroPercentOfCalories(float64(plan.TargetCarbs), nutrition.KcalPerGramCarbs, s.CaloriesFromMacros)
	s.FatPercent = nutrition.MacroPercentOfCalories(float64(plan.TargetFat), nutrition.KcalPerGramFat, s.CaloriesFromMacros)

	for _, meal := range plan.Meals {
		s.Meals = append(s.Meals, MealSummary{
			Name:     meal.Name,
			Calories: nutrition.MealTotal(idx, meal, nutrition.FieldCalories),
			Protein:  nutrition.MealTotal(idx, meal, nutrition.FieldProtein),
			Carbs:    nutrition.MealTotal(idx, meal, nutrition.FieldCarbs),
			Fat:      nutrition.MealTotal(idx, meal, nutrition.FieldFat),
		})
	}
	return s
}

// DaySummary is one workout day's derived training load.
type DaySummary struct {
	Name      string
	Volume    float64
	Sets      int
	Muscles   []training.MuscleLoad
	Intensity []training.Trend
}

// ProgramSummary is a workout program's derived state.
type ProgramSummary struct {
	ProgramName string
	TotalVolume float64
	Days        []DaySummary
}

// BuildProgramSummary computes the dashboard view of a workout program.
func BuildProgramSummary(idx *catalog.ExerciseIndex, program training.WorkoutProgramDraft) ProgramSummary {
	s := ProgramSummary{
		ProgramName: program.Name,
		TotalVolume: training.ProgramTotalVolume(program),
	}
	for _, day := range program.Days {
		s.Days = append(s.Days, DaySummary{
			Name:      day.Name,
			Volume:    training.DayTotalVolume(day),
			Sets:      training.DayTotalSets(day),
			Muscles:   training.MuscleDistribution(idx, day),
			Intensity: training.DayIntensityTrends(day),
		})
	}
	return s
}
