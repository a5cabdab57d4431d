package dashboard

import (
	"testing"

	"github.com/gymdesk/gymdesk/internal/catalog"
	"github.com/gymdesk/gymdesk/internal/nutrition"
	"github.com/gymdesk/gymdesk/internal/training"
)

func TestBuildDietSummary(t *testing.T) {
	idx := catalog.NewFoodIndex([]catalog.Food{
		{ID: "chicken", CaloriesPer100g: 165, ProteinPer100g: 31, FatPer100g: 3.6},
		{ID: "rice", CaloriesPer100g: 130, ProteinPer100g: 2.7, CarbsPer100g: 28, FatPer100g: 0.3},
	})
	plan := nutrition.DietPlanDraft{
		Name:           "Cut",
		TargetCalories: 2000,
		TargetProtein:  150,
		TargetCarbs:    250,
		TargetFat:      80,
		Meals: []nutrition.MealDraft{
			{Name: "Lunch", Foods: []nutrition.MealFoodEntry{
				{FoodID: "chicken", QuantityGrams: 200},
				{FoodID: "rice", QuantityGrams: 150},
			}},
		},
	}

	s := BuildDietSummary(idx, plan)

	if s.ConsumedCalories != 525 {
		t.Errorf("expected 525 consumed kcal, got %d", s.ConsumedCalories)
	}
	if len(s.Meals) != 1 || s.Meals[0].Calories != 525 {
		t.Errorf("unexpected meal summaries: %+v", s.Meals)
	}
	if s.CaloriesFromMacros != 2320 {
		t.Errorf("expected 2320 macro kcal, got %d", s.CaloriesFromMacros)
	}
	// 600/2320=26%, 1000/2320=43%, 720/2320=31%
	if s.ProteinPercent != 26 || s.CarbsPercent != 43 || s.FatPercent != 31 {
		t.Errorf("unexpected macro split: %d/%d/%d", s.ProteinPercent, s.CarbsPercent, s.FatPercent)
	}
	if s.LimitReached {
		t.Error("limit should not be reached at 525/2000")
	}
}

func TestBuildProgramSummary(t *testing.T) {
	idx := catalog.NewExerciseIndex([]catalog.Exercise{
		{ID: "bench", PrimaryMuscleName: "Chest"},
		{ID: "row", PrimaryMuscleName: "Back"},
	})
	program := training.WorkoutProgramDraft{
		Name: "Block A",
		Days: []training.WorkoutDayDraft{
			{Name: "Upper", Exercises: []training.DayExerciseEntry{
				{ExerciseID: "bench", Sets: 4, Reps: "10", WeightKg: 80}, // 3200
				{ExerciseID: "row", Sets: 4, Reps: "10", WeightKg: 60},   // 2400
			}},
		},
	}

	s := BuildProgramSummary(idx, program)

	if s.TotalVolume != 5600 {
		t.Errorf("expected total volume 5600, got %v", s.TotalVolume)
	}
	if len(s.Days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(s.Days))
	}
	day := s.Days[0]
	if day.Sets != 8 || day.Volume != 5600 {
		t.Errorf("unexpected day summary: %+v", day)
	}
	if len(day.Muscles) != 2 || day.Muscles[0].PercentOfTotal != 50 {
		t.Errorf("unexpected muscle split: %+v", day.Muscles)
	}
	if len(day.Intensity) != 2 || day.Intensity[0] != training.TrendFirst || day.Intensity[1] != training.TrendDecrease {
		t.Errorf("unexpected intensity trends: %+v", day.Intensity)
	}
}
