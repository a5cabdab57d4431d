package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gymdesk/gymdesk/internal/catalog"
	"github.com/gymdesk/gymdesk/internal/nutrition"
	"github.com/gymdesk/gymdesk/internal/training"
)

func testPlan() (*catalog.FoodIndex, nutrition.DietPlanDraft) {
	idx := catalog.NewFoodIndex([]catalog.Food{
		{ID: "chicken", CaloriesPer100g: 165, ProteinPer100g: 31},
	})
	plan := nutrition.DietPlanDraft{
		Name:           "Cut",
		TargetCalories: 2000,
		Meals: []nutrition.MealDraft{
			{Name: "Lunch", Foods: []nutrition.MealFoodEntry{{FoodID: "chicken", QuantityGrams: 200}}},
		},
	}
	return idx, plan
}

func TestDietPlanPDF(t *testing.T) {
	idx, plan := testPlan()

	data, err := DietPlanReport(idx, plan, FormatPDF)
	if err != nil {
		t.Fatalf("generate PDF: %v", err)
	}
	if len(data) < 100 {
		t.Errorf("PDF suspiciously small: %d bytes", len(data))
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("expected PDF magic header")
	}
}

func TestDietPlanCSV(t *testing.T) {
	idx, plan := testPlan()

	data, err := DietPlanReport(idx, plan, FormatCSV)
	if err != nil {
		t.Fatalf("generate CSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if lines[1] != "Lunch,330,62,0,0" {
		t.Errorf("unexpected CSV row: %q", lines[1])
	}
}

func TestProgramReportFormats(t *testing.T) {
	idx := catalog.NewExerciseIndex([]catalog.Exercise{
		{ID: "bench", PrimaryMuscleName: "Chest"},
	})
	program := training.WorkoutProgramDraft{
		Name: "Block A",
		Days: []training.WorkoutDayDraft{
			{Name: "Push", Exercises: []training.DayExerciseEntry{
				{ExerciseID: "bench", Sets: 4, Reps: "10", WeightKg: 80},
			}},
		},
	}

	pdfData, err := ProgramReport(idx, program, FormatPDF)
	if err != nil {
		t.Fatalf("generate PDF: %v", err)
	}
	if !bytes.HasPrefix(pdfData, []byte("%PDF")) {
		t.Error("expected PDF magic header")
	}

	csvData, err := ProgramReport(idx, program, FormatCSV)
	if err != nil {
		t.Fatalf("generate CSV: %v", err)
	}
	if !strings.Contains(string(csvData), "Push,4,3200,Chest,100") {
		t.Errorf("unexpected CSV: %q", string(csvData))
	}

	if _, err := ProgramReport(idx, program, "xlsx"); err == nil {
		t.Error("expected error for unsupported format")
	}
}
