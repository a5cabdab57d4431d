// Package report renders printable exports of a diet plan or workout
// program for handing to a client.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/gymdesk/gymdesk/internal/catalog"
	"github.com/gymdesk/gymdesk/internal/dashboard"
	"github.com/gymdesk/gymdesk/internal/nutrition"
	"github.com/gymdesk/gymdesk/internal/training"
)

const (
	FormatPDF = "pdf"
	FormatCSV = "csv"
)

// DietPlanReport renders the plan with its derived totals in the requested
// format.
func DietPlanReport(idx *catalog.FoodIndex, plan nutrition.DietPlanDraft, format string) ([]byte, error) {
	summary := dashboard.BuildDietSummary(idx, plan)
	switch format {
	case FormatPDF:
		return dietPlanPDF(summary)
	case FormatCSV:
		return dietPlanCSV(summary)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// ProgramReport renders the program with its derived training load in the
// requested format.
func ProgramReport(idx *catalog.ExerciseIndex, program training.WorkoutProgramDraft, format string) ([]byte, error) {
	summary := dashboard.BuildProgramSummary(idx, program)
	switch format {
	case FormatPDF:
		return programPDF(summary)
	case FormatCSV:
		return programCSV(summary)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func dietPlanPDF(s dashboard.DietSummary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Diet Plan: %s", s.PlanName))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Target: %d kcal (%d from macros, P/C/F %d/%d/%d%%)",
		s.TargetCalories, s.CaloriesFromMacros, s.ProteinPercent, s.CarbsPercent, s.FatPercent))
	pdf.Ln(8)
	pdf.Cell(0, 7, fmt.Sprintf("Planned intake: %d kcal, %dg protein, %dg carbs, %dg fat",
		s.ConsumedCalories, s.ConsumedProtein, s.ConsumedCarbs, s.ConsumedFat))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 11)
	widths := []float64{60, 30, 30, 30, 30}
	for i, h := range []string{"Meal", "Kcal", "Protein", "Carbs", "Fat"} {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, meal := range s.Meals {
		cells := []string{
			meal.Name,
			strconv.Itoa(meal.Calories),
			strconv.Itoa(meal.Protein),
			strconv.Itoa(meal.Carbs),
			strconv.Itoa(meal.Fat),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 7, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if s.LimitReached {
		pdf.Ln(4)
		pdf.SetFont("Arial", "I", 10)
		pdf.Cell(0, 7, "Note: planned intake meets or exceeds the calorie target.")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func dietPlanCSV(s dashboard.DietSummary) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"meal", "calories", "protein_g", "carbs_g", "fat_g"}); err != nil {
		return nil, err
	}
	for _, meal := range s.Meals {
		row := []string{
			meal.Name,
			strconv.Itoa(meal.Calories),
			strconv.Itoa(meal.Protein),
			strconv.Itoa(meal.Carbs),
			strconv.Itoa(meal.Fat),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func programPDF(s dashboard.ProgramSummary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Workout Program: %s", s.ProgramName))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Total volume: %.0f kg", s.TotalVolume))
	pdf.Ln(10)

	for _, day := range s.Days {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, fmt.Sprintf("%s - %d sets, %.0f kg volume", day.Name, day.Sets, day.Volume))
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 10)
		for _, muscle := range day.Muscles {
			pdf.Cell(0, 6, fmt.Sprintf("  %s: %d%%", muscle.MuscleName, muscle.PercentOfTotal))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func programCSV(s dashboard.ProgramSummary) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"day", "sets", "volume_kg", "top_muscle", "top_muscle_percent"}); err != nil {
		return nil, err
	}
	for _, day := range s.Days {
		topMuscle, topPercent := "", 0
		if len(day.Muscles) > 0 {
			topMuscle = day.Muscles[0].MuscleName
			topPercent = day.Muscles[0].PercentOfTotal
		}
		row := []string{
			day.Name,
			strconv.Itoa(day.Sets),
			fmt.Sprintf("%.0f", day.Volume),
			topMuscle,
			strconv.Itoa(topPercent),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
