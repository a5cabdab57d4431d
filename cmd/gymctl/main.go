// gymctl drives the gym backend from the command line: it loads a plan or
// program draft from a JSON file, shows the derived dashboard summary, and
// runs the sequential save. Coaches use it to script plan imports.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gymdesk/gymdesk/internal/api"
	"github.com/gymdesk/gymdesk/internal/catalog"
	"github.com/gymdesk/gymdesk/internal/config"
	"github.com/gymdesk/gymdesk/internal/dashboard"
	"github.com/gymdesk/gymdesk/internal/nutrition"
	"github.com/gymdesk/gymdesk/internal/persist"
	"github.com/gymdesk/gymdesk/internal/report"
	"github.com/gymdesk/gymdesk/internal/session"
	"github.com/gymdesk/gymdesk/internal/training"
)

// consoleNotifier is the CLI's stand-in for the SPA's toast layer.
type consoleNotifier struct{}

func (consoleNotifier) Success(msg string) { fmt.Printf("OK: %s\n", msg) }
func (consoleNotifier) Error(msg string)   { fmt.Printf("ERROR: %s\n", msg) }

func main() {
	var (
		draftPath  = flag.String("draft", "", "path to a draft JSON file")
		kind       = flag.String("kind", "diet", "draft kind: diet | program")
		save       = flag.Bool("save", false, "persist the draft to the backend")
		reportPath = flag.String("report", "", "write a report to this file (extension picks pdf/csv)")
		email      = flag.String("email", "", "login email (when API_TOKEN is not set)")
		password   = flag.String("password", "", "login password")

		// Recompute diet targets from anthropometrics before saving
		activity = flag.String("activity", "", "apply TDEE targets: sedentary|light|moderate|active|extra_active")
		weightKg = flag.Float64("weight", 0, "client weight in kg (with -activity)")
		heightCm = flag.Float64("height", 0, "client height in cm (with -activity)")
		age      = flag.Int("age", 0, "client age (with -activity)")
		gender   = flag.String("gender", "female", "client gender: male | female")
	)
	flag.Parse()

	if *draftPath == "" {
		log.Fatal("usage: gymctl -draft plan.json [-kind diet|program] [-save] [-report out.pdf]")
	}

	cfg := config.Load()
	client := api.New(cfg)
	ctx := context.Background()

	token := cfg.APIToken
	if token == "" {
		if *email == "" || *password == "" {
			log.Fatal("no API_TOKEN set; pass -email and -password to log in")
		}
		var err error
		token, err = client.Login(ctx, *email, *password)
		if err != nil {
			log.Fatalf("login failed: %v", err)
		}
	}

	sess, err := session.Parse(token)
	if err != nil {
		log.Fatalf("bad token: %v", err)
	}
	if !sess.Valid(time.Now()) {
		log.Fatal("token expired, log in again")
	}
	fmt.Printf("Signed in as %s (%s)\n", sess.UserID, sess.Role)

	notifier := consoleNotifier{}

	var targets *nutrition.Anthropometrics
	if *activity != "" {
		if _, ok := nutrition.ActivityMultipliers[*activity]; !ok {
			log.Fatalf("unknown activity level %q", *activity)
		}
		targets = &nutrition.Anthropometrics{
			WeightKg: *weightKg,
			HeightCm: *heightCm,
			Age:      *age,
			Gender:   *gender,
		}
	}

	switch *kind {
	case "diet":
		runDiet(ctx, cfg, client, sess, notifier, *draftPath, *save, *reportPath, targets, *activity)
	case "program":
		runProgram(ctx, cfg, client, sess, notifier, *draftPath, *save, *reportPath)
	default:
		log.Fatalf("unknown kind %q", *kind)
	}
}

func runDiet(ctx context.Context, cfg *config.Config, client *api.Client, sess *session.Session, notifier persist.Notifier, draftPath string, save bool, reportPath string, targets *nutrition.Anthropometrics, activity string) {
	var plan nutrition.DietPlanDraft
	loadDraft(draftPath, &plan)

	if targets != nil {
		bmr := nutrition.BMR(*targets)
		tdee := nutrition.TDEE(bmr, nutrition.ActivityMultipliers[activity])
		nutrition.ApplyTDEEToTargets(&plan, tdee)
		fmt.Printf("BMR %d kcal, TDEE %d kcal; targets updated\n", bmr, tdee)
	}

	foods, err := client.ListFoods(ctx)
	if err != nil {
		log.Fatalf("fetch foods: %v", err)
	}
	idx := catalog.NewFoodIndex(foods)
	fmt.Printf("Loaded %d foods\n", idx.Len())

	printDietSummary(dashboard.BuildDietSummary(idx, plan))

	if reportPath != "" {
		writeReport(cfg, reportPath, func(format string) ([]byte, error) {
			return report.DietPlanReport(idx, plan, format)
		})
	}

	if !save {
		return
	}
	if !sess.CanEditPlans() {
		notifier.Error("clients cannot save plans")
		os.Exit(1)
	}
	if err := plan.Validate(); err != nil {
		notifier.Error(err.Error())
		os.Exit(1)
	}

	persister := persist.NewDietPersister(client, notifier)
	if err := persister.Save(ctx, &plan); err != nil {
		os.Exit(1)
	}
	fmt.Printf("Plan saved with id %s\n", plan.ID)
}

func runProgram(ctx context.Context, cfg *config.Config, client *api.Client, sess *session.Session, notifier persist.Notifier, draftPath string, save bool, reportPath string) {
	var program training.WorkoutProgramDraft
	loadDraft(draftPath, &program)

	exercises, err := client.ListExercises(ctx)
	if err != nil {
		log.Fatalf("fetch exercises: %v", err)
	}
	idx := catalog.NewExerciseIndex(exercises)
	fmt.Printf("Loaded %d exercises\n", idx.Len())

	printProgramSummary(dashboard.BuildProgramSummary(idx, program))

	if reportPath != "" {
		writeReport(cfg, reportPath, func(format string) ([]byte, error) {
			return report.ProgramReport(idx, program, format)
		})
	}

	if !save {
		return
	}
	if !sess.CanEditPlans() {
		notifier.Error("clients cannot save programs")
		os.Exit(1)
	}
	if err := program.Validate(); err != nil {
		notifier.Error(err.Error())
		os.Exit(1)
	}

	persister := persist.NewProgramPersister(client, notifier)
	if err := persister.Save(ctx, &program); err != nil {
		os.Exit(1)
	}
	fmt.Printf("Program saved with id %s\n", program.ID)
}

func loadDraft(path string, out any) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read draft: %v", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Fatalf("parse draft: %v", err)
	}
}

func writeReport(cfg *config.Config, path string, render func(format string) ([]byte, error)) {
	format := report.FormatPDF
	if filepath.Ext(path) == ".csv" {
		format = report.FormatCSV
	}
	data, err := render(format)
	if err != nil {
		log.Fatalf("render report: %v", err)
	}
	full := filepath.Join(cfg.ReportsDir, path)
	if err := os.WriteFile(full, data, 0o644); err != nil {
		log.Fatalf("write report: %v", err)
	}
	fmt.Printf("Report written to %s\n", full)
}

func printDietSummary(s dashboard.DietSummary) {
	fmt.Printf("\n=== %s ===\n", s.PlanName)
	fmt.Printf("Target: %d kcal | from macros: %d kcal (P/C/F %d/%d/%d%%)\n",
		s.TargetCalories, s.CaloriesFromMacros, s.ProteinPercent, s.CarbsPercent, s.FatPercent)
	for _, meal := range s.Meals {
		fmt.Printf("  %-20s %5d kcal  %4dg P  %4dg C  %4dg F\n",
			meal.Name, meal.Calories, meal.Protein, meal.Carbs, meal.Fat)
	}
	fmt.Printf("Planned: %d kcal, %dg protein, %dg carbs, %dg fat\n",
		s.ConsumedCalories, s.ConsumedProtein, s.ConsumedCarbs, s.ConsumedFat)
	if s.LimitReached {
		fmt.Println("WARNING: planned intake meets or exceeds the calorie target")
	}
	fmt.Println()
}

func printProgramSummary(s dashboard.ProgramSummary) {
	fmt.Printf("\n=== %s ===\n", s.ProgramName)
	fmt.Printf("Total volume: %.0f kg\n", s.TotalVolume)
	for _, day := range s.Days {
		fmt.Printf("  %s: %d sets, %.0f kg\n", day.Name, day.Sets, day.Volume)
		for _, muscle := range day.Muscles {
			fmt.Printf("    %-15s %3d%%\n", muscle.MuscleName, muscle.PercentOfTotal)
		}
	}
	fmt.Println()
}
