package training

import (
	"math"
	"sort"

	"github.com/gymdesk/gymdesk/internal/catalog"
)

// round rounds half-up to the nearest integer.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// ExerciseVolume returns sets * reps * weight for one entry, unrounded.
// A reps range like "8-12" counts its lower bound; callers round for
// display only.
func ExerciseVolume(entry DayExerciseEntry) float64 {
	reps, _ := ParseRepsRange(entry.Reps)
	return float64(entry.Sets) * float64(reps) * entry.WeightKg
}

// DayTotalVolume sums ExerciseVolume over all exercises in a day.
func DayTotalVolume(day WorkoutDayDraft) float64 {
	total := 0.0
	for _, entry := range day.Exercises {
		total += ExerciseVolume(entry)
	}
	return total
}

// DayTotalSets sums the set counts of all exercises in a day.
func DayTotalSets(day WorkoutDayDraft) int {
	total := 0
	for _, entry := range day.Exercises {
		total += entry.Sets
	}
	return total
}

// ProgramTotalVolume sums DayTotalVolume over all days in the program.
func ProgramTotalVolume(program WorkoutProgramDraft) float64 {
	total := 0.0
	for _, day := range program.Days {
		total += DayTotalVolume(day)
	}
	return total
}

// MuscleLoad is one muscle's share of a day's effective set total.
type MuscleLoad struct {
	MuscleName     string
	Sets           float64
	PercentOfTotal int
}

// MuscleDistribution attributes each exercise's sets to its primary and
// secondary muscles weighted by contribution percent, then expresses every
// muscle's effective set total as a share of the day's grand total, sorted
// descending. Contribution percents are taken as-is; they are not
// normalized to sum to 100. Entries missing from the catalog are skipped.
func MuscleDistribution(idx *catalog.ExerciseIndex, day WorkoutDayDraft) []MuscleLoad {
	setsByMuscle := make(map[string]float64)
	for _, entry := range day.Exercises {
		ex, ok := idx.Lookup(entry.ExerciseID)
		if !ok {
			continue
		}
		sets := float64(entry.Sets)
		setsByMuscle[ex.PrimaryMuscleName] += sets * ex.PrimaryMuscleContributionPercent / 100
		for _, sec := range ex.SecondaryMuscles {
			setsByMuscle[sec.MuscleName] += sets * sec.ContributionPercent / 100
		}
	}

	grandTotal := 0.0
	for _, sets := range setsByMuscle {
		grandTotal += sets
	}

	loads := make([]MuscleLoad, 0, len(setsByMuscle))
	for muscle, sets := range setsByMuscle {
		percent := 0
		if grandTotal > 0 {
			percent = round(sets / grandTotal * 100)
		}
		loads = append(loads, MuscleLoad{MuscleName: muscle, Sets: sets, PercentOfTotal: percent})
	}

	sort.Slice(loads, func(i, j int) bool {
		if loads[i].PercentOfTotal != loads[j].PercentOfTotal {
			return loads[i].PercentOfTotal > loads[j].PercentOfTotal
		}
		return loads[i].MuscleName < loads[j].MuscleName
	})
	return loads
}

// Trend classifies an exercise's volume relative to the previous entry in
// the same day.
type Trend string

const (
	TrendFirst    Trend = "first"
	TrendIncrease Trend = "increase"
	TrendDecrease Trend = "decrease"
	TrendStable   Trend = "stable"
)

// DayIntensityTrends returns one trend per exercise entry, comparing each
// entry's volume against the one before it. The first entry is always
// TrendFirst.
func DayIntensityTrends(day WorkoutDayDraft) []Trend {
	trends := make([]Trend, len(day.Exercises))
	for i, entry := range day.Exercises {
		if i == 0 {
			trends[i] = TrendFirst
			continue
		}
		current := ExerciseVolume(entry)
		previous := ExerciseVolume(day.Exercises[i-1])
		switch {
		case current > previous:
			trends[i] = TrendIncrease
		case current < previous:
			trends[i] = TrendDecrease
		default:
			trends[i] = TrendStable
		}
	}
	return trends
}
