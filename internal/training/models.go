package training

import "fmt"

// DayExerciseEntry is one exercise row inside a workout day. Reps is kept
// as entered: either a plain integer ("10") or a range ("8-12"). ID is
// empty until the entry has been persisted.
type DayExerciseEntry struct {
	ID          string  `json:"id,omitempty"`
	ExerciseID  string  `json:"exerciseId"`
	Sets        int     `json:"sets"`
	Reps        string  `json:"reps"`
	WeightKg    float64 `json:"weightKg"`
	RestSeconds int     `json:"restSeconds"`
}

// WorkoutDayDraft is a client-side workout day (a "routine" in backend
// terms), possibly mixing persisted and unpersisted exercise entries.
type WorkoutDayDraft struct {
	ID        string             `json:"id,omitempty"`
	Name      string             `json:"name"`
	DayOfWeek int                `json:"dayOfWeek"`
	Exercises []DayExerciseEntry `json:"exercises"`
}

// WorkoutProgramDraft is the editable client-side workout program.
type WorkoutProgramDraft struct {
	ID            string            `json:"id,omitempty"`
	ClientID      string            `json:"clientId"`
	Name          string            `json:"name"`
	StartDate     string            `json:"startDate"`
	DurationWeeks int               `json:"durationWeeks"`
	Goal          string            `json:"goal"`
	Difficulty    string            `json:"difficulty"`
	Days          []WorkoutDayDraft `json:"days"`
}

// Validate checks that the draft is ready to be saved. Failing validation
// blocks the save before any network call is made.
func (p *WorkoutProgramDraft) Validate() error {
	if p.ClientID == "" {
		return fmt.Errorf("clientId is required")
	}
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.StartDate == "" {
		return fmt.Errorf("startDate is required")
	}
	if len(p.Days) == 0 {
		return fmt.Errorf("program must have at least one day")
	}
	for i, day := range p.Days {
		if day.Name == "" {
			return fmt.Errorf("day[%d]: name is required", i)
		}
		for j, ex := range day.Exercises {
			if ex.ExerciseID == "" {
				return fmt.Errorf("day[%d] exercise[%d]: exerciseId is required", i, j)
			}
			if ex.Sets <= 0 {
				return fmt.Errorf("day[%d] exercise[%d]: sets must be a positive integer", i, j)
			}
			if ex.WeightKg < 0 {
				return fmt.Errorf("day[%d] exercise[%d]: weight must be non-negative", i, j)
			}
			if ex.RestSeconds < 0 {
				return fmt.Errorf("day[%d] exercise[%d]: rest must be non-negative", i, j)
			}
		}
	}
	return nil
}
