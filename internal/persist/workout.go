package persist

import (
	"context"
	"fmt"

	"github.com/gymdesk/gymdesk/internal/api"
	"github.com/gymdesk/gymdesk/internal/training"
)

// WorkoutProgramAPI is the slice of the backend client the program
// persister needs.
type WorkoutProgramAPI interface {
	CreateProgram(ctx context.Context, body api.ProgramBody) (string, error)
	UpdateProgram(ctx context.Context, id string, body api.ProgramBody) error
	CreateRoutine(ctx context.Context, programID string, body api.RoutineBody) (string, error)
	UpdateRoutine(ctx context.Context, id string, body api.RoutineBody) error
	CreateRoutineExercise(ctx context.Context, routineID string, body api.RoutineExerciseBody) (string, error)
	UpdateRoutineExercise(ctx context.Context, id string, body api.RoutineExerciseBody) error
}

// ProgramPersister walks a workout program draft through the sequential
// save. Not safe for concurrent use.
type ProgramPersister struct {
	api      WorkoutProgramAPI
	notifier Notifier
	state    State
}

// NewProgramPersister creates a workout program persister.
func NewProgramPersister(apiClient WorkoutProgramAPI, notifier Notifier) *ProgramPersister {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &ProgramPersister{api: apiClient, notifier: notifier, state: StateIdle}
}

// State returns where the last save got to.
func (p *ProgramPersister) State() State {
	return p.state
}

func programBody(program *training.WorkoutProgramDraft) api.ProgramBody {
	return api.ProgramBody{
		ClientID:      program.ClientID,
		Name:          program.Name,
		StartDate:     program.StartDate,
		DurationWeeks: program.DurationWeeks,
		Goal:          program.Goal,
		Difficulty:    program.Difficulty,
	}
}

func routineBody(day training.WorkoutDayDraft) api.RoutineBody {
	return api.RoutineBody{Name: day.Name, DayOfWeek: day.DayOfWeek}
}

func routineExerciseBody(entry training.DayExerciseEntry) api.RoutineExerciseBody {
	repsMin, repsMax := training.ParseRepsRange(entry.Reps)
	return api.RoutineExerciseBody{
		ExerciseID: entry.ExerciseID,
		Sets:       entry.Sets,
		RepsMin:    repsMin,
		RepsMax:    repsMax,
		WeightKg:   entry.WeightKg,
		RestSec:    entry.RestSeconds,
	}
}

// Save persists the draft: program first, then each day ("routine") in
// order, then each day's exercises in order, every call awaited before
// the next. IDs are stamped back into the draft immediately; the first
// failure abandons the rest of the sequence without rollback.
//
// Callers run program.Validate before invoking Save; a program with zero
// days is legal here and completes after the parent call.
func (p *ProgramPersister) Save(ctx context.Context, program *training.WorkoutProgramDraft) error {
	p.state = StateSavingParent
	if program.ID == "" {
		id, err := p.api.CreateProgram(ctx, programBody(program))
		if err != nil {
			return p.fail(err)
		}
		program.ID = id
	} else {
		if err := p.api.UpdateProgram(ctx, program.ID, programBody(program)); err != nil {
			return p.fail(err)
		}
	}

	for i := range program.Days {
		p.state = StateSavingChildren
		day := &program.Days[i]
		if day.ID == "" {
			id, err := p.api.CreateRoutine(ctx, program.ID, routineBody(*day))
			if err != nil {
				return p.fail(err)
			}
			day.ID = id
		} else {
			if err := p.api.UpdateRoutine(ctx, day.ID, routineBody(*day)); err != nil {
				return p.fail(err)
			}
		}

		for j := range day.Exercises {
			p.state = StateSavingGrandchildren
			entry := &day.Exercises[j]
			if entry.ID == "" {
				id, err := p.api.CreateRoutineExercise(ctx, day.ID, routineExerciseBody(*entry))
				if err != nil {
					return p.fail(err)
				}
				entry.ID = id
			} else {
				if err := p.api.UpdateRoutineExercise(ctx, entry.ID, routineExerciseBody(*entry)); err != nil {
					return p.fail(err)
				}
			}
		}
	}

	p.state = StateDone
	p.notifier.Success("Workout program saved")
	return nil
}

func (p *ProgramPersister) fail(err error) error {
	p.state = StateFailed
	p.notifier.Error(userMessage(err))
	return fmt.Errorf("save workout program: %w", err)
}
