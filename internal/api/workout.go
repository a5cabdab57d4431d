package api

import (
	"context"
	"net/http"
)

// ProgramBody is the backend's workout program payload.
type ProgramBody struct {
	ClientID      string `json:"clientId"`
	Name          string `json:"name"`
	StartDate     string `json:"startDate"`
	DurationWeeks int    `json:"durationWeeks"`
	Goal          string `json:"goal"`
	Difficulty    string `json:"difficulty"`
}

// RoutineBody is the backend's payload for a workout day ("routine" is the
// backend term).
type RoutineBody struct {
	Name      string `json:"name"`
	DayOfWeek int    `json:"dayOfWeek"`
}

// RoutineExerciseBody is the backend's payload for one exercise within a
// routine. A single reps value maps to repsMin == repsMax.
type RoutineExerciseBody struct {
	ExerciseID string  `json:"exerciseId"`
	Sets       int     `json:"sets"`
	RepsMin    int     `json:"repsMin"`
	RepsMax    int     `json:"repsMax"`
	WeightKg   float64 `json:"weightKg"`
	RestSec    int     `json:"restSec"`
}

// CreateProgram creates a workout program and returns its backend-issued ID.
func (c *Client) CreateProgram(ctx context.Context, body ProgramBody) (string, error) {
	var resp createdResponse
	if err := c.do(ctx, http.MethodPost, "/workout-programs", body, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// UpdateProgram updates an existing program.
func (c *Client) UpdateProgram(ctx context.Context, id string, body ProgramBody) error {
	return c.do(ctx, http.MethodPut, "/workout-programs/"+id, body, nil)
}

// CreateRoutine creates a routine under a program and returns its ID.
func (c *Client) CreateRoutine(ctx context.Context, programID string, body RoutineBody) (string, error) {
	var resp createdResponse
	if err := c.do(ctx, http.MethodPost, "/workout-programs/"+programID+"/routines", body, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// UpdateRoutine updates an existing routine.
func (c *Client) UpdateRoutine(ctx context.Context, id string, body RoutineBody) error {
	return c.do(ctx, http.MethodPut, "/routines/"+id, body, nil)
}

// CreateRoutineExercise creates an exercise under a routine and returns its ID.
func (c *Client) CreateRoutineExercise(ctx context.Context, routineID string, body RoutineExerciseBody) (string, error) {
	var resp createdResponse
	if err := c.do(ctx, http.MethodPost, "/routines/"+routineID+"/exercises", body, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// UpdateRoutineExercise updates an existing routine exercise.
func (c *Client) UpdateRoutineExercise(ctx context.Context, id string, body RoutineExerciseBody) error {
	return c.do(ctx, http.MethodPut, "/routine-exercises/"+id, body, nil)
}
