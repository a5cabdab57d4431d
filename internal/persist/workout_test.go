package persist

import (
	"context"
	"fmt"
	"testing"

	"github.com/gymdesk/gymdesk/internal/api"
	"github.com/gymdesk/gymdesk/internal/training"
)

type mockWorkoutAPI struct {
	calls          []string
	exerciseBodies []api.RoutineExerciseBody
	failOn         string
	nextID         int
}

func (m *mockWorkoutAPI) record(label string) error {
	m.calls = append(m.calls, label)
	if m.failOn != "" && label == m.failOn {
		return fmt.Errorf("injected failure at %s", label)
	}
	return nil
}

func (m *mockWorkoutAPI) newID(prefix string) string {
	m.nextID++
	return fmt.Sprintf("%s-%d", prefix, m.nextID)
}

func (m *mockWorkoutAPI) CreateProgram(ctx context.Context, body api.ProgramBody) (string, error) {
	if err := m.record("create program"); err != nil {
		return "", err
	}
	return m.newID("prog"), nil
}

func (m *mockWorkoutAPI) UpdateProgram(ctx context.Context, id string, body api.ProgramBody) error {
	return m.record("update program " + id)
}

func (m *mockWorkoutAPI) CreateRoutine(ctx context.Context, programID string, body api.RoutineBody) (string, error) {
	if err := m.record(fmt.Sprintf("create routine %s in %s", body.Name, programID)); err != nil {
		return "", err
	}
	return m.newID("routine"), nil
}

func (m *mockWorkoutAPI) UpdateRoutine(ctx context.Context, id string, body api.RoutineBody) error {
	return m.record("update routine " + id)
}

func (m *mockWorkoutAPI) CreateRoutineExercise(ctx context.Context, routineID string, body api.RoutineExerciseBody) (string, error) {
	if err := m.record(fmt.Sprintf("create exercise %s in %s", body.ExerciseID, routineID)); err != nil {
		return "", err
	}
	m.exerciseBodies = append(m.exerciseBodies, body)
	return m.newID("ex"), nil
}

func (m *mockWorkoutAPI) UpdateRoutineExercise(ctx context.Context, id string, body api.RoutineExerciseBody) error {
	m.exerciseBodies = append(m.exerciseBodies, body)
	return m.record("update exercise " + id)
}

func threeDayDraft() training.WorkoutProgramDraft {
	day := func(name string, dow int, ex1, ex2 string) training.WorkoutDayDraft {
		return training.WorkoutDayDraft{
			Name:      name,
			DayOfWeek: dow,
			Exercises: []training.DayExerciseEntry{
				{ExerciseID: ex1, Sets: 4, Reps: "8-12", WeightKg: 80, RestSeconds: 120},
				{ExerciseID: ex2, Sets: 3, Reps: "10", WeightKg: 40, RestSeconds: 90},
			},
		}
	}
	return training.WorkoutProgramDraft{
		ClientID:      "c1",
		Name:          "Hypertrophy Block",
		StartDate:     "2026-09-01",
		DurationWeeks: 8,
		Goal:          "hypertrophy",
		Difficulty:    "intermediate",
		Days: []training.WorkoutDayDraft{
			day("Push", 1, "bench", "ohp"),
			day("Pull", 3, "row", "curl"),
			day("Legs", 5, "squat", "rdl"),
		},
	}
}

// One parent call, then each day in array order, then that day's exercises
// in array order, strictly one at a time.
func TestProgramSaveCreatesInOrder(t *testing.T) {
	mock := &mockWorkoutAPI{}
	notifier := &recordingNotifier{}
	p := NewProgramPersister(mock, notifier)

	program := threeDayDraft()
	if err := p.Save(context.Background(), &program); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	want := []string{
		"create program",
		"create routine Push in prog-1",
		"create exercise bench in routine-2",
		"create exercise ohp in routine-2",
		"create routine Pull in prog-1",
		"create exercise row in routine-5",
		"create exercise curl in routine-5",
		"create routine Legs in prog-1",
		"create exercise squat in routine-8",
		"create exercise rdl in routine-8",
	}
	if len(mock.calls) != len(want) {
		t.Fatalf("expected %d calls, got %d: %v", len(want), len(mock.calls), mock.calls)
	}
	for i := range want {
		if mock.calls[i] != want[i] {
			t.Errorf("call %d: expected %q, got %q", i, want[i], mock.calls[i])
		}
	}

	if p.State() != StateDone {
		t.Errorf("expected state done, got %s", p.State())
	}
	if len(notifier.successes) != 1 {
		t.Errorf("expected one success toast, got %v", notifier.successes)
	}
}

// Reps translation at the wire boundary: range splits into min/max, a
// single value maps to both, garbage falls back to 12/12.
func TestProgramSaveTranslatesReps(t *testing.T) {
	mock := &mockWorkoutAPI{}
	p := NewProgramPersister(mock, nil)

	program := training.WorkoutProgramDraft{
		ClientID:  "c1",
		Name:      "Reps",
		StartDate: "2026-09-01",
		Days: []training.WorkoutDayDraft{
			{Name: "Mixed", DayOfWeek: 1, Exercises: []training.DayExerciseEntry{
				{ExerciseID: "a", Sets: 3, Reps: "8-12", WeightKg: 100, RestSeconds: 120},
				{ExerciseID: "b", Sets: 3, Reps: "10", WeightKg: 60, RestSeconds: 60},
				{ExerciseID: "c", Sets: 3, Reps: "", WeightKg: 40, RestSeconds: 60},
			}},
		},
	}
	if err := p.Save(context.Background(), &program); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	want := []struct{ min, max int }{{8, 12}, {10, 10}, {12, 12}}
	if len(mock.exerciseBodies) != len(want) {
		t.Fatalf("expected %d exercise bodies, got %d", len(want), len(mock.exerciseBodies))
	}
	for i, body := range mock.exerciseBodies {
		if body.RepsMin != want[i].min || body.RepsMax != want[i].max {
			t.Errorf("exercise %d: expected reps %d-%d, got %d-%d",
				i, want[i].min, want[i].max, body.RepsMin, body.RepsMax)
		}
	}

	// restSeconds travels as restSec
	if mock.exerciseBodies[0].RestSec != 120 {
		t.Errorf("expected restSec 120, got %d", mock.exerciseBodies[0].RestSec)
	}
}

// If the 2nd of 3 day creations fails, neither the 3rd day nor any of its
// exercises is ever attempted.
func TestProgramSaveFailureHaltsSequence(t *testing.T) {
	mock := &mockWorkoutAPI{failOn: "create routine Pull in prog-1"}
	notifier := &recordingNotifier{}
	p := NewProgramPersister(mock, notifier)

	program := threeDayDraft()
	if err := p.Save(context.Background(), &program); err == nil {
		t.Fatal("expected save to fail")
	}

	last := mock.calls[len(mock.calls)-1]
	if last != "create routine Pull in prog-1" {
		t.Errorf("expected sequence to stop at the failing call, last was %q", last)
	}
	for _, call := range mock.calls {
		if call == "create routine Legs in prog-1" {
			t.Error("third day must never be attempted")
		}
	}
	if len(mock.exerciseBodies) != 2 {
		t.Errorf("expected only the first day's exercises, got %d", len(mock.exerciseBodies))
	}

	if p.State() != StateFailed {
		t.Errorf("expected state failed, got %s", p.State())
	}
	if len(notifier.errors) != 1 {
		t.Errorf("expected exactly one failure toast, got %v", notifier.errors)
	}
}

func TestProgramSaveEditModeUsesUpdates(t *testing.T) {
	mock := &mockWorkoutAPI{}
	p := NewProgramPersister(mock, nil)

	program := threeDayDraft()
	program.ID = "prog-7"
	program.Days[0].ID = "routine-7"
	program.Days[0].Exercises[0].ID = "ex-7"

	if err := p.Save(context.Background(), &program); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if mock.calls[0] != "update program prog-7" {
		t.Errorf("expected parent update, got %q", mock.calls[0])
	}
	if mock.calls[1] != "update routine routine-7" {
		t.Errorf("expected routine update, got %q", mock.calls[1])
	}
	if mock.calls[2] != "update exercise ex-7" {
		t.Errorf("expected exercise update, got %q", mock.calls[2])
	}
	if mock.calls[3] != "create exercise ohp in routine-7" {
		t.Errorf("expected unsaved sibling created, got %q", mock.calls[3])
	}
}
