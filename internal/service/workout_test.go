package service_test

import (
	"errors"
	"testing"

	"github.com/saadjs/fittrack-cli/internal/model"
	"github.com/saadjs/fittrack-cli/internal/service"
	"github.com/saadjs/fittrack-cli/internal/store"
)

func TestSetWorkoutPlanRejectsDuplicateDays(t *testing.T) {
	t.Parallel()

	st := store.New()
	_, err := service.SetWorkoutPlan(st, model.WorkoutPlan{Name: "Split", Workouts: []model.Workout{
		{Name: "Push", DayOfWeek: 1},
		{Name: "Pull", DayOfWeek: 1},
	}})
	if !errors.Is(err, service.ErrDuplicateWorkoutDay) {
		t.Fatalf("expected ErrDuplicateWorkoutDay, got %v", err)
	}
	if _, ok := st.Workout.CurrentPlan(); ok {
		t.Fatalf("rejected plan must not be installed")
	}

	_, err = service.SetWorkoutPlan(st, model.WorkoutPlan{Name: "Bad", Workouts: []model.Workout{{Name: "X", DayOfWeek: 7}}})
	if err == nil {
		t.Fatalf("expected error for day 7")
	}
}

func TestSetWorkoutPlanFillsIDs(t *testing.T) {
	t.Parallel()

	st := store.New()
	plan, err := service.SetWorkoutPlan(st, model.WorkoutPlan{Name: "Split", Workouts: []model.Workout{
		{ID: "push", Name: "Push", DayOfWeek: 1, Type: model.WorkoutStrength, Exercises: []model.Exercise{{Name: "Bench"}}},
		{Name: "Run", DayOfWeek: 3, Type: model.WorkoutCardio},
	}})
	if err != nil {
		t.Fatalf("set plan: %v", err)
	}
	if plan.ID == "" || plan.Workouts[1].ID == "" || plan.Workouts[0].Exercises[0].ID == "" {
		t.Fatalf("expected generated ids, got %+v", plan)
	}
	if plan.Workouts[0].ID != "push" {
		t.Fatalf("expected explicit id to be kept, got %s", plan.Workouts[0].ID)
	}
	w, ok := st.Workout.WorkoutForDay(1)
	if !ok || w.ID != "push" {
		t.Fatalf("expected Monday workout push, got %+v %v", w, ok)
	}
}

func TestWorkoutLogLifecycle(t *testing.T) {
	t.Parallel()

	st := store.New()
	sets, err := service.ParseSetLogs([]string{"bench:60x8", "bench:62.5x6", "row:50X10"})
	if err != nil {
		t.Fatalf("parse sets: %v", err)
	}
	if len(sets) != 2 || len(sets[0].Sets) != 2 || sets[0].Sets[1].Weight != 62.5 || sets[1].Sets[0].Reps != 10 {
		t.Fatalf("unexpected set logs: %+v", sets)
	}

	entry, err := service.AddWorkoutLog(st, service.WorkoutLogInput{WorkoutID: "push", Completed: true, DurationMin: 55, ExerciseLogs: sets}, testNow)
	if err != nil {
		t.Fatalf("add workout log: %v", err)
	}
	if entry.Date != "2026-02-20" || entry.ID == "" {
		t.Fatalf("unexpected log: %+v", entry)
	}
	if _, err := service.AddWorkoutLog(st, service.WorkoutLogInput{WorkoutID: "push", Date: "20-02-2026"}, testNow); err == nil {
		t.Fatalf("expected invalid date error")
	}

	notes := "felt strong"
	if err := service.UpdateWorkoutLog(st, entry.ID, service.WorkoutLogUpdateInput{Notes: &notes}); err != nil {
		t.Fatalf("update workout log: %v", err)
	}
	if err := service.UpdateWorkoutLog(st, "missing", service.WorkoutLogUpdateInput{Notes: &notes}); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	logs, err := service.ListWorkoutLogs(st, "2026-02-20")
	if err != nil {
		t.Fatalf("list workout logs: %v", err)
	}
	if len(logs) != 1 || logs[0].Notes != "felt strong" || logs[0].DurationMin != 55 {
		t.Fatalf("unexpected logs: %+v", logs)
	}
	if _, err := service.ListWorkoutLogs(st, "yesterday"); err == nil {
		t.Fatalf("expected invalid date error")
	}
}

func TestParseSetLogsRejectsMalformed(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"bench", ":60x8", "bench:60", "bench:ax8", "bench:60xb"} {
		if _, err := service.ParseSetLogs([]string{raw}); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}
