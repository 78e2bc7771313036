package service_test

import (
	"testing"

	"github.com/saadjs/fittrack-cli/internal/formula"
	"github.com/saadjs/fittrack-cli/internal/model"
	"github.com/saadjs/fittrack-cli/internal/service"
	"github.com/saadjs/fittrack-cli/internal/store"
)

func TestTodaySummary(t *testing.T) {
	t.Parallel()

	st := onboardedStores(t)
	if _, err := service.SetWorkoutPlan(st, model.WorkoutPlan{Name: "Split", Workouts: []model.Workout{
		{ID: "legs", Name: "Legs", DayOfWeek: 5},
		{ID: "push", Name: "Push", DayOfWeek: 1},
	}}); err != nil {
		t.Fatalf("set workout plan: %v", err)
	}
	if _, err := service.SetMealPlan(st, model.MealPlan{Name: "Cut", Meals: []model.Meal{{ID: "b", Name: "Breakfast", TotalCalories: 400}}}); err != nil {
		t.Fatalf("set meal plan: %v", err)
	}
	mustAdd := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	_, err := service.AddWorkoutLog(st, service.WorkoutLogInput{WorkoutID: "legs", Completed: true, CaloriesBurned: 450}, testNow)
	mustAdd(err)
	_, err = service.AddMealLog(st, service.MealLogInput{MealID: "b", Completed: true}, testNow)
	mustAdd(err)
	_, err = service.AddWater(st, service.WaterInput{AmountMl: 500}, testNow)
	mustAdd(err)
	_, err = service.AddSleep(st, service.SleepInput{DurationHours: 8, Quality: "good"}, testNow)
	mustAdd(err)
	_, err = service.AddReminder(st, service.ReminderInput{Type: "meal", Time: "12:00", Message: "Lunch", DaysOfWeek: []int{5}})
	mustAdd(err)
	_, err = service.AddReminder(st, service.ReminderInput{Type: "meal", Time: "12:00", Message: "Sunday brunch", DaysOfWeek: []int{0}})
	mustAdd(err)

	status := service.TodaySummary(st, testNow, formula.ActivityModerate, formula.GoalMaintain)
	if status.Date != "2026-02-20" || status.Weekday != "Friday" {
		t.Fatalf("unexpected day: %s %s", status.Date, status.Weekday)
	}
	if status.Workout == nil || status.Workout.ID != "legs" || !status.WorkoutLogged || status.CaloriesBurned != 450 {
		t.Fatalf("unexpected workout status: %+v", status)
	}
	if status.MealsLogged != 1 || status.CaloriesEaten != 400 || len(status.Meals) != 1 {
		t.Fatalf("unexpected meal status: %+v", status)
	}
	if status.WaterMl != 500 || status.WaterTargetMl != 2400 {
		t.Fatalf("unexpected water status: %+v", status)
	}
	if status.Sleep == nil || status.SleepTargetHours != 8 {
		t.Fatalf("unexpected sleep status: %+v", status)
	}
	if len(status.Reminders) != 1 || status.Reminders[0].Message != "Lunch" {
		t.Fatalf("unexpected reminders: %+v", status.Reminders)
	}
	if len(status.Week) != 7 || status.Macros.ProteinG != 207 {
		t.Fatalf("unexpected week/macros: %d %+v", len(status.Week), status.Macros)
	}
}

func TestTodaySummaryEmpty(t *testing.T) {
	t.Parallel()

	status := service.TodaySummary(store.New(), testNow, formula.ActivityModerate, formula.GoalMaintain)
	if status.HasProfile || status.Workout != nil || status.Sleep != nil || status.WaterMl != 0 {
		t.Fatalf("expected empty dashboard, got %+v", status)
	}
	if status.Meals == nil || status.Reminders == nil {
		t.Fatalf("expected non-nil lists for rendering")
	}
}
