package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/saadjs/fittrack-cli/internal/model"
	"github.com/saadjs/fittrack-cli/internal/service"
	"github.com/saadjs/fittrack-cli/internal/store"
)

func TestClockTimesMustBeZeroPadded(t *testing.T) {
	t.Parallel()

	st := store.New()
	_, err := service.AddReminder(st, service.ReminderInput{Type: "water", Time: "9:05", Message: "Drink"})
	if err == nil || !strings.Contains(err.Error(), "HH:MM") {
		t.Fatalf("expected HH:MM error for reminder add, got %v", err)
	}
	if n := len(service.ListReminders(st, false)); n != 0 {
		t.Fatalf("rejected reminder was stored: %d reminders", n)
	}

	r, err := service.AddReminder(st, service.ReminderInput{Type: "water", Time: "09:05", Message: "Drink"})
	if err != nil {
		t.Fatalf("add reminder: %v", err)
	}
	if due := service.DueReminders(st, time.Date(2026, 2, 20, 9, 5, 0, 0, time.UTC)); len(due) != 1 {
		t.Fatalf("expected reminder due at 09:05, got %+v", due)
	}
	short := "7:30"
	if err := service.UpdateReminder(st, r.ID, service.ReminderUpdateInput{Time: &short}); err == nil {
		t.Fatalf("expected HH:MM error for reminder update")
	}
	if got := service.ListReminders(st, false)[0].Time; got != "09:05" {
		t.Fatalf("rejected update changed time to %q", got)
	}

	if _, err := service.AddWater(st, service.WaterInput{AmountMl: 250, Time: "7:30"}, testNow); err == nil {
		t.Fatalf("expected HH:MM error for water add")
	}
	if _, err := service.SetMealPlan(st, model.MealPlan{Name: "Cut", Meals: []model.Meal{{Name: "Oats", Time: "7:30"}}}); err == nil {
		t.Fatalf("expected HH:MM error for meal plan time")
	}
}
