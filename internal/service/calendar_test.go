package service_test

import (
	"testing"

	"github.com/saadjs/fittrack-cli/internal/model"
	"github.com/saadjs/fittrack-cli/internal/service"
	"github.com/saadjs/fittrack-cli/internal/store"
)

func TestCalendarFlagsLoggedDays(t *testing.T) {
	t.Parallel()

	st := store.New()
	st.Workout.AddLog(model.WorkoutLog{ID: "w", Date: "2026-02-20", WorkoutID: "push"})
	st.Nutrition.AddMealLog(model.MealLog{ID: "m", Date: "2026-02-19", MealID: "lunch"})
	st.Nutrition.AddMealLog(model.MealLog{ID: "old", Date: "2026-01-19", MealID: "lunch"})

	grid, err := service.Calendar(st, "", testNow)
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	if grid.Month != "2026-02" || len(grid.Days) != 28 {
		t.Fatalf("unexpected grid: %+v", grid)
	}
	if !grid.Days[19].HasWorkout || grid.Days[19].HasMeal {
		t.Fatalf("unexpected flags on the 20th: %+v", grid.Days[19])
	}
	if !grid.Days[18].HasMeal || grid.Days[18].HasWorkout {
		t.Fatalf("unexpected flags on the 19th: %+v", grid.Days[18])
	}

	jan, err := service.Calendar(st, "2026-01", testNow)
	if err != nil {
		t.Fatalf("calendar january: %v", err)
	}
	if jan.LeadingBlanks != 4 || !jan.Days[18].HasMeal {
		t.Fatalf("unexpected january grid: %+v", jan)
	}

	for _, bad := range []string{"2026-13", "Feb 2026", "2026-2-1"} {
		if _, err := service.Calendar(st, bad, testNow); err == nil {
			t.Fatalf("expected error for month %q", bad)
		}
	}
}
