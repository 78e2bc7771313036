package store_test

import (
	"testing"

	"github.com/saadjs/fittrack-cli/internal/model"
	"github.com/saadjs/fittrack-cli/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaterTotalsPerDate(t *testing.T) {
	t.Parallel()

	s := store.NewNutritionStore()
	s.AddWaterLog(model.WaterLog{ID: "a", Date: "2026-02-20", AmountMl: 250, Time: "08:00"})
	s.AddWaterLog(model.WaterLog{ID: "b", Date: "2026-02-20", AmountMl: 300, Time: "12:00"})
	s.AddWaterLog(model.WaterLog{ID: "c", Date: "2026-02-21", AmountMl: 100, Time: "09:00"})

	assert.Equal(t, 550, s.TotalWaterForDate("2026-02-20"))
	assert.Equal(t, 100, s.TotalWaterForDate("2026-02-21"))
	assert.Equal(t, 0, s.TotalWaterForDate("2026-02-22"))
	assert.Len(t, s.WaterLogsForDate("2026-02-20"), 2)
}

func TestMealLogs(t *testing.T) {
	t.Parallel()

	s := store.NewNutritionStore()
	_, ok := s.CurrentMealPlan()
	assert.False(t, ok)

	s.SetCurrentMealPlan(model.MealPlan{ID: "mp1", Name: "Cut"})
	plan, ok := s.CurrentMealPlan()
	require.True(t, ok)
	assert.Equal(t, "Cut", plan.Name)

	s.AddMealLog(model.MealLog{ID: "m1", Date: "2026-02-20", MealID: "breakfast"})
	s.AddMealLog(model.MealLog{ID: "m2", Date: "2026-02-21", MealID: "lunch"})

	done := true
	require.True(t, s.UpdateMealLog("m2", model.MealLogPatch{Completed: &done}))
	assert.False(t, s.UpdateMealLog("m3", model.MealLogPatch{Completed: &done}))

	logs := s.MealLogsForDate("2026-02-21")
	require.Len(t, logs, 1)
	assert.True(t, logs[0].Completed)
	assert.False(t, s.MealLogs()[0].Completed)
}

func TestSleepLogForDateReturnsFirst(t *testing.T) {
	t.Parallel()

	s := store.NewSleepStore()
	s.AddLog(model.SleepLog{ID: "a", Date: "2026-02-20", DurationHours: 7})
	s.AddLog(model.SleepLog{ID: "b", Date: "2026-02-20", DurationHours: 9})

	got, ok := s.LogForDate("2026-02-20")
	require.True(t, ok)
	assert.Equal(t, "a", got.ID)

	_, ok = s.LogForDate("2026-02-21")
	assert.False(t, ok)

	q := model.SleepExcellent
	require.True(t, s.UpdateLog("b", model.SleepLogPatch{Quality: &q}))
	assert.Equal(t, model.SleepExcellent, s.Logs()[1].Quality)
}

func TestProgressUpdateByDate(t *testing.T) {
	t.Parallel()

	s := store.NewProgressStore()
	s.AddLog(model.Progress{Date: "2026-02-01", WeightKg: 82})
	s.AddLog(model.Progress{Date: "2026-02-08", WeightKg: 81})

	w := 80.5
	require.True(t, s.UpdateLog("2026-02-08", model.ProgressPatch{WeightKg: &w}))
	assert.False(t, s.UpdateLog("2026-03-01", model.ProgressPatch{WeightKg: &w}))

	got, ok := s.LogForDate("2026-02-08")
	require.True(t, ok)
	assert.Equal(t, 80.5, got.WeightKg)
	assert.Equal(t, 82.0, s.Logs()[0].WeightKg)
}

func TestReminderLifecycle(t *testing.T) {
	t.Parallel()

	s := store.NewReminderStore()
	s.Add(model.Reminder{ID: "r1", Type: model.ReminderWater, Time: "09:00", IsActive: true, DaysOfWeek: []int{1}})
	s.Add(model.Reminder{ID: "r2", Type: model.ReminderSleep, Time: "22:30", IsActive: false})

	assert.Len(t, s.Active(), 1)

	on := true
	require.True(t, s.Update("r2", model.ReminderPatch{IsActive: &on}))
	assert.Len(t, s.Active(), 2)

	assert.False(t, s.Delete("r3"))
	assert.Len(t, s.Reminders(), 2)

	require.True(t, s.Delete("r1"))
	rem := s.Reminders()
	require.Len(t, rem, 1)
	assert.Equal(t, "r2", rem[0].ID)
}

func TestWorkoutForDay(t *testing.T) {
	t.Parallel()

	s := store.NewWorkoutStore()
	_, ok := s.WorkoutForDay(1)
	assert.False(t, ok)

	s.SetCurrentPlan(model.WorkoutPlan{ID: "p1", Workouts: []model.Workout{
		{ID: "push", DayOfWeek: 1},
		{ID: "pull", DayOfWeek: 3},
		{ID: "extra", DayOfWeek: 1},
	}})

	w, ok := s.WorkoutForDay(1)
	require.True(t, ok)
	assert.Equal(t, "push", w.ID)

	_, ok = s.WorkoutForDay(0)
	assert.False(t, ok)
}
