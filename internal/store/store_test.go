package store_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/saadjs/fittrack-cli/internal/model"
	"github.com/saadjs/fittrack-cli/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testDates = []string{"2026-02-18", "2026-02-19", "2026-02-20"}

func fakeWorkoutLog(date string) model.WorkoutLog {
	return model.WorkoutLog{
		ID:             gofakeit.UUID(),
		Date:           date,
		WorkoutID:      gofakeit.UUID(),
		Completed:      gofakeit.Bool(),
		DurationMin:    gofakeit.Number(10, 120),
		CaloriesBurned: gofakeit.Number(50, 900),
		HeartRate:      model.HeartRate{Average: gofakeit.Number(90, 140), Peak: gofakeit.Number(140, 190)},
		Notes:          gofakeit.Sentence(6),
	}
}

func TestFilterByDateReturnsMatchesInAppendOrder(t *testing.T) {
	t.Parallel()

	s := store.NewWorkoutStore()
	want := make([]string, 0)
	for i := 0; i < 30; i++ {
		date := testDates[gofakeit.Number(0, len(testDates)-1)]
		log := fakeWorkoutLog(date)
		if date == "2026-02-19" {
			want = append(want, log.ID)
		}
		s.AddLog(log)
	}

	got := s.LogsForDate("2026-02-19")
	ids := make([]string, 0, len(got))
	for _, l := range got {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, want, ids)
	assert.Len(t, s.Logs(), 30)
	assert.Empty(t, s.LogsForDate("2025-01-01"))
}

func TestUpdateWithEmptyPatchLeavesRecordUnchanged(t *testing.T) {
	t.Parallel()

	s := store.NewWorkoutStore()
	log := fakeWorkoutLog("2026-02-20")
	s.AddLog(log)

	require.True(t, s.UpdateLog(log.ID, model.WorkoutLogPatch{}))
	assert.Equal(t, []model.WorkoutLog{log}, s.Logs())
}

func TestUpdateMissLeavesStoreUnchanged(t *testing.T) {
	t.Parallel()

	s := store.NewWorkoutStore()
	a, b := fakeWorkoutLog("2026-02-20"), fakeWorkoutLog("2026-02-21")
	s.AddLog(a)
	s.AddLog(b)

	notes := "changed"
	assert.False(t, s.UpdateLog("missing", model.WorkoutLogPatch{Notes: &notes}))
	assert.Equal(t, []model.WorkoutLog{a, b}, s.Logs())
}

func TestReadsAreIsolatedFromLaterMutations(t *testing.T) {
	t.Parallel()

	s := store.NewWorkoutStore()
	first := fakeWorkoutLog("2026-02-20")
	s.AddLog(first)
	before := s.Logs()

	notes := "patched"
	s.UpdateLog(first.ID, model.WorkoutLogPatch{Notes: &notes})
	s.AddLog(fakeWorkoutLog("2026-02-20"))

	require.Len(t, before, 1)
	assert.Equal(t, first.Notes, before[0].Notes)

	before[0].Notes = "caller edit"
	assert.Equal(t, "patched", s.Logs()[0].Notes)
}

func TestSubscribersRunAfterCommitInOrder(t *testing.T) {
	t.Parallel()

	s := store.NewReminderStore()
	var calls []string
	unsubA := s.Subscribe(func() { calls = append(calls, fmt.Sprintf("a:%d", len(s.Reminders()))) })
	s.Subscribe(func() { calls = append(calls, fmt.Sprintf("b:%d", len(s.Reminders()))) })

	s.Add(model.Reminder{ID: "r1"})
	s.Update("missing", model.ReminderPatch{})
	s.Delete("missing")
	unsubA()
	unsubA()
	s.Delete("r1")

	assert.Equal(t, []string{"a:1", "b:1", "b:0"}, calls)
}

func TestConcurrentAppendsAreSerialized(t *testing.T) {
	t.Parallel()

	s := store.NewNutritionStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddWaterLog(model.WaterLog{ID: gofakeit.UUID(), Date: "2026-02-20", AmountMl: 10})
		}()
	}
	wg.Wait()

	assert.Len(t, s.WaterLogs(), 50)
	assert.Equal(t, 500, s.TotalWaterForDate("2026-02-20"))
}

func TestStoresSnapshotRestore(t *testing.T) {
	t.Parallel()

	src := store.New()
	src.User.SetProfile(model.UserProfile{ID: "u1", Name: "Jo", Allergies: []string{"peanuts"}})
	src.User.CompleteOnboarding()
	src.Workout.SetCurrentPlan(model.WorkoutPlan{ID: "p1", Workouts: []model.Workout{{ID: "w1", DayOfWeek: 1}}})
	src.Workout.AddLog(fakeWorkoutLog("2026-02-20"))
	src.Nutrition.SetCurrentMealPlan(model.MealPlan{ID: "mp1"})
	src.Nutrition.AddMealLog(model.MealLog{ID: "ml1", Date: "2026-02-20"})
	src.Nutrition.AddWaterLog(model.WaterLog{ID: "wl1", Date: "2026-02-20", AmountMl: 250})
	src.Sleep.AddLog(model.SleepLog{ID: "s1", Date: "2026-02-20", DurationHours: 7})
	src.Progress.AddLog(model.Progress{Date: "2026-02-20", WeightKg: 80})
	src.Reminder.Add(model.Reminder{ID: "r1", IsActive: true})

	snap := src.Snapshot()

	dst := store.New()
	notified := 0
	dst.Subscribe(func() { notified++ })
	dst.Restore(snap)

	assert.Equal(t, snap, dst.Snapshot())
	assert.Equal(t, 6, notified)
	assert.True(t, dst.User.IsOnboarded())
}
