package db_test

import (
	"database/sql"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/saadjs/fittrack-cli/internal/db"
	"github.com/saadjs/fittrack-cli/internal/model"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	sqldb, err := db.Open(filepath.Join(t.TempDir(), "fittrack.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func TestLoadSnapshotEmpty(t *testing.T) {
	t.Parallel()

	snap, err := db.LoadSnapshot(newTestDB(t))
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if !reflect.DeepEqual(snap, model.Snapshot{}) {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}

func TestSaveLoadSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	sqldb := newTestDB(t)
	want := model.Snapshot{
		Profile: &model.UserProfile{
			ID: "u1", Name: "Jo", Age: 30, Gender: model.GenderFemale,
			HeightCm: 165, WeightKg: 60, Allergies: []string{"peanuts"},
		},
		IsOnboarded: true,
		WorkoutPlan: &model.WorkoutPlan{ID: "p1", Name: "Split", Workouts: []model.Workout{{ID: "w1", DayOfWeek: 1}}},
		WorkoutLogs: []model.WorkoutLog{
			{ID: "wl2", Date: "2026-02-21", WorkoutID: "w1"},
			{ID: "wl1", Date: "2026-02-20", WorkoutID: "w1", Completed: true},
		},
		MealLogs:        []model.MealLog{{ID: "m1", Date: "2026-02-20", MealID: "b"}},
		WaterLogs:       []model.WaterLog{{ID: "a", Date: "2026-02-20", AmountMl: 250, Time: "08:00"}},
		SleepLogs:       []model.SleepLog{{ID: "s1", Date: "2026-02-20", DurationHours: 7.5, Quality: model.SleepGood}},
		ProgressEntries: []model.Progress{{Date: "2026-02-20", WeightKg: 60}},
		Reminders:       []model.Reminder{{ID: "r1", Type: model.ReminderWater, Time: "09:00", IsActive: true, DaysOfWeek: []int{1, 3}}},
	}

	if err := db.SaveSnapshot(sqldb, want); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}
	got, err := db.LoadSnapshot(sqldb)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch\nwant %+v\ngot  %+v", want, got)
	}

	want.WorkoutPlan = nil
	want.WaterLogs = nil
	if err := db.SaveSnapshot(sqldb, want); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, err = db.LoadSnapshot(sqldb)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if got.WorkoutPlan != nil {
		t.Fatalf("expected workout plan to be cleared")
	}
	if len(got.WaterLogs) != 0 {
		t.Fatalf("expected no water logs, got %d", len(got.WaterLogs))
	}
	if len(got.WorkoutLogs) != 2 || got.WorkoutLogs[0].ID != "wl2" {
		t.Fatalf("expected workout logs to keep insertion order, got %+v", got.WorkoutLogs)
	}
}
