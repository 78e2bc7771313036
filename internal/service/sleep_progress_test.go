package service_test

import (
	"errors"
	"testing"

	"github.com/saadjs/fittrack-cli/internal/service"
	"github.com/saadjs/fittrack-cli/internal/store"
)

func TestSleepLogging(t *testing.T) {
	t.Parallel()

	st := onboardedStores(t)
	entry, err := service.AddSleep(st, service.SleepInput{DurationHours: 7.5, Quality: "Good"}, testNow)
	if err != nil {
		t.Fatalf("add sleep: %v", err)
	}
	if entry.Date != "2026-02-20" || entry.Quality != "good" {
		t.Fatalf("unexpected sleep log: %+v", entry)
	}
	if _, err := service.AddSleep(st, service.SleepInput{DurationHours: 6, Quality: "fair"}, testNow); err == nil {
		t.Fatalf("expected duplicate date error")
	}
	if _, err := service.AddSleep(st, service.SleepInput{Date: "2026-02-18", DurationHours: 25, Quality: "fair"}, testNow); err == nil {
		t.Fatalf("expected duration error")
	}
	if _, err := service.AddSleep(st, service.SleepInput{Date: "2026-02-18", DurationHours: 6, Quality: "fair"}, testNow); err != nil {
		t.Fatalf("add second night: %v", err)
	}

	q := "excellent"
	if err := service.UpdateSleep(st, entry.ID, service.SleepUpdateInput{Quality: &q}); err != nil {
		t.Fatalf("update sleep: %v", err)
	}
	got, err := service.SleepForDate(st, "", testNow)
	if err != nil {
		t.Fatalf("sleep for date: %v", err)
	}
	if got.Quality != "excellent" {
		t.Fatalf("expected excellent, got %s", got.Quality)
	}

	week := service.WeeklySleep(st, testNow)
	if len(week.Days) != 7 || week.Days[6].Date != "2026-02-20" || week.Days[4].DurationHours != 6 {
		t.Fatalf("unexpected week: %+v", week.Days)
	}
	if week.LoggedNights != 2 || week.AverageHours != 6.8 || week.RecommendedHours != 8 {
		t.Fatalf("unexpected week summary: %+v", week)
	}
}

func TestProgressLoggingAndChange(t *testing.T) {
	t.Parallel()

	st := onboardedStores(t)
	if _, err := service.ProgressDelta(st, "weight"); err == nil {
		t.Fatalf("expected error with no entries")
	}
	if _, err := service.AddProgress(st, service.ProgressInput{Date: "2026-02-13", WeightKg: 81, Waist: 86}, testNow); err != nil {
		t.Fatalf("add progress: %v", err)
	}
	if _, err := service.AddProgress(st, service.ProgressInput{WeightKg: 79.5, Waist: 84, SyncProfile: true}, testNow); err != nil {
		t.Fatalf("add progress: %v", err)
	}
	if _, err := service.AddProgress(st, service.ProgressInput{WeightKg: 79}, testNow); err == nil {
		t.Fatalf("expected duplicate date error")
	}
	if _, err := service.AddProgress(st, service.ProgressInput{Date: "2026-01-01", WeightKg: 79, Photos: []string{"not a url"}}, testNow); err == nil {
		t.Fatalf("expected photo url error")
	}

	p, _ := service.Profile(st)
	if p.WeightKg != 79.5 {
		t.Fatalf("expected profile weight to sync, got %v", p.WeightKg)
	}

	change, err := service.ProgressDelta(st, "weight")
	if err != nil {
		t.Fatalf("progress delta: %v", err)
	}
	if change.From != "2026-02-13" || change.To != "2026-02-20" || change.Change.Increased || change.Change.Value != 1.5 {
		t.Fatalf("unexpected change: %+v", change)
	}

	hips := 95.0
	if err := service.UpdateProgress(st, "2026-02-20", service.ProgressUpdateInput{Hips: &hips}); err != nil {
		t.Fatalf("update progress: %v", err)
	}
	got, err := service.ProgressForDate(st, "2026-02-20", testNow)
	if err != nil {
		t.Fatalf("progress for date: %v", err)
	}
	if got.Measurements.Hips != 95 || got.Measurements.Waist != 84 {
		t.Fatalf("unexpected measurements: %+v", got.Measurements)
	}
	if err := service.UpdateProgress(st, "2026-03-01", service.ProgressUpdateInput{Hips: &hips}); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.ProgressDelta(st, "biceps"); err == nil {
		t.Fatalf("expected invalid metric error")
	}
}

func TestSleepWithoutProfileHasNoRecommendation(t *testing.T) {
	t.Parallel()

	week := service.WeeklySleep(store.New(), testNow)
	if week.RecommendedHours != 0 || week.LoggedNights != 0 || week.AverageHours != 0 {
		t.Fatalf("unexpected empty week: %+v", week)
	}
}
