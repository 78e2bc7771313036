package service_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/saadjs/fittrack-cli/internal/model"
	"github.com/saadjs/fittrack-cli/internal/service"
	"github.com/saadjs/fittrack-cli/internal/store"
)

func seededStores(t *testing.T) *store.Stores {
	t.Helper()
	st := onboardedStores(t)
	if _, err := service.SetWorkoutPlan(st, model.WorkoutPlan{Name: "Split", Workouts: []model.Workout{{ID: "legs", Name: "Legs", DayOfWeek: 5}}}); err != nil {
		t.Fatalf("set workout plan: %v", err)
	}
	if _, err := service.AddWater(st, service.WaterInput{AmountMl: 250}, testNow); err != nil {
		t.Fatalf("add water: %v", err)
	}
	if _, err := service.AddProgress(st, service.ProgressInput{WeightKg: 80, Photos: []string{"https://example.com/a.jpg"}}, testNow); err != nil {
		t.Fatalf("add progress: %v", err)
	}
	if _, err := service.AddReminder(st, service.ReminderInput{Type: "sleep", Time: "22:30", Message: "Bed"}); err != nil {
		t.Fatalf("add reminder: %v", err)
	}
	return st
}

func TestExportImportReplaceRoundTrip(t *testing.T) {
	t.Parallel()

	for _, format := range []service.Format{service.FormatJSON, service.FormatYAML} {
		src := seededStores(t)
		var buf bytes.Buffer
		if err := service.Export(src, &buf, format, testNow); err != nil {
			t.Fatalf("export %s: %v", format, err)
		}

		dst := store.New()
		report, err := service.Import(dst, buf.Bytes(), format, service.ImportModeReplace)
		if err != nil {
			t.Fatalf("import %s: %v", format, err)
		}
		if !report.Replaced || report.Inserted != 5 {
			t.Fatalf("unexpected %s report: %+v", format, report)
		}
		if !reflect.DeepEqual(src.Snapshot(), dst.Snapshot()) {
			t.Fatalf("%s round trip mismatch\nwant %+v\ngot  %+v", format, src.Snapshot(), dst.Snapshot())
		}
	}
}

func TestImportMergeSkipsKnownRecords(t *testing.T) {
	t.Parallel()

	src := seededStores(t)
	var buf bytes.Buffer
	if err := service.Export(src, &buf, service.FormatJSON, testNow); err != nil {
		t.Fatalf("export: %v", err)
	}

	dst := store.New()
	if _, err := service.AddWater(dst, service.WaterInput{AmountMl: 100, Date: "2026-02-19"}, testNow); err != nil {
		t.Fatalf("add water: %v", err)
	}
	report, err := service.Import(dst, buf.Bytes(), service.FormatJSON, service.ImportModeMerge)
	if err != nil {
		t.Fatalf("merge import: %v", err)
	}
	if report.Inserted != 5 || report.Skipped != 0 {
		t.Fatalf("unexpected first merge report: %+v", report)
	}
	if len(dst.Nutrition.WaterLogs()) != 2 || !dst.User.IsOnboarded() {
		t.Fatalf("unexpected merged state: %+v", dst.Snapshot())
	}

	report, err = service.Import(dst, buf.Bytes(), service.FormatJSON, service.ImportModeMerge)
	if err != nil {
		t.Fatalf("second merge import: %v", err)
	}
	if report.Inserted != 0 || report.Skipped != 3 {
		t.Fatalf("unexpected second merge report: %+v", report)
	}
}

func TestImportRejectsBadInput(t *testing.T) {
	t.Parallel()

	st := store.New()
	if _, err := service.Import(st, []byte(`{"version": 9, "state": {}}`), service.FormatJSON, service.ImportModeMerge); err == nil {
		t.Fatalf("expected version error")
	}
	if _, err := service.Import(st, []byte(`{"version": 1, "stat": {}}`), service.FormatJSON, service.ImportModeMerge); err == nil {
		t.Fatalf("expected unknown field error")
	}
	if _, err := service.ParseFormat("xml"); err == nil {
		t.Fatalf("expected format error")
	}
	if _, err := service.ParseImportMode("upsert"); err == nil {
		t.Fatalf("expected mode error")
	}
}

func TestDecodePlanFromYAML(t *testing.T) {
	t.Parallel()

	doc := `
name: Full body
workouts:
  - name: Monday
    day_of_week: 1
    type: strength
    exercises:
      - name: Squat
        sets: 5
        reps: 5
`
	var plan model.WorkoutPlan
	if err := service.Decode([]byte(doc), service.FormatFromPath("plan.yml"), &plan); err != nil {
		t.Fatalf("decode plan: %v", err)
	}
	if plan.Name != "Full body" || len(plan.Workouts) != 1 || plan.Workouts[0].Exercises[0].Sets != 5 {
		t.Fatalf("unexpected plan: %+v", plan)
	}
	if err := service.Decode([]byte(strings.Replace(doc, "sets:", "setz:", 1)), service.FormatYAML, &plan); err == nil {
		t.Fatalf("expected unknown field error")
	}
}

func TestImportReplaceKeepsOnboardingLatch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := service.Export(store.New(), &buf, service.FormatJSON, testNow); err != nil {
		t.Fatalf("export empty stores: %v", err)
	}

	st := onboardedStores(t)
	report, err := service.Import(st, buf.Bytes(), service.FormatJSON, service.ImportModeReplace)
	if err != nil {
		t.Fatalf("replace import: %v", err)
	}
	if !report.Replaced || report.Inserted != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if !st.User.IsOnboarded() {
		t.Fatalf("replace import cleared the onboarding latch")
	}
	if _, ok := st.User.Profile(); ok {
		t.Fatalf("replace import should drop the local profile")
	}
}

func TestImportMergeKeepsOneSleepLogPerDate(t *testing.T) {
	t.Parallel()

	src := store.New()
	if _, err := service.AddSleep(src, service.SleepInput{DurationHours: 6, Quality: "fair"}, testNow); err != nil {
		t.Fatalf("add sleep: %v", err)
	}
	if _, err := service.AddSleep(src, service.SleepInput{Date: "2026-02-19", DurationHours: 8, Quality: "good"}, testNow); err != nil {
		t.Fatalf("add sleep: %v", err)
	}
	var buf bytes.Buffer
	if err := service.Export(src, &buf, service.FormatYAML, testNow); err != nil {
		t.Fatalf("export: %v", err)
	}

	dst := store.New()
	local, err := service.AddSleep(dst, service.SleepInput{DurationHours: 7.5, Quality: "good"}, testNow)
	if err != nil {
		t.Fatalf("add local sleep: %v", err)
	}
	report, err := service.Import(dst, buf.Bytes(), service.FormatYAML, service.ImportModeMerge)
	if err != nil {
		t.Fatalf("merge import: %v", err)
	}
	if report.Inserted != 1 || report.Skipped != 1 {
		t.Fatalf("unexpected merge report: %+v", report)
	}
	logs := dst.Sleep.Logs()
	if len(logs) != 2 {
		t.Fatalf("expected 2 sleep logs, got %+v", logs)
	}
	got, ok := dst.Sleep.LogForDate("2026-02-20")
	if !ok || got.ID != local.ID || got.DurationHours != 7.5 {
		t.Fatalf("local sleep log for the date was not kept: %+v", got)
	}
}
