package service

import (
	"fmt"
	"time"

	"github.com/saadjs/fittrack-cli/internal/formula"
	"github.com/saadjs/fittrack-cli/internal/model"
	"github.com/saadjs/fittrack-cli/internal/store"
)

// DoctorReport counts state the CLI would have refused to write. Such state
// can still arrive through import or a hand-edited database.
type DoctorReport struct {
	Onboarded              bool     `json:"onboarded" yaml:"onboarded"`
	DuplicatePlanDays      int      `json:"duplicate_plan_days" yaml:"duplicate_plan_days"`
	OrphanWorkoutLogs      int      `json:"orphan_workout_logs" yaml:"orphan_workout_logs"`
	OrphanMealLogs         int      `json:"orphan_meal_logs" yaml:"orphan_meal_logs"`
	DuplicateSleepDates    int      `json:"duplicate_sleep_dates" yaml:"duplicate_sleep_dates"`
	DuplicateProgressDates int      `json:"duplicate_progress_dates" yaml:"duplicate_progress_dates"`
	InvalidDates           int      `json:"invalid_dates" yaml:"invalid_dates"`
	InvalidTimes           int      `json:"invalid_times" yaml:"invalid_times"`
	Issues                 []string `json:"issues,omitempty" yaml:"issues,omitempty"`
}

func (r DoctorReport) HasIssues() bool {
	return len(r.Issues) > 0
}

func (r *DoctorReport) addIssue(format string, args ...any) {
	r.Issues = append(r.Issues, fmt.Sprintf(format, args...))
}

// RunDoctor inspects a snapshot of every store. Logs pointing at workouts or
// meals outside the current plan only count when a plan is installed.
func RunDoctor(st *store.Stores) DoctorReport {
	snap := st.Snapshot()
	report := DoctorReport{Onboarded: snap.IsOnboarded}

	if snap.WorkoutPlan != nil {
		days := map[int]int{}
		ids := map[string]bool{}
		for _, w := range snap.WorkoutPlan.Workouts {
			days[w.DayOfWeek]++
			ids[w.ID] = true
			if days[w.DayOfWeek] == 2 {
				report.DuplicatePlanDays++
				report.addIssue("workout plan has several workouts on day %d", w.DayOfWeek)
			}
		}
		for _, l := range snap.WorkoutLogs {
			if !ids[l.WorkoutID] {
				report.OrphanWorkoutLogs++
				report.addIssue("workout log %s references unknown workout %q", l.ID, l.WorkoutID)
			}
		}
	}
	if snap.MealPlan != nil {
		ids := map[string]bool{}
		for _, m := range snap.MealPlan.Meals {
			ids[m.ID] = true
		}
		for _, l := range snap.MealLogs {
			if !ids[l.MealID] {
				report.OrphanMealLogs++
				report.addIssue("meal log %s references unknown meal %q", l.ID, l.MealID)
			}
		}
	}

	report.DuplicateSleepDates = countDuplicateDates(snap.SleepLogs, func(l model.SleepLog) string { return l.Date })
	if report.DuplicateSleepDates > 0 {
		report.addIssue("%d sleep log(s) share a date with an earlier log", report.DuplicateSleepDates)
	}
	report.DuplicateProgressDates = countDuplicateDates(snap.ProgressEntries, func(p model.Progress) string { return p.Date })
	if report.DuplicateProgressDates > 0 {
		report.addIssue("%d progress entr(ies) share a date with an earlier entry", report.DuplicateProgressDates)
	}
	checkDate := func(kind, id, date string) {
		if _, err := time.Parse(formula.DateLayout, date); err != nil {
			report.InvalidDates++
			report.addIssue("%s %s has invalid date %q", kind, id, date)
		}
	}
	checkTime := func(kind, id, value string) {
		if !formula.ValidTime(value) {
			report.InvalidTimes++
			report.addIssue("%s %s has invalid time %q", kind, id, value)
		}
	}
	for _, l := range snap.WorkoutLogs {
		checkDate("workout log", l.ID, l.Date)
	}
	for _, l := range snap.MealLogs {
		checkDate("meal log", l.ID, l.Date)
	}
	for _, l := range snap.WaterLogs {
		checkDate("water log", l.ID, l.Date)
		checkTime("water log", l.ID, l.Time)
	}
	for _, l := range snap.SleepLogs {
		checkDate("sleep log", l.ID, l.Date)
	}
	for _, p := range snap.ProgressEntries {
		checkDate("progress entry", p.Date, p.Date)
	}
	for _, r := range snap.Reminders {
		checkTime("reminder", r.ID, r.Time)
	}
	return report
}

func countDuplicateDates[T any](items []T, date func(T) string) int {
	seen := map[string]bool{}
	dups := 0
	for _, item := range items {
		d := date(item)
		if seen[d] {
			dups++
			continue
		}
		seen[d] = true
	}
	return dups
}
