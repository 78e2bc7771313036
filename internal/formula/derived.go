package formula

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/saadjs/fittrack-cli/internal/model"
)

type Metric string

const (
	MetricWeight Metric = "weight"
	MetricChest  Metric = "chest"
	MetricWaist  Metric = "waist"
	MetricHips   Metric = "hips"
	MetricArms   Metric = "arms"
	MetricThighs Metric = "thighs"
)

func ParseMetric(value string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(value)))
	switch m {
	case MetricWeight, MetricChest, MetricWaist, MetricHips, MetricArms, MetricThighs:
		return m, nil
	}
	return "", fmt.Errorf("invalid metric %q (use weight, chest, waist, hips, arms or thighs)", value)
}

// Delta is the absolute difference between the latest and previous entry.
type Delta struct {
	Value     float64 `json:"value" yaml:"value"`
	Increased bool    `json:"increased" yaml:"increased"`
}

// SortedByDate returns a copy of entries ordered by date ascending. Entries
// sharing a date keep their insertion order.
func SortedByDate(entries []model.Progress) []model.Progress {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b model.Progress) int {
		return strings.Compare(a.Date, b.Date)
	})
	return out
}

// Change compares the two most recent progress entries by date. Fewer than
// two entries yield a zero Delta.
func Change(entries []model.Progress, metric Metric) Delta {
	sorted := SortedByDate(entries)
	if len(sorted) < 2 {
		return Delta{}
	}
	latest := MetricValue(sorted[len(sorted)-1], metric)
	previous := MetricValue(sorted[len(sorted)-2], metric)
	diff := latest - previous
	if diff < 0 {
		return Delta{Value: -diff}
	}
	return Delta{Value: diff, Increased: diff > 0}
}

// MetricValue reads one metric from an entry; unknown metrics read weight.
func MetricValue(p model.Progress, metric Metric) float64 {
	switch metric {
	case MetricChest:
		return p.Measurements.Chest
	case MetricWaist:
		return p.Measurements.Waist
	case MetricHips:
		return p.Measurements.Hips
	case MetricArms:
		return p.Measurements.Arms
	case MetricThighs:
		return p.Measurements.Thighs
	default:
		return p.WeightKg
	}
}

type SleepDay struct {
	Date          string             `json:"date" yaml:"date"`
	Weekday       string             `json:"weekday" yaml:"weekday"`
	DurationHours float64            `json:"duration_hours" yaml:"duration_hours"`
	Quality       model.SleepQuality `json:"quality" yaml:"quality"`
}

// SleepWindow lays out the last n days ending at end, oldest first. Days
// without a log report zero hours and poor quality.
func SleepWindow(logs []model.SleepLog, end time.Time, n int) []SleepDay {
	out := make([]SleepDay, 0, n)
	start := beginningOfDay(end).AddDate(0, 0, -(n - 1))
	for i := 0; i < n; i++ {
		d := start.AddDate(0, 0, i)
		day := SleepDay{Date: d.Format(DateLayout), Weekday: d.Format("Mon"), Quality: model.SleepPoor}
		for _, l := range logs {
			if l.Date == day.Date {
				day.DurationHours = l.DurationHours
				day.Quality = l.Quality
				break
			}
		}
		out = append(out, day)
	}
	return out
}

// DueReminders returns the active reminders whose weekday and HH:MM match t.
func DueReminders(reminders []model.Reminder, t time.Time) []model.Reminder {
	clock := t.Format(TimeLayout)
	weekday := int(t.Weekday())
	out := make([]model.Reminder, 0)
	for _, r := range reminders {
		if !r.IsActive || r.Time != clock {
			continue
		}
		if slices.Contains(r.DaysOfWeek, weekday) {
			out = append(out, r)
		}
	}
	return out
}
