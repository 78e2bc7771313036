package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/saadjs/fittrack-cli/internal/formula"
	"github.com/saadjs/fittrack-cli/internal/model"
	"github.com/saadjs/fittrack-cli/internal/store"
)

type ProgressInput struct {
	Date     string   `validate:"omitempty,datetime=2006-01-02"`
	WeightKg float64  `validate:"gt=0"`
	Chest    float64  `validate:"gte=0"`
	Waist    float64  `validate:"gte=0"`
	Hips     float64  `validate:"gte=0"`
	Arms     float64  `validate:"gte=0"`
	Thighs   float64  `validate:"gte=0"`
	Photos   []string `validate:"dive,url"`
	// SyncProfile also writes the weight to the profile.
	SyncProfile bool
}

type ProgressUpdateInput struct {
	WeightKg *float64 `validate:"omitempty,gt=0"`
	Chest    *float64 `validate:"omitempty,gte=0"`
	Waist    *float64 `validate:"omitempty,gte=0"`
	Hips     *float64 `validate:"omitempty,gte=0"`
	Arms     *float64 `validate:"omitempty,gte=0"`
	Thighs   *float64 `validate:"omitempty,gte=0"`
	Photos   []string `validate:"omitempty,dive,url"`
}

type ProgressChange struct {
	Metric   formula.Metric `json:"metric" yaml:"metric"`
	From     string         `json:"from" yaml:"from"`
	To       string         `json:"to" yaml:"to"`
	Change   formula.Delta  `json:"change" yaml:"change"`
	Latest   float64        `json:"latest" yaml:"latest"`
	Previous float64        `json:"previous" yaml:"previous"`
}

func AddProgress(st *store.Stores, in ProgressInput, now time.Time) (model.Progress, error) {
	if err := validateInput(in); err != nil {
		return model.Progress{}, err
	}
	date := dateOrToday(in.Date, now)
	if _, ok := st.Progress.LogForDate(date); ok {
		return model.Progress{}, fmt.Errorf("progress for %s already logged; use `progress update`", date)
	}
	entry := model.Progress{
		Date:     date,
		WeightKg: in.WeightKg,
		Measurements: model.Measurements{
			Chest: in.Chest, Waist: in.Waist, Hips: in.Hips, Arms: in.Arms, Thighs: in.Thighs,
		},
		Photos: in.Photos,
	}
	st.Progress.AddLog(entry)
	if in.SyncProfile {
		st.User.UpdateProfile(model.UserProfilePatch{WeightKg: &in.WeightKg})
	}
	return entry, nil
}

// UpdateProgress patches the entry on date. Unset measurements keep their
// stored values.
func UpdateProgress(st *store.Stores, date string, in ProgressUpdateInput) error {
	date = strings.TrimSpace(date)
	if err := validateInput(in); err != nil {
		return err
	}
	current, ok := st.Progress.LogForDate(date)
	if !ok {
		return fmt.Errorf("progress for %s: %w", date, ErrNotFound)
	}
	m := current.Measurements
	for _, f := range []struct {
		dst *float64
		src *float64
	}{
		{&m.Chest, in.Chest}, {&m.Waist, in.Waist}, {&m.Hips, in.Hips}, {&m.Arms, in.Arms}, {&m.Thighs, in.Thighs},
	} {
		if f.src != nil {
			*f.dst = *f.src
		}
	}
	patch := model.ProgressPatch{WeightKg: in.WeightKg, Photos: in.Photos}
	if m != current.Measurements {
		patch.Measurements = &m
	}
	st.Progress.UpdateLog(date, patch)
	return nil
}

func ProgressForDate(st *store.Stores, date string, now time.Time) (model.Progress, error) {
	date = dateOrToday(date, now)
	p, ok := st.Progress.LogForDate(date)
	if !ok {
		return model.Progress{}, fmt.Errorf("progress for %s: %w", date, ErrNotFound)
	}
	return p, nil
}

// ProgressDelta compares the two most recent entries by date.
func ProgressDelta(st *store.Stores, metric string) (ProgressChange, error) {
	m, err := formula.ParseMetric(metric)
	if err != nil {
		return ProgressChange{}, err
	}
	entries := formula.SortedByDate(st.Progress.Logs())
	if len(entries) < 2 {
		return ProgressChange{}, fmt.Errorf("need at least two progress entries, have %d", len(entries))
	}
	prev, latest := entries[len(entries)-2], entries[len(entries)-1]
	return ProgressChange{
		Metric:   m,
		From:     prev.Date,
		To:       latest.Date,
		Change:   formula.Change(entries, m),
		Latest:   formula.MetricValue(latest, m),
		Previous: formula.MetricValue(prev, m),
	}, nil
}
