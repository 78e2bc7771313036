package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/saadjs/fittrack-cli/internal/formula"
	"github.com/saadjs/fittrack-cli/internal/model"
	"github.com/saadjs/fittrack-cli/internal/store"
)

type SleepInput struct {
	Date          string  `validate:"omitempty,datetime=2006-01-02"`
	DurationHours float64 `validate:"gt=0,lte=24"`
	Quality       string  `validate:"oneof=poor fair good excellent"`
	Notes         string
}

type SleepUpdateInput struct {
	DurationHours *float64 `validate:"omitempty,gt=0,lte=24"`
	Quality       *string  `validate:"omitempty,oneof=poor fair good excellent"`
	Notes         *string
}

type SleepWeek struct {
	Days             []formula.SleepDay `json:"days" yaml:"days"`
	AverageHours     float64            `json:"average_hours" yaml:"average_hours"`
	LoggedNights     int                `json:"logged_nights" yaml:"logged_nights"`
	RecommendedHours float64            `json:"recommended_hours,omitempty" yaml:"recommended_hours,omitempty"`
}

// AddSleep logs one night. A date can only be logged once; later changes go
// through UpdateSleep.
func AddSleep(st *store.Stores, in SleepInput, now time.Time) (model.SleepLog, error) {
	in.Quality = strings.ToLower(strings.TrimSpace(in.Quality))
	if err := validateInput(in); err != nil {
		return model.SleepLog{}, err
	}
	date := dateOrToday(in.Date, now)
	if existing, ok := st.Sleep.LogForDate(date); ok {
		return model.SleepLog{}, fmt.Errorf("sleep for %s already logged (id %s); use `sleep update`", date, existing.ID)
	}
	entry := model.SleepLog{
		ID:            formula.NewID(),
		Date:          date,
		DurationHours: in.DurationHours,
		Quality:       model.SleepQuality(in.Quality),
		Notes:         strings.TrimSpace(in.Notes),
	}
	st.Sleep.AddLog(entry)
	return entry, nil
}

func UpdateSleep(st *store.Stores, id string, in SleepUpdateInput) error {
	if in.Quality != nil {
		in.Quality = ptr(strings.ToLower(strings.TrimSpace(*in.Quality)))
	}
	if err := validateInput(in); err != nil {
		return err
	}
	patch := model.SleepLogPatch{DurationHours: in.DurationHours, Notes: in.Notes}
	if in.Quality != nil {
		patch.Quality = ptr(model.SleepQuality(*in.Quality))
	}
	if !st.Sleep.UpdateLog(strings.TrimSpace(id), patch) {
		return fmt.Errorf("sleep log %q: %w", id, ErrNotFound)
	}
	return nil
}

func SleepForDate(st *store.Stores, date string, now time.Time) (model.SleepLog, error) {
	date = dateOrToday(date, now)
	l, ok := st.Sleep.LogForDate(date)
	if !ok {
		return model.SleepLog{}, fmt.Errorf("sleep for %s: %w", date, ErrNotFound)
	}
	return l, nil
}

// WeeklySleep summarises the seven nights ending on now's date.
func WeeklySleep(st *store.Stores, now time.Time) SleepWeek {
	days := formula.SleepWindow(st.Sleep.Logs(), now, 7)
	out := SleepWeek{Days: days}
	var total float64
	for _, d := range days {
		if d.DurationHours > 0 {
			total += d.DurationHours
			out.LoggedNights++
		}
	}
	if out.LoggedNights > 0 {
		out.AverageHours = formula.Round1(total / float64(out.LoggedNights))
	}
	if p, ok := st.User.Profile(); ok && p.Age > 0 {
		out.RecommendedHours = formula.SleepRecommendation(p.Age)
	}
	return out
}
