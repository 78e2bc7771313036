package service

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/saadjs/fittrack-cli/internal/formula"
	"github.com/saadjs/fittrack-cli/internal/model"
	"github.com/saadjs/fittrack-cli/internal/store"
)

var everyDay = []int{0, 1, 2, 3, 4, 5, 6}

type ReminderInput struct {
	Type       string `validate:"oneof=workout meal water sleep"`
	Time       string `validate:"required,hhmm"`
	Message    string `validate:"required"`
	DaysOfWeek []int  `validate:"unique,dive,gte=0,lte=6"`
	Inactive   bool
}

type ReminderUpdateInput struct {
	Type       *string `validate:"omitempty,oneof=workout meal water sleep"`
	Time       *string `validate:"omitempty,hhmm"`
	Message    *string
	IsActive   *bool
	DaysOfWeek []int `validate:"omitempty,unique,dive,gte=0,lte=6"`
}

// AddReminder stores a new reminder. No days means every day.
func AddReminder(st *store.Stores, in ReminderInput) (model.Reminder, error) {
	in.Message = strings.TrimSpace(in.Message)
	if err := validateInput(in); err != nil {
		return model.Reminder{}, err
	}
	days := slices.Clone(in.DaysOfWeek)
	if len(days) == 0 {
		days = slices.Clone(everyDay)
	}
	slices.Sort(days)
	r := model.Reminder{
		ID:         formula.NewID(),
		Type:       model.ReminderType(in.Type),
		Time:       in.Time,
		Message:    in.Message,
		IsActive:   !in.Inactive,
		DaysOfWeek: days,
	}
	st.Reminder.Add(r)
	return r, nil
}

func UpdateReminder(st *store.Stores, id string, in ReminderUpdateInput) error {
	if in.Message != nil {
		in.Message = ptr(strings.TrimSpace(*in.Message))
		if *in.Message == "" {
			return fmt.Errorf("message cannot be empty")
		}
	}
	if err := validateInput(in); err != nil {
		return err
	}
	patch := model.ReminderPatch{Time: in.Time, Message: in.Message, IsActive: in.IsActive}
	if in.Type != nil {
		patch.Type = ptr(model.ReminderType(*in.Type))
	}
	if in.DaysOfWeek != nil {
		patch.DaysOfWeek = slices.Sorted(slices.Values(in.DaysOfWeek))
	}
	if !st.Reminder.Update(strings.TrimSpace(id), patch) {
		return fmt.Errorf("reminder %q: %w", id, ErrNotFound)
	}
	return nil
}

func DeleteReminder(st *store.Stores, id string) error {
	if !st.Reminder.Delete(strings.TrimSpace(id)) {
		return fmt.Errorf("reminder %q: %w", id, ErrNotFound)
	}
	return nil
}

func ListReminders(st *store.Stores, activeOnly bool) []model.Reminder {
	if activeOnly {
		return st.Reminder.Active()
	}
	return st.Reminder.Reminders()
}

// DueReminders lists the active reminders firing at now's minute.
func DueReminders(st *store.Stores, now time.Time) []model.Reminder {
	return formula.DueReminders(st.Reminder.Reminders(), now)
}
