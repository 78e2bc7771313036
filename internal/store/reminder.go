package store

import (
	"slices"

	"github.com/saadjs/fittrack-cli/internal/model"
)

// ReminderStore keeps notification rules. Nothing here fires them.
type ReminderStore struct {
	c cell[[]model.Reminder]
}

func NewReminderStore() *ReminderStore {
	return &ReminderStore{}
}

func (s *ReminderStore) Reminders() []model.Reminder {
	return slices.Clone(s.c.load())
}

func (s *ReminderStore) Add(r model.Reminder) {
	s.c.update(func(list []model.Reminder) ([]model.Reminder, bool) {
		return appended(list, r), true
	})
}

func (s *ReminderStore) Update(id string, patch model.ReminderPatch) bool {
	return s.c.update(func(list []model.Reminder) ([]model.Reminder, bool) {
		return replaced(list, func(r model.Reminder) bool { return r.ID == id }, patch.Apply)
	})
}

// Delete removes the reminder with id and reports whether one existed.
func (s *ReminderStore) Delete(id string) bool {
	return s.c.update(func(list []model.Reminder) ([]model.Reminder, bool) {
		if !slices.ContainsFunc(list, func(r model.Reminder) bool { return r.ID == id }) {
			return list, false
		}
		return filtered(list, func(r model.Reminder) bool { return r.ID != id }), true
	})
}

func (s *ReminderStore) Active() []model.Reminder {
	return filtered(s.c.load(), func(r model.Reminder) bool { return r.IsActive })
}

func (s *ReminderStore) Subscribe(fn func()) (unsubscribe func()) {
	return s.c.subscribe(func([]model.Reminder) { fn() })
}

func (s *ReminderStore) snapshot(snap *model.Snapshot) {
	snap.Reminders = slices.Clone(s.c.load())
}

func (s *ReminderStore) restore(snap model.Snapshot) {
	s.c.update(func([]model.Reminder) ([]model.Reminder, bool) {
		return slices.Clone(snap.Reminders), true
	})
}
