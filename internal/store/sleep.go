package store

import (
	"slices"

	"github.com/saadjs/fittrack-cli/internal/model"
)

// SleepStore expects at most one log per date but does not enforce it;
// LogForDate returns the earliest one.
type SleepStore struct {
	c cell[[]model.SleepLog]
}

func NewSleepStore() *SleepStore {
	return &SleepStore{}
}

func (s *SleepStore) Logs() []model.SleepLog {
	return slices.Clone(s.c.load())
}

func (s *SleepStore) AddLog(log model.SleepLog) {
	s.c.update(func(logs []model.SleepLog) ([]model.SleepLog, bool) {
		return appended(logs, log), true
	})
}

func (s *SleepStore) UpdateLog(id string, patch model.SleepLogPatch) bool {
	return s.c.update(func(logs []model.SleepLog) ([]model.SleepLog, bool) {
		return replaced(logs, func(l model.SleepLog) bool { return l.ID == id }, patch.Apply)
	})
}

func (s *SleepStore) LogForDate(date string) (model.SleepLog, bool) {
	return first(s.c.load(), func(l model.SleepLog) bool { return l.Date == date })
}

func (s *SleepStore) Subscribe(fn func()) (unsubscribe func()) {
	return s.c.subscribe(func([]model.SleepLog) { fn() })
}

func (s *SleepStore) snapshot(snap *model.Snapshot) {
	snap.SleepLogs = slices.Clone(s.c.load())
}

func (s *SleepStore) restore(snap model.Snapshot) {
	s.c.update(func([]model.SleepLog) ([]model.SleepLog, bool) {
		return slices.Clone(snap.SleepLogs), true
	})
}
