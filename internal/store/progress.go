package store

import (
	"slices"

	"github.com/saadjs/fittrack-cli/internal/model"
)

// ProgressStore keys entries by date. UpdateLog patches every entry on the
// date, LogForDate returns the earliest.
type ProgressStore struct {
	c cell[[]model.Progress]
}

func NewProgressStore() *ProgressStore {
	return &ProgressStore{}
}

func (s *ProgressStore) Logs() []model.Progress {
	return slices.Clone(s.c.load())
}

func (s *ProgressStore) AddLog(entry model.Progress) {
	s.c.update(func(entries []model.Progress) ([]model.Progress, bool) {
		return appended(entries, entry), true
	})
}

func (s *ProgressStore) UpdateLog(date string, patch model.ProgressPatch) bool {
	return s.c.update(func(entries []model.Progress) ([]model.Progress, bool) {
		return replaced(entries, func(e model.Progress) bool { return e.Date == date }, patch.Apply)
	})
}

func (s *ProgressStore) LogForDate(date string) (model.Progress, bool) {
	return first(s.c.load(), func(e model.Progress) bool { return e.Date == date })
}

func (s *ProgressStore) Subscribe(fn func()) (unsubscribe func()) {
	return s.c.subscribe(func([]model.Progress) { fn() })
}

func (s *ProgressStore) snapshot(snap *model.Snapshot) {
	snap.ProgressEntries = slices.Clone(s.c.load())
}

func (s *ProgressStore) restore(snap model.Snapshot) {
	s.c.update(func([]model.Progress) ([]model.Progress, bool) {
		return slices.Clone(snap.ProgressEntries), true
	})
}
