package store

import (
	"slices"

	"github.com/saadjs/fittrack-cli/internal/model"
)

type workoutState struct {
	plan *model.WorkoutPlan
	logs []model.WorkoutLog
}

// WorkoutStore holds the active plan template and the completion log.
// Logs reference workouts by id only; changing the plan never touches them.
type WorkoutStore struct {
	c cell[workoutState]
}

func NewWorkoutStore() *WorkoutStore {
	return &WorkoutStore{}
}

func (s *WorkoutStore) CurrentPlan() (model.WorkoutPlan, bool) {
	st := s.c.load()
	if st.plan == nil {
		return model.WorkoutPlan{}, false
	}
	return *st.plan, true
}

// SetCurrentPlan installs plan as given. Plans with two workouts on the same
// weekday are accepted; WorkoutForDay then returns the first.
func (s *WorkoutStore) SetCurrentPlan(plan model.WorkoutPlan) {
	s.c.update(func(st workoutState) (workoutState, bool) {
		st.plan = &plan
		return st, true
	})
}

// WorkoutForDay returns the first workout of the current plan scheduled on
// weekday (0 = Sunday).
func (s *WorkoutStore) WorkoutForDay(weekday int) (model.Workout, bool) {
	st := s.c.load()
	if st.plan == nil {
		return model.Workout{}, false
	}
	return first(st.plan.Workouts, func(w model.Workout) bool { return w.DayOfWeek == weekday })
}

func (s *WorkoutStore) Logs() []model.WorkoutLog {
	return slices.Clone(s.c.load().logs)
}

func (s *WorkoutStore) AddLog(log model.WorkoutLog) {
	s.c.update(func(st workoutState) (workoutState, bool) {
		st.logs = appended(st.logs, log)
		return st, true
	})
}

// UpdateLog patches the log with id and reports whether one matched.
func (s *WorkoutStore) UpdateLog(id string, patch model.WorkoutLogPatch) bool {
	return s.c.update(func(st workoutState) (workoutState, bool) {
		next, ok := replaced(st.logs, func(l model.WorkoutLog) bool { return l.ID == id }, patch.Apply)
		st.logs = next
		return st, ok
	})
}

// LogsForDate returns the logs on date in insertion order.
func (s *WorkoutStore) LogsForDate(date string) []model.WorkoutLog {
	return filtered(s.c.load().logs, func(l model.WorkoutLog) bool { return l.Date == date })
}

func (s *WorkoutStore) Subscribe(fn func()) (unsubscribe func()) {
	return s.c.subscribe(func(workoutState) { fn() })
}

func (s *WorkoutStore) snapshot(snap *model.Snapshot) {
	st := s.c.load()
	if st.plan != nil {
		p := *st.plan
		snap.WorkoutPlan = &p
	}
	snap.WorkoutLogs = slices.Clone(st.logs)
}

func (s *WorkoutStore) restore(snap model.Snapshot) {
	var plan *model.WorkoutPlan
	if snap.WorkoutPlan != nil {
		p := *snap.WorkoutPlan
		plan = &p
	}
	s.c.update(func(workoutState) (workoutState, bool) {
		return workoutState{plan: plan, logs: slices.Clone(snap.WorkoutLogs)}, true
	})
}
