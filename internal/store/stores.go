package store

import "github.com/saadjs/fittrack-cli/internal/model"

// Stores bundles one instance of every store. Build it once at startup and
// pass it to whatever renders or mutates state.
type Stores struct {
	User      *UserStore
	Workout   *WorkoutStore
	Nutrition *NutritionStore
	Sleep     *SleepStore
	Progress  *ProgressStore
	Reminder  *ReminderStore
}

func New() *Stores {
	return &Stores{
		User:      NewUserStore(),
		Workout:   NewWorkoutStore(),
		Nutrition: NewNutritionStore(),
		Sleep:     NewSleepStore(),
		Progress:  NewProgressStore(),
		Reminder:  NewReminderStore(),
	}
}

// Snapshot captures every store. Stores are read one after another, so a
// mutation racing with Snapshot may be seen by some stores and not others.
func (s *Stores) Snapshot() model.Snapshot {
	var snap model.Snapshot
	s.User.snapshot(&snap)
	s.Workout.snapshot(&snap)
	s.Nutrition.snapshot(&snap)
	s.Sleep.snapshot(&snap)
	s.Progress.snapshot(&snap)
	s.Reminder.snapshot(&snap)
	return snap
}

// Restore replaces the state of every store with snap. Each store notifies
// its own subscribers.
func (s *Stores) Restore(snap model.Snapshot) {
	s.User.restore(snap)
	s.Workout.restore(snap)
	s.Nutrition.restore(snap)
	s.Sleep.restore(snap)
	s.Progress.restore(snap)
	s.Reminder.restore(snap)
}

// Subscribe registers fn on every store.
func (s *Stores) Subscribe(fn func()) (unsubscribe func()) {
	unsubs := []func(){
		s.User.Subscribe(fn),
		s.Workout.Subscribe(fn),
		s.Nutrition.Subscribe(fn),
		s.Sleep.Subscribe(fn),
		s.Progress.Subscribe(fn),
		s.Reminder.Subscribe(fn),
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
