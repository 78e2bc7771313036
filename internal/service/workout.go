package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/saadjs/fittrack-cli/internal/formula"
	"github.com/saadjs/fittrack-cli/internal/model"
	"github.com/saadjs/fittrack-cli/internal/store"
)

type WorkoutLogInput struct {
	Date           string `validate:"omitempty,datetime=2006-01-02"`
	WorkoutID      string `validate:"required"`
	Completed      bool
	ExerciseLogs   []model.ExerciseLog
	DurationMin    int `validate:"gte=0"`
	CaloriesBurned int `validate:"gte=0"`
	AvgHeartRate   int `validate:"gte=0"`
	PeakHeartRate  int `validate:"gte=0"`
	Notes          string
}

type WorkoutLogUpdateInput struct {
	Date           *string `validate:"omitempty,datetime=2006-01-02"`
	Completed      *bool
	DurationMin    *int `validate:"omitempty,gte=0"`
	CaloriesBurned *int `validate:"omitempty,gte=0"`
	Notes          *string
}

// SetWorkoutPlan installs plan as the current plan. Workouts must fall on
// distinct weekdays; missing ids are generated.
func SetWorkoutPlan(st *store.Stores, plan model.WorkoutPlan) (model.WorkoutPlan, error) {
	plan.Name = strings.TrimSpace(plan.Name)
	if plan.Name == "" {
		return model.WorkoutPlan{}, fmt.Errorf("workout plan name is required")
	}
	if plan.ID == "" {
		plan.ID = formula.NewID()
	}
	seen := make(map[int]string, len(plan.Workouts))
	workouts := make([]model.Workout, 0, len(plan.Workouts))
	for i, w := range plan.Workouts {
		if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
			return model.WorkoutPlan{}, fmt.Errorf("workout %d: day_of_week must be 0-6, got %d", i+1, w.DayOfWeek)
		}
		if prev, ok := seen[w.DayOfWeek]; ok {
			return model.WorkoutPlan{}, fmt.Errorf("%w: %q and %q on %s", ErrDuplicateWorkoutDay, prev, w.Name, formula.DaysOfWeek()[w.DayOfWeek])
		}
		seen[w.DayOfWeek] = w.Name
		if w.ID == "" {
			w.ID = formula.NewID()
		}
		if w.Type != "" && !validWorkoutType(w.Type) {
			return model.WorkoutPlan{}, fmt.Errorf("workout %q: unknown type %q", w.Name, w.Type)
		}
		for j := range w.Exercises {
			if w.Exercises[j].ID == "" {
				w.Exercises[j].ID = formula.NewID()
			}
		}
		workouts = append(workouts, w)
	}
	plan.Workouts = workouts
	st.Workout.SetCurrentPlan(plan)
	log.WithFields(log.Fields{"plan_id": plan.ID, "workouts": len(workouts)}).Debug("workout plan installed")
	return plan, nil
}

func validWorkoutType(t model.WorkoutType) bool {
	switch t {
	case model.WorkoutStrength, model.WorkoutCardio, model.WorkoutFlexibility, model.WorkoutBalance:
		return true
	}
	return false
}

func CurrentWorkoutPlan(st *store.Stores) (model.WorkoutPlan, error) {
	plan, ok := st.Workout.CurrentPlan()
	if !ok {
		return model.WorkoutPlan{}, fmt.Errorf("workout plan: %w", ErrNotFound)
	}
	return plan, nil
}

func AddWorkoutLog(st *store.Stores, in WorkoutLogInput, now time.Time) (model.WorkoutLog, error) {
	in.WorkoutID = strings.TrimSpace(in.WorkoutID)
	if err := validateInput(in); err != nil {
		return model.WorkoutLog{}, err
	}
	if plan, ok := st.Workout.CurrentPlan(); !ok || !planHasWorkout(plan, in.WorkoutID) {
		log.WithField("workout_id", in.WorkoutID).Warn("logging workout that is not in the current plan")
	}
	entry := model.WorkoutLog{
		ID:             formula.NewID(),
		Date:           dateOrToday(in.Date, now),
		WorkoutID:      in.WorkoutID,
		Completed:      in.Completed,
		ExerciseLogs:   in.ExerciseLogs,
		DurationMin:    in.DurationMin,
		CaloriesBurned: in.CaloriesBurned,
		HeartRate:      model.HeartRate{Average: in.AvgHeartRate, Peak: in.PeakHeartRate},
		Notes:          strings.TrimSpace(in.Notes),
	}
	st.Workout.AddLog(entry)
	return entry, nil
}

func UpdateWorkoutLog(st *store.Stores, id string, in WorkoutLogUpdateInput) error {
	if err := validateInput(in); err != nil {
		return err
	}
	patch := model.WorkoutLogPatch{
		Date:           in.Date,
		Completed:      in.Completed,
		DurationMin:    in.DurationMin,
		CaloriesBurned: in.CaloriesBurned,
		Notes:          in.Notes,
	}
	if !st.Workout.UpdateLog(strings.TrimSpace(id), patch) {
		return fmt.Errorf("workout log %q: %w", id, ErrNotFound)
	}
	return nil
}

// ListWorkoutLogs returns the logs on date, or every log when date is empty.
func ListWorkoutLogs(st *store.Stores, date string) ([]model.WorkoutLog, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return st.Workout.Logs(), nil
	}
	if err := validate.Var(date, "datetime=2006-01-02"); err != nil {
		return nil, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return st.Workout.LogsForDate(date), nil
}

func planHasWorkout(plan model.WorkoutPlan, id string) bool {
	for _, w := range plan.Workouts {
		if w.ID == id {
			return true
		}
	}
	return false
}

// ParseSetLogs groups "exercise:WEIGHTxREPS" values into exercise logs, one
// per exercise in first-seen order. Sets parsed this way count as completed.
func ParseSetLogs(values []string) ([]model.ExerciseLog, error) {
	var out []model.ExerciseLog
	index := map[string]int{}
	for _, raw := range values {
		exerciseID, setSpec, ok := strings.Cut(strings.TrimSpace(raw), ":")
		if !ok || exerciseID == "" {
			return nil, fmt.Errorf("invalid set %q (expected exercise:WEIGHTxREPS)", raw)
		}
		weightStr, repsStr, ok := strings.Cut(strings.ToLower(setSpec), "x")
		if !ok {
			return nil, fmt.Errorf("invalid set %q (expected exercise:WEIGHTxREPS)", raw)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(weightStr), 64)
		if err != nil || weight < 0 {
			return nil, fmt.Errorf("invalid weight in set %q", raw)
		}
		reps, err := strconv.Atoi(strings.TrimSpace(repsStr))
		if err != nil || reps < 0 {
			return nil, fmt.Errorf("invalid reps in set %q", raw)
		}
		i, seen := index[exerciseID]
		if !seen {
			i = len(out)
			index[exerciseID] = i
			out = append(out, model.ExerciseLog{ExerciseID: exerciseID})
		}
		out[i].Sets = append(out[i].Sets, model.SetLog{Weight: weight, Reps: reps, Completed: true})
	}
	return out, nil
}
