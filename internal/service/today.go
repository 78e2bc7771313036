package service

import (
	"time"

	"github.com/saadjs/fittrack-cli/internal/formula"
	"github.com/saadjs/fittrack-cli/internal/model"
	"github.com/saadjs/fittrack-cli/internal/store"
)

type TodayStatus struct {
	Date             string             `json:"date" yaml:"date"`
	Weekday          string             `json:"weekday" yaml:"weekday"`
	Workout          *model.Workout     `json:"workout,omitempty" yaml:"workout,omitempty"`
	WorkoutLogged    bool               `json:"workout_logged" yaml:"workout_logged"`
	Meals            []model.Meal       `json:"meals" yaml:"meals"`
	MealsLogged      int                `json:"meals_logged" yaml:"meals_logged"`
	CaloriesEaten    int                `json:"calories_eaten" yaml:"calories_eaten"`
	CaloriesBurned   int                `json:"calories_burned" yaml:"calories_burned"`
	WaterMl          int                `json:"water_ml" yaml:"water_ml"`
	WaterTargetMl    int                `json:"water_target_ml,omitempty" yaml:"water_target_ml,omitempty"`
	Sleep            *model.SleepLog    `json:"sleep,omitempty" yaml:"sleep,omitempty"`
	SleepTargetHours float64            `json:"sleep_target_hours,omitempty" yaml:"sleep_target_hours,omitempty"`
	Reminders        []model.Reminder   `json:"reminders" yaml:"reminders"`
	Week             []formula.Day      `json:"week" yaml:"week"`
	Macros           formula.MacroGrams `json:"macro_target" yaml:"macro_target"`
	HasProfile       bool               `json:"has_profile" yaml:"has_profile"`
}

// TodaySummary builds the dashboard for date's day. Targets are filled in
// only when a profile exists.
func TodaySummary(st *store.Stores, date time.Time, level formula.ActivityLevel, goal formula.MacroGoal) TodayStatus {
	day := beginningOfDay(date)
	iso := day.Format(formula.DateLayout)
	status := TodayStatus{
		Date:      iso,
		Weekday:   day.Weekday().String(),
		Meals:     []model.Meal{},
		Reminders: []model.Reminder{},
		Week:      formula.Next7Days(day),
	}

	if w, ok := st.Workout.WorkoutForDay(int(day.Weekday())); ok {
		status.Workout = &w
	}
	for _, l := range st.Workout.LogsForDate(iso) {
		if status.Workout != nil && l.WorkoutID == status.Workout.ID && l.Completed {
			status.WorkoutLogged = true
		}
		status.CaloriesBurned += l.CaloriesBurned
	}

	if plan, ok := st.Nutrition.CurrentMealPlan(); ok {
		status.Meals = plan.Meals
	}
	for _, l := range st.Nutrition.MealLogsForDate(iso) {
		if l.Completed {
			status.MealsLogged++
			status.CaloriesEaten += l.TotalCalories
		}
	}
	status.WaterMl = st.Nutrition.TotalWaterForDate(iso)

	if s, ok := st.Sleep.LogForDate(iso); ok {
		status.Sleep = &s
	}

	weekday := int(day.Weekday())
	for _, r := range st.Reminder.Active() {
		for _, d := range r.DaysOfWeek {
			if d == weekday {
				status.Reminders = append(status.Reminders, r)
				break
			}
		}
	}

	if p, ok := st.User.Profile(); ok {
		status.HasProfile = true
		status.WaterTargetMl = formula.WaterRecommendation(p.WeightKg)
		status.SleepTargetHours = formula.SleepRecommendation(p.Age)
		bmr := formula.BMR(p.WeightKg, p.HeightCm, p.Age, p.Gender)
		status.Macros = formula.MacroSplit(formula.TDEE(bmr, level), goal)
	}
	return status
}
