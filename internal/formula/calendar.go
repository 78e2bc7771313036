package formula

import (
	"time"

	"github.com/saadjs/fittrack-cli/internal/model"
)

const MonthLayout = "2006-01"

type CalendarDay struct {
	Date       string `json:"date" yaml:"date"`
	Day        int    `json:"day" yaml:"day"`
	HasWorkout bool   `json:"has_workout" yaml:"has_workout"`
	HasMeal    bool   `json:"has_meal" yaml:"has_meal"`
}

// MonthGrid is one calendar month laid out Sunday first. LeadingBlanks is
// the number of empty cells before the 1st.
type MonthGrid struct {
	Month         string        `json:"month" yaml:"month"`
	LeadingBlanks int           `json:"leading_blanks" yaml:"leading_blanks"`
	Days          []CalendarDay `json:"days" yaml:"days"`
}

// MonthActivity flags every day of month's calendar month that has at least
// one workout log or meal log, completed or not.
func MonthActivity(workoutLogs []model.WorkoutLog, mealLogs []model.MealLog, month time.Time) MonthGrid {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())

	workouts := make(map[string]bool, len(workoutLogs))
	for _, l := range workoutLogs {
		workouts[l.Date] = true
	}
	meals := make(map[string]bool, len(mealLogs))
	for _, l := range mealLogs {
		meals[l.Date] = true
	}

	grid := MonthGrid{Month: first.Format(MonthLayout), LeadingBlanks: int(first.Weekday())}
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		date := d.Format(DateLayout)
		grid.Days = append(grid.Days, CalendarDay{
			Date:       date,
			Day:        d.Day(),
			HasWorkout: workouts[date],
			HasMeal:    meals[date],
		})
	}
	return grid
}

// Weeks splits the grid into rows of seven. Cells before the 1st and after
// the last day are nil.
func (g MonthGrid) Weeks() [][]*CalendarDay {
	cells := make([]*CalendarDay, g.LeadingBlanks, g.LeadingBlanks+len(g.Days)+6)
	for i := range g.Days {
		cells = append(cells, &g.Days[i])
	}
	for len(cells)%7 != 0 {
		cells = append(cells, nil)
	}
	weeks := make([][]*CalendarDay, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}
