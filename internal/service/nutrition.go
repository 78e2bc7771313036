package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/saadjs/fittrack-cli/internal/formula"
	"github.com/saadjs/fittrack-cli/internal/model"
	"github.com/saadjs/fittrack-cli/internal/store"
)

type MealLogInput struct {
	Date          string `validate:"omitempty,datetime=2006-01-02"`
	MealID        string `validate:"required"`
	Completed     bool
	ActualFoods   []model.FoodPortion `validate:"dive"`
	TotalCalories int                 `validate:"gte=0"`
	Notes         string
}

type MealLogUpdateInput struct {
	Date          *string `validate:"omitempty,datetime=2006-01-02"`
	Completed     *bool
	ActualFoods   []model.FoodPortion
	TotalCalories *int `validate:"omitempty,gte=0"`
	Notes         *string
}

type WaterInput struct {
	Date     string `validate:"omitempty,datetime=2006-01-02"`
	Time     string `validate:"omitempty,hhmm"`
	AmountMl int    `validate:"gt=0,lte=10000"`
}

type WaterSummary struct {
	Date      string `json:"date" yaml:"date"`
	TotalMl   int    `json:"total_ml" yaml:"total_ml"`
	TargetMl  int    `json:"target_ml,omitempty" yaml:"target_ml,omitempty"`
	Remaining int    `json:"remaining_ml,omitempty" yaml:"remaining_ml,omitempty"`
	Logs      int    `json:"logs" yaml:"logs"`
}

// SetMealPlan installs plan as the current meal plan. Meal and plan totals
// left at zero are summed from their foods.
func SetMealPlan(st *store.Stores, plan model.MealPlan) (model.MealPlan, error) {
	plan.Name = strings.TrimSpace(plan.Name)
	if plan.Name == "" {
		return model.MealPlan{}, fmt.Errorf("meal plan name is required")
	}
	if plan.ID == "" {
		plan.ID = formula.NewID()
	}
	meals := make([]model.Meal, 0, len(plan.Meals))
	var planCalories int
	var planMacros model.Macros
	for _, m := range plan.Meals {
		if m.Time != "" {
			if !formula.ValidTime(m.Time) {
				return model.MealPlan{}, fmt.Errorf("meal %q: invalid time %q (expected HH:MM)", m.Name, m.Time)
			}
		}
		if m.Type != "" && !validMealType(m.Type) {
			return model.MealPlan{}, fmt.Errorf("meal %q: unknown type %q", m.Name, m.Type)
		}
		if m.ID == "" {
			m.ID = formula.NewID()
		}
		foods := make([]model.Food, 0, len(m.Foods))
		var calories float64
		var macros model.Macros
		for _, f := range m.Foods {
			if f.ID == "" {
				f.ID = formula.NewID()
			}
			calories += f.Calories
			macros = addMacros(macros, f.Macros)
			foods = append(foods, f)
		}
		m.Foods = foods
		if m.TotalCalories == 0 {
			m.TotalCalories = int(math.Round(calories))
		}
		if m.Macros == (model.Macros{}) {
			m.Macros = macros
		}
		planCalories += m.TotalCalories
		planMacros = addMacros(planMacros, m.Macros)
		meals = append(meals, m)
	}
	plan.Meals = meals
	if plan.TotalCalories == 0 {
		plan.TotalCalories = planCalories
	}
	if plan.Macros == (model.Macros{}) {
		plan.Macros = planMacros
	}
	st.Nutrition.SetCurrentMealPlan(plan)
	log.WithFields(log.Fields{"plan_id": plan.ID, "meals": len(meals)}).Debug("meal plan installed")
	return plan, nil
}

func validMealType(t model.MealType) bool {
	switch t {
	case model.MealBreakfast, model.MealLunch, model.MealDinner, model.MealSnack:
		return true
	}
	return false
}

func addMacros(a, b model.Macros) model.Macros {
	return model.Macros{
		ProteinG: a.ProteinG + b.ProteinG,
		CarbsG:   a.CarbsG + b.CarbsG,
		FatsG:    a.FatsG + b.FatsG,
	}
}

func CurrentMealPlan(st *store.Stores) (model.MealPlan, error) {
	plan, ok := st.Nutrition.CurrentMealPlan()
	if !ok {
		return model.MealPlan{}, fmt.Errorf("meal plan: %w", ErrNotFound)
	}
	return plan, nil
}

func AddMealLog(st *store.Stores, in MealLogInput, now time.Time) (model.MealLog, error) {
	in.MealID = strings.TrimSpace(in.MealID)
	if err := validateInput(in); err != nil {
		return model.MealLog{}, err
	}
	entry := model.MealLog{
		ID:            formula.NewID(),
		Date:          dateOrToday(in.Date, now),
		MealID:        in.MealID,
		Completed:     in.Completed,
		ActualFoods:   in.ActualFoods,
		TotalCalories: in.TotalCalories,
		Notes:         strings.TrimSpace(in.Notes),
	}
	if entry.TotalCalories == 0 {
		if meal, ok := mealByID(st, in.MealID); ok && in.Completed {
			entry.TotalCalories = meal.TotalCalories
		}
	}
	st.Nutrition.AddMealLog(entry)
	return entry, nil
}

func UpdateMealLog(st *store.Stores, id string, in MealLogUpdateInput) error {
	if err := validateInput(in); err != nil {
		return err
	}
	patch := model.MealLogPatch{
		Date:          in.Date,
		Completed:     in.Completed,
		ActualFoods:   in.ActualFoods,
		TotalCalories: in.TotalCalories,
		Notes:         in.Notes,
	}
	if !st.Nutrition.UpdateMealLog(strings.TrimSpace(id), patch) {
		return fmt.Errorf("meal log %q: %w", id, ErrNotFound)
	}
	return nil
}

func ListMealLogs(st *store.Stores, date string) ([]model.MealLog, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return st.Nutrition.MealLogs(), nil
	}
	if err := validate.Var(date, "datetime=2006-01-02"); err != nil {
		return nil, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return st.Nutrition.MealLogsForDate(date), nil
}

func mealByID(st *store.Stores, id string) (model.Meal, bool) {
	plan, ok := st.Nutrition.CurrentMealPlan()
	if !ok {
		return model.Meal{}, false
	}
	for _, m := range plan.Meals {
		if m.ID == id {
			return m, true
		}
	}
	return model.Meal{}, false
}

func AddWater(st *store.Stores, in WaterInput, now time.Time) (model.WaterLog, error) {
	in.Time = strings.TrimSpace(in.Time)
	if err := validateInput(in); err != nil {
		return model.WaterLog{}, err
	}
	if in.Time == "" {
		in.Time = now.Format(formula.TimeLayout)
	}
	entry := model.WaterLog{
		ID:       formula.NewID(),
		Date:     dateOrToday(in.Date, now),
		AmountMl: in.AmountMl,
		Time:     in.Time,
	}
	st.Nutrition.AddWaterLog(entry)
	return entry, nil
}

func ListWater(st *store.Stores, date string) ([]model.WaterLog, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return st.Nutrition.WaterLogs(), nil
	}
	if err := validate.Var(date, "datetime=2006-01-02"); err != nil {
		return nil, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return st.Nutrition.WaterLogsForDate(date), nil
}

// WaterTotal sums a day's water. The target comes from the profile weight
// when a profile exists.
func WaterTotal(st *store.Stores, date string, now time.Time) (WaterSummary, error) {
	date = dateOrToday(date, now)
	if err := validate.Var(date, "datetime=2006-01-02"); err != nil {
		return WaterSummary{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	out := WaterSummary{
		Date:    date,
		TotalMl: st.Nutrition.TotalWaterForDate(date),
		Logs:    len(st.Nutrition.WaterLogsForDate(date)),
	}
	if p, ok := st.User.Profile(); ok && p.WeightKg > 0 {
		out.TargetMl = formula.WaterRecommendation(p.WeightKg)
		out.Remaining = max(out.TargetMl-out.TotalMl, 0)
	}
	return out, nil
}
