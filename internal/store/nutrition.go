package store

import (
	"slices"

	"github.com/saadjs/fittrack-cli/internal/model"
)

type nutritionState struct {
	plan      *model.MealPlan
	mealLogs  []model.MealLog
	waterLogs []model.WaterLog
}

type NutritionStore struct {
	c cell[nutritionState]
}

func NewNutritionStore() *NutritionStore {
	return &NutritionStore{}
}

func (s *NutritionStore) CurrentMealPlan() (model.MealPlan, bool) {
	st := s.c.load()
	if st.plan == nil {
		return model.MealPlan{}, false
	}
	return *st.plan, true
}

func (s *NutritionStore) SetCurrentMealPlan(plan model.MealPlan) {
	s.c.update(func(st nutritionState) (nutritionState, bool) {
		st.plan = &plan
		return st, true
	})
}

func (s *NutritionStore) MealLogs() []model.MealLog {
	return slices.Clone(s.c.load().mealLogs)
}

func (s *NutritionStore) AddMealLog(log model.MealLog) {
	s.c.update(func(st nutritionState) (nutritionState, bool) {
		st.mealLogs = appended(st.mealLogs, log)
		return st, true
	})
}

func (s *NutritionStore) UpdateMealLog(id string, patch model.MealLogPatch) bool {
	return s.c.update(func(st nutritionState) (nutritionState, bool) {
		next, ok := replaced(st.mealLogs, func(l model.MealLog) bool { return l.ID == id }, patch.Apply)
		st.mealLogs = next
		return st, ok
	})
}

func (s *NutritionStore) MealLogsForDate(date string) []model.MealLog {
	return filtered(s.c.load().mealLogs, func(l model.MealLog) bool { return l.Date == date })
}

func (s *NutritionStore) WaterLogs() []model.WaterLog {
	return slices.Clone(s.c.load().waterLogs)
}

func (s *NutritionStore) AddWaterLog(log model.WaterLog) {
	s.c.update(func(st nutritionState) (nutritionState, bool) {
		st.waterLogs = appended(st.waterLogs, log)
		return st, true
	})
}

func (s *NutritionStore) WaterLogsForDate(date string) []model.WaterLog {
	return filtered(s.c.load().waterLogs, func(l model.WaterLog) bool { return l.Date == date })
}

// TotalWaterForDate sums the water logged on date in ml.
func (s *NutritionStore) TotalWaterForDate(date string) int {
	total := 0
	for _, l := range s.c.load().waterLogs {
		if l.Date == date {
			total += l.AmountMl
		}
	}
	return total
}

func (s *NutritionStore) Subscribe(fn func()) (unsubscribe func()) {
	return s.c.subscribe(func(nutritionState) { fn() })
}

func (s *NutritionStore) snapshot(snap *model.Snapshot) {
	st := s.c.load()
	if st.plan != nil {
		p := *st.plan
		snap.MealPlan = &p
	}
	snap.MealLogs = slices.Clone(st.mealLogs)
	snap.WaterLogs = slices.Clone(st.waterLogs)
}

func (s *NutritionStore) restore(snap model.Snapshot) {
	var plan *model.MealPlan
	if snap.MealPlan != nil {
		p := *snap.MealPlan
		plan = &p
	}
	s.c.update(func(nutritionState) (nutritionState, bool) {
		return nutritionState{
			plan:      plan,
			mealLogs:  slices.Clone(snap.MealLogs),
			waterLogs: slices.Clone(snap.WaterLogs),
		}, true
	})
}
