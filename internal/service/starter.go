package service

import (
	_ "embed"

	"github.com/saadjs/fittrack-cli/internal/model"
	"github.com/saadjs/fittrack-cli/internal/store"
)

var (
	//go:embed starter/workout_plan.yaml
	starterWorkoutPlan []byte
	//go:embed starter/meal_plan.yaml
	starterMealPlan []byte
)

// StarterWorkoutPlan is the three-day classic physique plan offered to users
// who have not installed one yet.
func StarterWorkoutPlan() (model.WorkoutPlan, error) {
	var plan model.WorkoutPlan
	if err := Decode(starterWorkoutPlan, FormatYAML, &plan); err != nil {
		return model.WorkoutPlan{}, err
	}
	return plan, nil
}

func StarterMealPlan() (model.MealPlan, error) {
	var plan model.MealPlan
	if err := Decode(starterMealPlan, FormatYAML, &plan); err != nil {
		return model.MealPlan{}, err
	}
	return plan, nil
}

// InstallStarterWorkoutPlan installs the starter plan unless force is false
// and a plan is already present, in which case the current plan is returned.
func InstallStarterWorkoutPlan(st *store.Stores, force bool) (model.WorkoutPlan, bool, error) {
	if cur, ok := st.Workout.CurrentPlan(); ok && !force {
		return cur, false, nil
	}
	plan, err := StarterWorkoutPlan()
	if err != nil {
		return model.WorkoutPlan{}, false, err
	}
	installed, err := SetWorkoutPlan(st, plan)
	return installed, err == nil, err
}

func InstallStarterMealPlan(st *store.Stores, force bool) (model.MealPlan, bool, error) {
	if cur, ok := st.Nutrition.CurrentMealPlan(); ok && !force {
		return cur, false, nil
	}
	plan, err := StarterMealPlan()
	if err != nil {
		return model.MealPlan{}, false, err
	}
	installed, err := SetMealPlan(st, plan)
	return installed, err == nil, err
}
