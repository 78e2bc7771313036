package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/saadjs/fittrack-cli/internal/formula"
	"github.com/saadjs/fittrack-cli/internal/model"
	"github.com/saadjs/fittrack-cli/internal/provider"
	"github.com/saadjs/fittrack-cli/internal/store"
)

// FoodCatalog is a food lookup backend such as openfoodfacts.Client or
// usda.Client.
type FoodCatalog interface {
	LookupBarcode(ctx context.Context, barcode string) (provider.Product, error)
	SearchFoods(ctx context.Context, query string, limit int) ([]provider.Product, error)
}

func LookupFood(ctx context.Context, catalog FoodCatalog, barcode string) (model.Food, error) {
	p, err := catalog.LookupBarcode(ctx, barcode)
	if err != nil {
		return model.Food{}, err
	}
	return p.Food(formula.NewID()), nil
}

func SearchFood(ctx context.Context, catalog FoodCatalog, query string, limit int) ([]model.Food, error) {
	products, err := catalog.SearchFoods(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	out := make([]model.Food, 0, len(products))
	for _, p := range products {
		out = append(out, p.Food(formula.NewID()))
	}
	return out, nil
}

// AddFoodToMeal appends food to a meal of the current meal plan and
// recomputes the meal and plan totals from their foods.
func AddFoodToMeal(st *store.Stores, mealID string, food model.Food) (model.MealPlan, error) {
	plan, ok := st.Nutrition.CurrentMealPlan()
	if !ok {
		return model.MealPlan{}, fmt.Errorf("meal plan: %w", ErrNotFound)
	}
	mealID = strings.TrimSpace(mealID)
	meals := make([]model.Meal, len(plan.Meals))
	copy(meals, plan.Meals)
	found := false
	for i, m := range meals {
		if m.ID != mealID {
			continue
		}
		found = true
		m.Foods = append(append([]model.Food(nil), m.Foods...), food)
		var calories float64
		var macros model.Macros
		for _, f := range m.Foods {
			calories += f.Calories
			macros = addMacros(macros, f.Macros)
		}
		m.TotalCalories = int(math.Round(calories))
		m.Macros = macros
		meals[i] = m
	}
	if !found {
		return model.MealPlan{}, fmt.Errorf("meal %q: %w", mealID, ErrNotFound)
	}
	plan.Meals = meals
	plan.TotalCalories = 0
	plan.Macros = model.Macros{}
	for _, m := range meals {
		plan.TotalCalories += m.TotalCalories
		plan.Macros = addMacros(plan.Macros, m.Macros)
	}
	st.Nutrition.SetCurrentMealPlan(plan)
	return plan, nil
}
