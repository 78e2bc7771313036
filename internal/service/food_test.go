package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/saadjs/fittrack-cli/internal/model"
	"github.com/saadjs/fittrack-cli/internal/provider"
	"github.com/saadjs/fittrack-cli/internal/service"
	"github.com/saadjs/fittrack-cli/internal/store"
)

type fakeCatalog struct {
	products map[string]provider.Product
}

func (f fakeCatalog) LookupBarcode(_ context.Context, barcode string) (provider.Product, error) {
	p, ok := f.products[barcode]
	if !ok {
		return provider.Product{}, provider.ErrNotFound
	}
	return p, nil
}

func (f fakeCatalog) SearchFoods(_ context.Context, query string, limit int) ([]provider.Product, error) {
	out := make([]provider.Product, 0)
	for _, p := range f.products {
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

var testCatalog = fakeCatalog{products: map[string]provider.Product{
	"111": {Code: "111", Name: "Skyr", ServingAmount: 150, ServingUnit: "g", Calories: 95, ProteinG: 16.5, CarbsG: 6, FatG: 0.3},
}}

func TestLookupFoodAndAddToMeal(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	food, err := service.LookupFood(ctx, testCatalog, "111")
	if err != nil {
		t.Fatalf("lookup food: %v", err)
	}
	if food.ID == "" || food.Name != "Skyr" || food.Portion != "150 g" || food.Macros.ProteinG != 16.5 {
		t.Fatalf("unexpected food: %+v", food)
	}
	if _, err := service.LookupFood(ctx, testCatalog, "999"); !errors.Is(err, provider.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	st := store.New()
	if _, err := service.AddFoodToMeal(st, "snack", food); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected missing plan error, got %v", err)
	}
	if _, err := service.SetMealPlan(st, model.MealPlan{Name: "Cut", Meals: []model.Meal{
		{ID: "snack", Name: "Snack", Foods: []model.Food{{ID: "apple", Name: "Apple", Calories: 80}}},
		{ID: "dinner", Name: "Dinner", TotalCalories: 500},
	}}); err != nil {
		t.Fatalf("set meal plan: %v", err)
	}
	plan, err := service.AddFoodToMeal(st, "snack", food)
	if err != nil {
		t.Fatalf("add food to meal: %v", err)
	}
	if len(plan.Meals[0].Foods) != 2 || plan.Meals[0].TotalCalories != 175 || plan.TotalCalories != 675 {
		t.Fatalf("unexpected plan after add: %+v", plan)
	}
	if _, err := service.AddFoodToMeal(st, "brunch", food); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected missing meal error, got %v", err)
	}

	foods, err := service.SearchFood(ctx, testCatalog, "skyr", 5)
	if err != nil {
		t.Fatalf("search food: %v", err)
	}
	if len(foods) != 1 || foods[0].ID == food.ID {
		t.Fatalf("expected one food with a fresh id, got %+v", foods)
	}
}
