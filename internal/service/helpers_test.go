package service_test

import (
	"testing"
	"time"

	"github.com/saadjs/fittrack-cli/internal/service"
	"github.com/saadjs/fittrack-cli/internal/store"
)

// Friday.
var testNow = time.Date(2026, 2, 20, 9, 0, 0, 0, time.UTC)

func onboardedStores(t *testing.T) *store.Stores {
	t.Helper()
	st := store.New()
	_, err := service.Onboard(st, service.OnboardInput{
		Name:         "Sam",
		Age:          30,
		Gender:       "male",
		HeightCm:     180,
		WeightKg:     80,
		BodyType:     "mesomorph",
		GoalPhysique: "general_fitness",
		FitnessLevel: "intermediate",
		Allergies:    []string{"peanuts"},
	})
	if err != nil {
		t.Fatalf("onboard: %v", err)
	}
	return st
}
