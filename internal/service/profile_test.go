package service_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/saadjs/fittrack-cli/internal/service"
	"github.com/saadjs/fittrack-cli/internal/store"
)

func TestProfileRequiresOnboarding(t *testing.T) {
	t.Parallel()

	st := store.New()
	if _, err := service.Profile(st); !errors.Is(err, service.ErrNotOnboarded) {
		t.Fatalf("expected ErrNotOnboarded, got %v", err)
	}
	if err := service.AddAllergy(st, "gluten"); !errors.Is(err, service.ErrNotOnboarded) {
		t.Fatalf("expected ErrNotOnboarded for allergy, got %v", err)
	}
}

func TestOnboardValidatesInput(t *testing.T) {
	t.Parallel()

	st := store.New()
	_, err := service.Onboard(st, service.OnboardInput{Name: " ", Age: 0, Gender: "robot", HeightCm: 180, WeightKg: 80})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"Name is required", "Age must satisfy gte 1", "Gender must be one of"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %v", want, err)
		}
	}
	if st.User.IsOnboarded() {
		t.Fatalf("failed onboarding must not flip the latch")
	}
}

func TestOnboardTwiceKeepsID(t *testing.T) {
	t.Parallel()

	st := onboardedStores(t)
	first, _ := service.Profile(st)

	second, err := service.Onboard(st, service.OnboardInput{
		Name: "Sam", Age: 31, Gender: "male", HeightCm: 180, WeightKg: 79,
		BodyType: "mesomorph", GoalPhysique: "powerlifter", FitnessLevel: "advanced",
	})
	if err != nil {
		t.Fatalf("second onboard: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected id %s to be kept, got %s", first.ID, second.ID)
	}
	if second.Age != 31 || second.Allergies != nil {
		t.Fatalf("expected profile to be replaced, got %+v", second)
	}
}

func TestUpdateProfileAndLists(t *testing.T) {
	t.Parallel()

	st := onboardedStores(t)
	weight := 78.5
	level := "advanced"
	p, err := service.UpdateProfile(st, service.ProfileUpdateInput{WeightKg: &weight, FitnessLevel: &level})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if p.WeightKg != 78.5 || p.FitnessLevel != "advanced" || p.Name != "Sam" {
		t.Fatalf("unexpected profile after update: %+v", p)
	}

	bad := -1.0
	if _, err := service.UpdateProfile(st, service.ProfileUpdateInput{HeightCm: &bad}); err == nil {
		t.Fatalf("expected error for negative height")
	}
	empty := "  "
	if _, err := service.UpdateProfile(st, service.ProfileUpdateInput{Name: &empty}); err == nil {
		t.Fatalf("expected error for empty name")
	}

	if err := service.AddAllergy(st, "peanuts"); err == nil {
		t.Fatalf("expected duplicate allergy error")
	}
	if err := service.AddHealthIssue(st, " asthma "); err != nil {
		t.Fatalf("add health issue: %v", err)
	}
	if err := service.RemoveHealthIssue(st, "knee"); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := service.RemoveAllergy(st, "peanuts"); err != nil {
		t.Fatalf("remove allergy: %v", err)
	}
	p, _ = service.Profile(st)
	if len(p.Allergies) != 0 || len(p.HealthIssues) != 1 || p.HealthIssues[0] != "asthma" {
		t.Fatalf("unexpected lists: %+v / %+v", p.Allergies, p.HealthIssues)
	}
}

func TestProfileMetrics(t *testing.T) {
	t.Parallel()

	st := onboardedStores(t)
	m, err := service.ProfileMetrics(st, "moderate", "maintain")
	if err != nil {
		t.Fatalf("profile metrics: %v", err)
	}
	if m.BMI != 24.7 || m.BMICategory != "Normal weight" || m.BMR != 1780 {
		t.Fatalf("unexpected body metrics: %+v", m)
	}
	if m.TargetCalories != 2759 || m.WaterMl != 2400 || m.SleepHours != 8 {
		t.Fatalf("unexpected targets: %+v", m)
	}
	if m.Macros.ProteinG != 207 || m.Macros.CarbsG != 276 || m.Macros.FatsG != 92 {
		t.Fatalf("unexpected macros: %+v", m.Macros)
	}

	if _, err := service.ProfileMetrics(st, "couch", "maintain"); err == nil {
		t.Fatalf("expected invalid activity level error")
	}
}
