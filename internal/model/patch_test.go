package model_test

import (
	"testing"

	"github.com/saadjs/fittrack-cli/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestEmptyPatchesLeaveRecordsUnchanged(t *testing.T) {
	t.Parallel()

	profile := model.UserProfile{
		ID:        "u1",
		Name:      "Jo",
		Age:       30,
		Gender:    model.GenderFemale,
		HeightCm:  170,
		WeightKg:  62,
		Allergies: []string{"peanuts"},
	}
	assert.Equal(t, profile, model.UserProfilePatch{}.Apply(profile))

	log := model.WorkoutLog{ID: "w1", Date: "2026-02-20", WorkoutID: "wk", DurationMin: 45}
	assert.Equal(t, log, model.WorkoutLogPatch{}.Apply(log))

	meal := model.MealLog{ID: "m1", Date: "2026-02-20", MealID: "breakfast", TotalCalories: 450}
	assert.Equal(t, meal, model.MealLogPatch{}.Apply(meal))

	sleep := model.SleepLog{ID: "s1", Date: "2026-02-20", DurationHours: 7.5, Quality: model.SleepGood}
	assert.Equal(t, sleep, model.SleepLogPatch{}.Apply(sleep))

	progress := model.Progress{Date: "2026-02-20", WeightKg: 80, Photos: []string{"a.jpg"}}
	assert.Equal(t, progress, model.ProgressPatch{}.Apply(progress))

	reminder := model.Reminder{ID: "r1", Type: model.ReminderWater, Time: "09:00", IsActive: true, DaysOfWeek: []int{1, 3}}
	assert.Equal(t, reminder, model.ReminderPatch{}.Apply(reminder))
}

func TestUserProfilePatchReplacesOnlySetFields(t *testing.T) {
	t.Parallel()

	profile := model.UserProfile{ID: "u1", Name: "Jo", Age: 30, WeightKg: 62, Allergies: []string{"peanuts"}}
	weight := 60.5
	patched := model.UserProfilePatch{WeightKg: &weight, Allergies: []string{}}.Apply(profile)

	assert.Equal(t, 60.5, patched.WeightKg)
	assert.Equal(t, "Jo", patched.Name)
	assert.Equal(t, 30, patched.Age)
	assert.Empty(t, patched.Allergies)
	assert.Equal(t, []string{"peanuts"}, profile.Allergies, "original must not change")
}

func TestReminderPatchCopiesDays(t *testing.T) {
	t.Parallel()

	days := []int{0, 6}
	patched := model.ReminderPatch{DaysOfWeek: days}.Apply(model.Reminder{ID: "r1"})
	days[0] = 3

	assert.Equal(t, []int{0, 6}, patched.DaysOfWeek)
}
