// Package formula holds the stateless calculators behind the dashboard and
// onboarding screens. Inputs are not range-checked; out-of-domain values
// produce meaningless but finite results.
package formula

import (
	"fmt"
	"math"
	"strings"

	"github.com/saadjs/fittrack-cli/internal/model"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

type MacroGoal string

const (
	GoalLoseWeight MacroGoal = "lose_weight"
	GoalMaintain   MacroGoal = "maintain"
	GoalGainMuscle MacroGoal = "gain_muscle"
)

type macroRatio struct {
	protein, carbs, fats float64
}

var macroRatios = map[MacroGoal]macroRatio{
	GoalLoseWeight: {protein: 0.4, carbs: 0.3, fats: 0.3},
	GoalMaintain:   {protein: 0.3, carbs: 0.4, fats: 0.3},
	GoalGainMuscle: {protein: 0.3, carbs: 0.5, fats: 0.2},
}

const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// MacroGrams is a daily macronutrient allocation in whole grams.
type MacroGrams struct {
	ProteinG int `json:"protein_g" yaml:"protein_g"`
	CarbsG   int `json:"carbs_g" yaml:"carbs_g"`
	FatsG    int `json:"fats_g" yaml:"fats_g"`
}

func BMI(heightCm, weightKg float64) float64 {
	m := heightCm / 100
	return weightKg / (m * m)
}

// BMR uses the Mifflin-St Jeor equation. Any gender other than male takes
// the female constant.
func BMR(weightKg, heightCm float64, age int, gender model.Gender) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == model.GenderMale {
		return base + 5
	}
	return base - 161
}

// TDEE scales bmr by the activity multiplier. Unknown levels count as
// sedentary.
func TDEE(bmr float64, level ActivityLevel) float64 {
	mult, ok := activityMultipliers[level]
	if !ok {
		mult = activityMultipliers[ActivitySedentary]
	}
	return bmr * mult
}

// MacroSplit divides calories by goal. Unknown goals use the maintain split.
func MacroSplit(calories float64, goal MacroGoal) MacroGrams {
	r, ok := macroRatios[goal]
	if !ok {
		r = macroRatios[GoalMaintain]
	}
	return MacroGrams{
		ProteinG: int(math.Round(calories * r.protein / kcalPerGramProtein)),
		CarbsG:   int(math.Round(calories * r.carbs / kcalPerGramCarbs)),
		FatsG:    int(math.Round(calories * r.fats / kcalPerGramFat)),
	}
}

// WaterRecommendation returns daily intake in ml (30 ml per kg).
func WaterRecommendation(weightKg float64) int {
	return int(math.Round(weightKg * 30))
}

// SleepRecommendation returns nightly hours by age bracket.
func SleepRecommendation(age int) float64 {
	switch {
	case age <= 12:
		return 9
	case age <= 18:
		return 8.5
	case age <= 64:
		return 8
	default:
		return 7.5
	}
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

func ParseActivityLevel(value string) (ActivityLevel, error) {
	level := ActivityLevel(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := activityMultipliers[level]; !ok {
		return "", fmt.Errorf("invalid activity level %q (use sedentary, light, moderate, active or very_active)", value)
	}
	return level, nil
}

func ParseMacroGoal(value string) (MacroGoal, error) {
	goal := MacroGoal(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := macroRatios[goal]; !ok {
		return "", fmt.Errorf("invalid macro goal %q (use lose_weight, maintain or gain_muscle)", value)
	}
	return goal, nil
}

// Round1 rounds to one decimal place, the precision BMI is shown with.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
