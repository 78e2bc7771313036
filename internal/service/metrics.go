package service

import (
	"github.com/saadjs/fittrack-cli/internal/formula"
	"github.com/saadjs/fittrack-cli/internal/model"
	"github.com/saadjs/fittrack-cli/internal/store"
)

type MetricsInput struct {
	HeightCm      float64 `validate:"gt=0"`
	WeightKg      float64 `validate:"gt=0"`
	Age           int     `validate:"gte=1,lte=120"`
	Gender        string  `validate:"oneof=male female other"`
	ActivityLevel string
	MacroGoal     string
}

// Metrics is the set of derived body numbers shown on the dashboard.
// TargetCalories is the TDEE; macros are split from it.
type Metrics struct {
	BMI            float64               `json:"bmi" yaml:"bmi"`
	BMICategory    string                `json:"bmi_category" yaml:"bmi_category"`
	BMR            float64               `json:"bmr" yaml:"bmr"`
	TDEE           float64               `json:"tdee" yaml:"tdee"`
	ActivityLevel  formula.ActivityLevel `json:"activity_level" yaml:"activity_level"`
	MacroGoal      formula.MacroGoal     `json:"macro_goal" yaml:"macro_goal"`
	TargetCalories int                   `json:"target_calories" yaml:"target_calories"`
	Macros         formula.MacroGrams    `json:"macros" yaml:"macros"`
	WaterMl        int                   `json:"water_ml" yaml:"water_ml"`
	SleepHours     float64               `json:"sleep_hours" yaml:"sleep_hours"`
}

func ComputeMetrics(in MetricsInput) (Metrics, error) {
	if err := validateInput(in); err != nil {
		return Metrics{}, err
	}
	level, err := formula.ParseActivityLevel(in.ActivityLevel)
	if err != nil {
		return Metrics{}, err
	}
	goal, err := formula.ParseMacroGoal(in.MacroGoal)
	if err != nil {
		return Metrics{}, err
	}

	bmi := formula.BMI(in.HeightCm, in.WeightKg)
	bmr := formula.BMR(in.WeightKg, in.HeightCm, in.Age, model.Gender(in.Gender))
	tdee := formula.TDEE(bmr, level)
	return Metrics{
		BMI:            formula.Round1(bmi),
		BMICategory:    formula.BMICategory(bmi),
		BMR:            formula.Round1(bmr),
		TDEE:           formula.Round1(tdee),
		ActivityLevel:  level,
		MacroGoal:      goal,
		TargetCalories: int(tdee + 0.5),
		Macros:         formula.MacroSplit(tdee, goal),
		WaterMl:        formula.WaterRecommendation(in.WeightKg),
		SleepHours:     formula.SleepRecommendation(in.Age),
	}, nil
}

// ProfileMetrics computes metrics from the stored profile.
func ProfileMetrics(st *store.Stores, activityLevel, macroGoal string) (Metrics, error) {
	p, err := Profile(st)
	if err != nil {
		return Metrics{}, err
	}
	return ComputeMetrics(MetricsInput{
		HeightCm:      p.HeightCm,
		WeightKg:      p.WeightKg,
		Age:           p.Age,
		Gender:        string(p.Gender),
		ActivityLevel: activityLevel,
		MacroGoal:     macroGoal,
	})
}
