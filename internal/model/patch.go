package model

import "slices"

// Patch types carry optional fields: a nil pointer or nil slice leaves the
// target field unchanged, a non-nil value (including an empty slice)
// replaces it. Apply never modifies its argument.

type UserProfilePatch struct {
	Name                 *string
	Age                  *int
	Gender               *Gender
	HeightCm             *float64
	WeightKg             *float64
	BodyType             *BodyType
	GoalPhysique         *GoalPhysique
	CurrentCaloriesCount *int
	Allergies            []string
	HealthIssues         []string
	FitnessLevel         *FitnessLevel
}

func (p UserProfilePatch) Apply(u UserProfile) UserProfile {
	setIf(&u.Name, p.Name)
	setIf(&u.Age, p.Age)
	setIf(&u.Gender, p.Gender)
	setIf(&u.HeightCm, p.HeightCm)
	setIf(&u.WeightKg, p.WeightKg)
	setIf(&u.BodyType, p.BodyType)
	setIf(&u.GoalPhysique, p.GoalPhysique)
	setIf(&u.CurrentCaloriesCount, p.CurrentCaloriesCount)
	setIf(&u.FitnessLevel, p.FitnessLevel)
	if p.Allergies != nil {
		u.Allergies = slices.Clone(p.Allergies)
	}
	if p.HealthIssues != nil {
		u.HealthIssues = slices.Clone(p.HealthIssues)
	}
	return u
}

type WorkoutLogPatch struct {
	Date           *string
	WorkoutID      *string
	Completed      *bool
	ExerciseLogs   []ExerciseLog
	DurationMin    *int
	CaloriesBurned *int
	HeartRate      *HeartRate
	Notes          *string
}

func (p WorkoutLogPatch) Apply(l WorkoutLog) WorkoutLog {
	setIf(&l.Date, p.Date)
	setIf(&l.WorkoutID, p.WorkoutID)
	setIf(&l.Completed, p.Completed)
	setIf(&l.DurationMin, p.DurationMin)
	setIf(&l.CaloriesBurned, p.CaloriesBurned)
	setIf(&l.HeartRate, p.HeartRate)
	setIf(&l.Notes, p.Notes)
	if p.ExerciseLogs != nil {
		l.ExerciseLogs = slices.Clone(p.ExerciseLogs)
	}
	return l
}

type MealLogPatch struct {
	Date          *string
	MealID        *string
	Completed     *bool
	ActualFoods   []FoodPortion
	TotalCalories *int
	Notes         *string
}

func (p MealLogPatch) Apply(l MealLog) MealLog {
	setIf(&l.Date, p.Date)
	setIf(&l.MealID, p.MealID)
	setIf(&l.Completed, p.Completed)
	setIf(&l.TotalCalories, p.TotalCalories)
	setIf(&l.Notes, p.Notes)
	if p.ActualFoods != nil {
		l.ActualFoods = slices.Clone(p.ActualFoods)
	}
	return l
}

type SleepLogPatch struct {
	Date          *string
	DurationHours *float64
	Quality       *SleepQuality
	Notes         *string
}

func (p SleepLogPatch) Apply(l SleepLog) SleepLog {
	setIf(&l.Date, p.Date)
	setIf(&l.DurationHours, p.DurationHours)
	setIf(&l.Quality, p.Quality)
	setIf(&l.Notes, p.Notes)
	return l
}

type ProgressPatch struct {
	Date         *string
	WeightKg     *float64
	Measurements *Measurements
	Photos       []string
}

func (p ProgressPatch) Apply(e Progress) Progress {
	setIf(&e.Date, p.Date)
	setIf(&e.WeightKg, p.WeightKg)
	setIf(&e.Measurements, p.Measurements)
	if p.Photos != nil {
		e.Photos = slices.Clone(p.Photos)
	}
	return e
}

type ReminderPatch struct {
	Type       *ReminderType
	Time       *string
	Message    *string
	IsActive   *bool
	DaysOfWeek []int
}

func (p ReminderPatch) Apply(r Reminder) Reminder {
	setIf(&r.Type, p.Type)
	setIf(&r.Time, p.Time)
	setIf(&r.Message, p.Message)
	setIf(&r.IsActive, p.IsActive)
	if p.DaysOfWeek != nil {
		r.DaysOfWeek = slices.Clone(p.DaysOfWeek)
	}
	return r
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
