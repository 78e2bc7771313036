package model

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type BodyType string

const (
	BodyTypeEctomorph BodyType = "ectomorph"
	BodyTypeMesomorph BodyType = "mesomorph"
	BodyTypeEndomorph BodyType = "endomorph"
)

type GoalPhysique string

const (
	GoalClassicPhysique GoalPhysique = "classic_physique"
	GoalMensPhysique    GoalPhysique = "mens_physique"
	GoalWomensPhysique  GoalPhysique = "womens_physique"
	GoalPowerlifter     GoalPhysique = "powerlifter"
	GoalBodybuilder     GoalPhysique = "bodybuilder"
	GoalGeneralFitness  GoalPhysique = "general_fitness"
	GoalHybridTraining  GoalPhysique = "hybrid_training"
	GoalCrossfit        GoalPhysique = "crossfit"
)

type FitnessLevel string

const (
	FitnessBeginner     FitnessLevel = "beginner"
	FitnessIntermediate FitnessLevel = "intermediate"
	FitnessAdvanced     FitnessLevel = "advanced"
)

type UserProfile struct {
	ID                   string       `json:"id" yaml:"id"`
	Name                 string       `json:"name" yaml:"name"`
	Age                  int          `json:"age" yaml:"age"`
	Gender               Gender       `json:"gender" yaml:"gender"`
	HeightCm             float64      `json:"height_cm" yaml:"height_cm"`
	WeightKg             float64      `json:"weight_kg" yaml:"weight_kg"`
	BodyType             BodyType     `json:"body_type" yaml:"body_type"`
	GoalPhysique         GoalPhysique `json:"goal_physique" yaml:"goal_physique"`
	CurrentCaloriesCount int          `json:"current_calories_count" yaml:"current_calories_count"`
	Allergies            []string     `json:"allergies" yaml:"allergies,omitempty"`
	HealthIssues         []string     `json:"health_issues" yaml:"health_issues,omitempty"`
	FitnessLevel         FitnessLevel `json:"fitness_level" yaml:"fitness_level"`
}

type Macros struct {
	ProteinG float64 `json:"protein_g" yaml:"protein_g"`
	CarbsG   float64 `json:"carbs_g" yaml:"carbs_g"`
	FatsG    float64 `json:"fats_g" yaml:"fats_g"`
}

type WorkoutType string

const (
	WorkoutStrength    WorkoutType = "strength"
	WorkoutCardio      WorkoutType = "cardio"
	WorkoutFlexibility WorkoutType = "flexibility"
	WorkoutBalance     WorkoutType = "balance"
)

// Exercise is a catalog entry shared between workouts.
type Exercise struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	MuscleGroups []string `json:"muscle_groups" yaml:"muscle_groups,omitempty"`
	Sets         int      `json:"sets" yaml:"sets"`
	Reps         int      `json:"reps" yaml:"reps"`
	RestTimeSec  int      `json:"rest_time_sec" yaml:"rest_time_sec"`
	VideoURL     string   `json:"video_url" yaml:"video_url"`
	ImageURL     string   `json:"image_url" yaml:"image_url"`
	Instructions []string `json:"instructions" yaml:"instructions,omitempty"`
	Equipment    []string `json:"equipment" yaml:"equipment,omitempty"`
}

type Workout struct {
	ID           string      `json:"id" yaml:"id"`
	Name         string      `json:"name" yaml:"name"`
	Description  string      `json:"description" yaml:"description"`
	Exercises    []Exercise  `json:"exercises" yaml:"exercises,omitempty"`
	DurationMin  int         `json:"duration_min" yaml:"duration_min"`
	CaloriesBurn int         `json:"calories_burn" yaml:"calories_burn"`
	Type         WorkoutType `json:"type" yaml:"type"`
	DayOfWeek    int         `json:"day_of_week" yaml:"day_of_week"` // 0 = Sunday
}

// WorkoutPlan is a reusable template; completions are recorded as WorkoutLog.
type WorkoutPlan struct {
	ID              string       `json:"id" yaml:"id"`
	Name            string       `json:"name" yaml:"name"`
	Description     string       `json:"description" yaml:"description"`
	Workouts        []Workout    `json:"workouts" yaml:"workouts,omitempty"`
	DurationWeeks   int          `json:"duration_weeks" yaml:"duration_weeks"`
	Frequency       int          `json:"frequency" yaml:"frequency"`
	ForGoalPhysique GoalPhysique `json:"for_goal_physique" yaml:"for_goal_physique"`
	ForBodyType     BodyType     `json:"for_body_type" yaml:"for_body_type"`
	ForFitnessLevel FitnessLevel `json:"for_fitness_level" yaml:"for_fitness_level"`
	IsGymRequired   bool         `json:"is_gym_required" yaml:"is_gym_required"`
}

type SetLog struct {
	Weight    float64 `json:"weight" yaml:"weight"`
	Reps      int     `json:"reps" yaml:"reps"`
	Completed bool    `json:"completed" yaml:"completed"`
}

type ExerciseLog struct {
	ExerciseID string   `json:"exercise_id" yaml:"exercise_id"`
	Sets       []SetLog `json:"sets" yaml:"sets,omitempty"`
}

type HeartRate struct {
	Average int `json:"average" yaml:"average"`
	Peak    int `json:"peak" yaml:"peak"`
}

type WorkoutLog struct {
	ID             string        `json:"id" yaml:"id"`
	Date           string        `json:"date" yaml:"date"`
	WorkoutID      string        `json:"workout_id" yaml:"workout_id"`
	Completed      bool          `json:"completed" yaml:"completed"`
	ExerciseLogs   []ExerciseLog `json:"exercise_logs" yaml:"exercise_logs,omitempty"`
	DurationMin    int           `json:"duration_min" yaml:"duration_min"`
	CaloriesBurned int           `json:"calories_burned" yaml:"calories_burned"`
	HeartRate      HeartRate     `json:"heart_rate" yaml:"heart_rate"`
	Notes          string        `json:"notes" yaml:"notes"`
}

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

type Food struct {
	ID             string             `json:"id" yaml:"id"`
	Name           string             `json:"name" yaml:"name"`
	Portion        string             `json:"portion" yaml:"portion"`
	Calories       float64            `json:"calories" yaml:"calories"`
	Macros         Macros             `json:"macros" yaml:"macros"`
	Micronutrients map[string]float64 `json:"micronutrients,omitempty" yaml:"micronutrients,omitempty"`
}

type Meal struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Description   string   `json:"description" yaml:"description"`
	Time          string   `json:"time" yaml:"time"`
	Foods         []Food   `json:"foods" yaml:"foods,omitempty"`
	TotalCalories int      `json:"total_calories" yaml:"total_calories"`
	Macros        Macros   `json:"macros" yaml:"macros"`
	Type          MealType `json:"type" yaml:"type"`
}

type MealPlan struct {
	ID              string       `json:"id" yaml:"id"`
	Name            string       `json:"name" yaml:"name"`
	Description     string       `json:"description" yaml:"description"`
	Meals           []Meal       `json:"meals" yaml:"meals,omitempty"`
	TotalCalories   int          `json:"total_calories" yaml:"total_calories"`
	Macros          Macros       `json:"macros" yaml:"macros"`
	ForGoalPhysique GoalPhysique `json:"for_goal_physique" yaml:"for_goal_physique"`
}

type FoodPortion struct {
	FoodID  string `json:"food_id" yaml:"food_id"`
	Portion string `json:"portion" yaml:"portion"`
}

type MealLog struct {
	ID            string        `json:"id" yaml:"id"`
	Date          string        `json:"date" yaml:"date"`
	MealID        string        `json:"meal_id" yaml:"meal_id"`
	Completed     bool          `json:"completed" yaml:"completed"`
	ActualFoods   []FoodPortion `json:"actual_foods" yaml:"actual_foods,omitempty"`
	TotalCalories int           `json:"total_calories" yaml:"total_calories"`
	Notes         string        `json:"notes" yaml:"notes"`
}

type WaterLog struct {
	ID       string `json:"id" yaml:"id"`
	Date     string `json:"date" yaml:"date"`
	AmountMl int    `json:"amount_ml" yaml:"amount_ml"`
	Time     string `json:"time" yaml:"time"`
}

type SleepQuality string

const (
	SleepPoor      SleepQuality = "poor"
	SleepFair      SleepQuality = "fair"
	SleepGood      SleepQuality = "good"
	SleepExcellent SleepQuality = "excellent"
)

type SleepLog struct {
	ID            string       `json:"id" yaml:"id"`
	Date          string       `json:"date" yaml:"date"`
	DurationHours float64      `json:"duration_hours" yaml:"duration_hours"`
	Quality       SleepQuality `json:"quality" yaml:"quality"`
	Notes         string       `json:"notes" yaml:"notes"`
}

type Measurements struct {
	Chest  float64 `json:"chest" yaml:"chest"`
	Waist  float64 `json:"waist" yaml:"waist"`
	Hips   float64 `json:"hips" yaml:"hips"`
	Arms   float64 `json:"arms" yaml:"arms"`
	Thighs float64 `json:"thighs" yaml:"thighs"`
}

// Progress entries are keyed by date.
type Progress struct {
	Date         string       `json:"date" yaml:"date"`
	WeightKg     float64      `json:"weight_kg" yaml:"weight_kg"`
	Measurements Measurements `json:"measurements" yaml:"measurements"`
	Photos       []string     `json:"photos" yaml:"photos,omitempty"`
}

type ReminderType string

const (
	ReminderWorkout ReminderType = "workout"
	ReminderMeal    ReminderType = "meal"
	ReminderWater   ReminderType = "water"
	ReminderSleep   ReminderType = "sleep"
)

type Reminder struct {
	ID         string       `json:"id" yaml:"id"`
	Type       ReminderType `json:"type" yaml:"type"`
	Time       string       `json:"time" yaml:"time"`
	Message    string       `json:"message" yaml:"message"`
	IsActive   bool         `json:"is_active" yaml:"is_active"`
	DaysOfWeek []int        `json:"days_of_week" yaml:"days_of_week,omitempty"`
}

// Snapshot is the complete state of every store at one point in time.
type Snapshot struct {
	Profile         *UserProfile `json:"profile,omitempty" yaml:"profile,omitempty"`
	IsOnboarded     bool         `json:"is_onboarded" yaml:"is_onboarded"`
	WorkoutPlan     *WorkoutPlan `json:"workout_plan,omitempty" yaml:"workout_plan,omitempty"`
	WorkoutLogs     []WorkoutLog `json:"workout_logs" yaml:"workout_logs,omitempty"`
	MealPlan        *MealPlan    `json:"meal_plan,omitempty" yaml:"meal_plan,omitempty"`
	MealLogs        []MealLog    `json:"meal_logs" yaml:"meal_logs,omitempty"`
	WaterLogs       []WaterLog   `json:"water_logs" yaml:"water_logs,omitempty"`
	SleepLogs       []SleepLog   `json:"sleep_logs" yaml:"sleep_logs,omitempty"`
	ProgressEntries []Progress   `json:"progress_entries" yaml:"progress_entries,omitempty"`
	Reminders       []Reminder   `json:"reminders" yaml:"reminders,omitempty"`
}
