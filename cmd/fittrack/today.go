package fittrack

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/saadjs/fittrack-cli/internal/formula"
	"github.com/saadjs/fittrack-cli/internal/service"
	"github.com/saadjs/fittrack-cli/internal/store"
)

var (
	todayDate     string
	todayActivity string
	todayGoal     string
	todayFormat   string
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's workout, meals, water, sleep and reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, func(s *session) error {
			day, err := dayOrNow(todayDate, s.now)
			if err != nil {
				return err
			}
			level, err := formula.ParseActivityLevel(firstNonEmpty(todayActivity, s.cfg.DefaultActivityLevel))
			if err != nil {
				return err
			}
			goal, err := formula.ParseMacroGoal(firstNonEmpty(todayGoal, s.cfg.DefaultMacroGoal))
			if err != nil {
				return err
			}
			status := service.TodaySummary(s.stores, day, level, goal)
			return render(cmd.OutOrStdout(), todayFormat, status, func(w io.Writer) {
				printToday(w, status, s.stores)
			})
		})
	},
}

func printToday(w io.Writer, t service.TodayStatus, st *store.Stores) {
	fmt.Fprintf(w, "%s (%s)\n", t.Date, t.Weekday)
	if !t.HasProfile {
		fmt.Fprintln(w, "No profile yet; run `fittrack onboard` for daily targets")
	}

	if t.Workout != nil {
		state := "pending"
		if t.WorkoutLogged {
			state = "done"
		}
		fmt.Fprintf(w, "Workout: %s (%s, %d min) [%s]\n", t.Workout.Name, t.Workout.Type, t.Workout.DurationMin, state)
	} else {
		fmt.Fprintln(w, "Workout: rest day")
	}
	fmt.Fprintf(w, "Calories burned: %d\n", t.CaloriesBurned)

	fmt.Fprintf(w, "Meals: %d/%d logged, %d kcal eaten\n", t.MealsLogged, len(t.Meals), t.CaloriesEaten)
	for _, m := range t.Meals {
		fmt.Fprintf(w, "  %s\t%s\t%d kcal\n", m.Time, m.Name, m.TotalCalories)
	}
	if t.HasProfile {
		fmt.Fprintf(w, "Macro target: protein %d g, carbs %d g, fats %d g\n", t.Macros.ProteinG, t.Macros.CarbsG, t.Macros.FatsG)
	}

	if t.WaterTargetMl > 0 {
		fmt.Fprintf(w, "Water: %d/%d ml\n", t.WaterMl, t.WaterTargetMl)
	} else {
		fmt.Fprintf(w, "Water: %d ml\n", t.WaterMl)
	}

	if t.Sleep != nil {
		fmt.Fprintf(w, "Sleep: %sh (%s)\n", formatFloat(t.Sleep.DurationHours), t.Sleep.Quality)
	} else {
		fmt.Fprintln(w, "Sleep: not logged")
	}
	if t.SleepTargetHours > 0 {
		fmt.Fprintf(w, "Sleep target: %sh\n", formatFloat(t.SleepTargetHours))
	}

	if len(t.Reminders) > 0 {
		fmt.Fprintln(w, "Reminders:")
		for _, r := range t.Reminders {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", r.Time, r.Type, r.Message)
		}
	}

	fmt.Fprintln(w, "Week:")
	for _, d := range t.Week {
		name := "rest"
		if wk, ok := st.Workout.WorkoutForDay(int(d.Date.Weekday())); ok {
			name = wk.Name
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", d.Formatted, d.Date.Weekday().String()[:3], name)
	}
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Day YYYY-MM-DD (default today)")
	todayCmd.Flags().StringVar(&todayActivity, "activity", "", "Activity level for the macro target")
	todayCmd.Flags().StringVar(&todayGoal, "macro-goal", "", "Macro goal for the macro target")
	todayCmd.Flags().StringVar(&todayFormat, "format", "text", "Output format (text|json|yaml)")
}
