package fittrack

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/saadjs/fittrack-cli/internal/formula"
	"github.com/saadjs/fittrack-cli/internal/model"
	"github.com/saadjs/fittrack-cli/internal/service"
)

var (
	workoutPlanFile    string
	workoutPlanStarter bool
	workoutPlanForce   bool

	workoutLogWorkout   string
	workoutLogDate      string
	workoutLogCompleted bool
	workoutLogDuration  int
	workoutLogCalories  int
	workoutLogAvgHR     int
	workoutLogPeakHR    int
	workoutLogNotes     string
	workoutLogSets      []string
	workoutListDate     string
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Manage your weekly workout plan and workout logs",
}

var workoutPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage the current workout plan",
}

var workoutPlanSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Install a workout plan from a json or yaml file, or the starter plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		if workoutPlanStarter {
			if workoutPlanFile != "" {
				return fmt.Errorf("--file and --starter cannot be combined")
			}
			return withState(cmd, func(s *session) error {
				plan, installed, err := service.InstallStarterWorkoutPlan(s.stores, workoutPlanForce)
				if err != nil {
					return err
				}
				if !installed {
					fmt.Fprintf(cmd.OutOrStdout(), "Keeping workout plan %q (use --force to replace it)\n", plan.Name)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Installed workout plan %q (%d workouts)\n", plan.Name, len(plan.Workouts))
				return nil
			})
		}
		if workoutPlanFile == "" {
			return fmt.Errorf("one of --file or --starter is required")
		}
		var plan model.WorkoutPlan
		if err := decodeFile(workoutPlanFile, &plan); err != nil {
			return err
		}
		return withState(cmd, func(s *session) error {
			installed, err := service.SetWorkoutPlan(s.stores, plan)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Installed workout plan %q (%d workouts)\n", installed.Name, len(installed.Workouts))
			return nil
		})
	},
}

var workoutPlanShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current workout plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, func(s *session) error {
			plan, err := service.CurrentWorkoutPlan(s.stores)
			if err != nil {
				return err
			}
			printWorkoutPlan(cmd.OutOrStdout(), plan)
			return nil
		})
	},
}

var workoutLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Record completed workouts",
}

var workoutLogAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		sets, err := service.ParseSetLogs(workoutLogSets)
		if err != nil {
			return err
		}
		return withState(cmd, func(s *session) error {
			entry, err := service.AddWorkoutLog(s.stores, service.WorkoutLogInput{
				Date:           workoutLogDate,
				WorkoutID:      workoutLogWorkout,
				Completed:      workoutLogCompleted,
				ExerciseLogs:   sets,
				DurationMin:    workoutLogDuration,
				CaloriesBurned: workoutLogCalories,
				AvgHeartRate:   workoutLogAvgHR,
				PeakHeartRate:  workoutLogPeakHR,
				Notes:          workoutLogNotes,
			}, s.now)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged workout %s on %s\n", entry.ID, entry.Date)
			return nil
		})
	},
}

var workoutLogUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a workout log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.WorkoutLogUpdateInput{
			Date:           stringFlag(cmd, "date", workoutLogDate),
			Completed:      boolFlag(cmd, "completed", workoutLogCompleted),
			DurationMin:    intFlag(cmd, "duration", workoutLogDuration),
			CaloriesBurned: intFlag(cmd, "calories", workoutLogCalories),
			Notes:          stringFlag(cmd, "notes", workoutLogNotes),
		}
		if in == (service.WorkoutLogUpdateInput{}) {
			return fmt.Errorf("set at least one flag")
		}
		return withState(cmd, func(s *session) error {
			if err := service.UpdateWorkoutLog(s.stores, args[0], in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated workout log %s\n", args[0])
			return nil
		})
	},
}

var workoutLogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workout logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, func(s *session) error {
			logs, err := service.ListWorkoutLogs(s.stores, workoutListDate)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tWORKOUT\tDONE\tMIN\tKCAL\tSETS\tNOTES")
			for _, l := range logs {
				sets := 0
				for _, e := range l.ExerciseLogs {
					sets += len(e.Sets)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%t\t%d\t%d\t%d\t%s\n",
					l.ID, l.Date, l.WorkoutID, l.Completed, l.DurationMin, l.CaloriesBurned, sets, l.Notes)
			}
			return nil
		})
	},
}

func printWorkoutPlan(w io.Writer, plan model.WorkoutPlan) {
	fmt.Fprintf(w, "Plan: %s (%s)\n", plan.Name, plan.ID)
	if plan.Description != "" {
		fmt.Fprintf(w, "%s\n", plan.Description)
	}
	days := formula.DaysOfWeek()
	fmt.Fprintln(w, "DAY\tID\tWORKOUT\tTYPE\tMIN\tKCAL\tEXERCISES")
	for _, wk := range plan.Workouts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%d\n",
			days[wk.DayOfWeek], wk.ID, wk.Name, wk.Type, wk.DurationMin, wk.CaloriesBurn, len(wk.Exercises))
	}
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutPlanCmd, workoutLogCmd)
	workoutPlanCmd.AddCommand(workoutPlanSetCmd, workoutPlanShowCmd)
	workoutLogCmd.AddCommand(workoutLogAddCmd, workoutLogUpdateCmd, workoutLogListCmd)

	workoutPlanSetCmd.Flags().StringVar(&workoutPlanFile, "file", "", "Plan file (.json, .yaml)")
	workoutPlanSetCmd.Flags().BoolVar(&workoutPlanStarter, "starter", false, "Install the built-in three-day starter plan")
	workoutPlanSetCmd.Flags().BoolVar(&workoutPlanForce, "force", false, "With --starter, replace an existing plan")

	workoutLogAddCmd.Flags().StringVar(&workoutLogWorkout, "workout", "", "Workout id from the current plan")
	workoutLogAddCmd.Flags().StringVar(&workoutLogDate, "date", "", "Date YYYY-MM-DD (default today)")
	workoutLogAddCmd.Flags().BoolVar(&workoutLogCompleted, "completed", false, "Mark the workout completed")
	workoutLogAddCmd.Flags().IntVar(&workoutLogDuration, "duration", 0, "Duration in minutes")
	workoutLogAddCmd.Flags().IntVar(&workoutLogCalories, "calories", 0, "Calories burned")
	workoutLogAddCmd.Flags().IntVar(&workoutLogAvgHR, "avg-hr", 0, "Average heart rate")
	workoutLogAddCmd.Flags().IntVar(&workoutLogPeakHR, "peak-hr", 0, "Peak heart rate")
	workoutLogAddCmd.Flags().StringVar(&workoutLogNotes, "notes", "", "Notes")
	workoutLogAddCmd.Flags().StringArrayVar(&workoutLogSets, "set", nil, "Set as exercise:WEIGHTxREPS (repeatable)")
	_ = workoutLogAddCmd.MarkFlagRequired("workout")

	workoutLogUpdateCmd.Flags().StringVar(&workoutLogDate, "date", "", "Date YYYY-MM-DD")
	workoutLogUpdateCmd.Flags().BoolVar(&workoutLogCompleted, "completed", false, "Completed")
	workoutLogUpdateCmd.Flags().IntVar(&workoutLogDuration, "duration", 0, "Duration in minutes")
	workoutLogUpdateCmd.Flags().IntVar(&workoutLogCalories, "calories", 0, "Calories burned")
	workoutLogUpdateCmd.Flags().StringVar(&workoutLogNotes, "notes", "", "Notes")

	workoutLogListCmd.Flags().StringVar(&workoutListDate, "date", "", "Only logs on YYYY-MM-DD")
}
