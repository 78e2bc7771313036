package fittrack

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/fittrack-cli/internal/model"
	"github.com/saadjs/fittrack-cli/internal/service"
)

var (
	mealPlanFile    string
	mealPlanStarter bool
	mealPlanForce   bool

	mealLogMeal      string
	mealLogDate      string
	mealLogCompleted bool
	mealLogCalories  int
	mealLogNotes     string
	mealLogFoods     []string
	mealListDate     string

	waterAmount   int
	waterDate     string
	waterTime     string
	waterListDate string
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Manage your meal plan and meal logs",
}

var mealPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage the current meal plan",
}

var mealPlanSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Install a meal plan from a json or yaml file, or the starter plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		if mealPlanStarter {
			if mealPlanFile != "" {
				return fmt.Errorf("--file and --starter cannot be combined")
			}
			return withState(cmd, func(s *session) error {
				plan, installed, err := service.InstallStarterMealPlan(s.stores, mealPlanForce)
				if err != nil {
					return err
				}
				if !installed {
					fmt.Fprintf(cmd.OutOrStdout(), "Keeping meal plan %q (use --force to replace it)\n", plan.Name)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Installed meal plan %q (%d meals, %d kcal)\n", plan.Name, len(plan.Meals), plan.TotalCalories)
				return nil
			})
		}
		if mealPlanFile == "" {
			return fmt.Errorf("one of --file or --starter is required")
		}
		var plan model.MealPlan
		if err := decodeFile(mealPlanFile, &plan); err != nil {
			return err
		}
		return withState(cmd, func(s *session) error {
			installed, err := service.SetMealPlan(s.stores, plan)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Installed meal plan %q (%d meals, %d kcal)\n", installed.Name, len(installed.Meals), installed.TotalCalories)
			return nil
		})
	},
}

var mealPlanShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current meal plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, func(s *session) error {
			plan, err := service.CurrentMealPlan(s.stores)
			if err != nil {
				return err
			}
			printMealPlan(cmd.OutOrStdout(), plan)
			return nil
		})
	},
}

var mealLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Record eaten meals",
}

var mealLogAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a meal",
	RunE: func(cmd *cobra.Command, args []string) error {
		foods, err := parseFoodPortions(mealLogFoods)
		if err != nil {
			return err
		}
		return withState(cmd, func(s *session) error {
			entry, err := service.AddMealLog(s.stores, service.MealLogInput{
				Date:          mealLogDate,
				MealID:        mealLogMeal,
				Completed:     mealLogCompleted,
				ActualFoods:   foods,
				TotalCalories: mealLogCalories,
				Notes:         mealLogNotes,
			}, s.now)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged meal %s on %s (%d kcal)\n", entry.ID, entry.Date, entry.TotalCalories)
			return nil
		})
	},
}

var mealLogUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a meal log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.MealLogUpdateInput{
			Date:          stringFlag(cmd, "date", mealLogDate),
			Completed:     boolFlag(cmd, "completed", mealLogCompleted),
			TotalCalories: intFlag(cmd, "calories", mealLogCalories),
			Notes:         stringFlag(cmd, "notes", mealLogNotes),
		}
		if cmd.Flags().Changed("food") {
			foods, err := parseFoodPortions(mealLogFoods)
			if err != nil {
				return err
			}
			in.ActualFoods = foods
		}
		if in.Date == nil && in.Completed == nil && in.TotalCalories == nil && in.Notes == nil && in.ActualFoods == nil {
			return fmt.Errorf("set at least one flag")
		}
		return withState(cmd, func(s *session) error {
			if err := service.UpdateMealLog(s.stores, args[0], in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated meal log %s\n", args[0])
			return nil
		})
	},
}

var mealLogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List meal logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, func(s *session) error {
			logs, err := service.ListMealLogs(s.stores, mealListDate)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tMEAL\tDONE\tKCAL\tFOODS\tNOTES")
			for _, l := range logs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%t\t%d\t%d\t%s\n",
					l.ID, l.Date, l.MealID, l.Completed, l.TotalCalories, len(l.ActualFoods), l.Notes)
			}
			return nil
		})
	},
}

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track water intake",
}

var waterAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log water intake in ml",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, func(s *session) error {
			entry, err := service.AddWater(s.stores, service.WaterInput{
				Date:     waterDate,
				Time:     waterTime,
				AmountMl: waterAmount,
			}, s.now)
			if err != nil {
				return err
			}
			total, err := service.WaterTotal(s.stores, entry.Date, s.now)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %d ml at %s on %s (total %d ml)\n", entry.AmountMl, entry.Time, entry.Date, total.TotalMl)
			return nil
		})
	},
}

var waterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List water logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, func(s *session) error {
			logs, err := service.ListWater(s.stores, waterListDate)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tTIME\tML")
			for _, l := range logs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\n", l.ID, l.Date, l.Time, l.AmountMl)
			}
			return nil
		})
	},
}

var waterTotalCmd = &cobra.Command{
	Use:   "total",
	Short: "Show total water for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, func(s *session) error {
			sum, err := service.WaterTotal(s.stores, waterListDate, s.now)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", sum.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %d ml (%d logs)\n", sum.TotalMl, sum.Logs)
			if sum.TargetMl > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Target: %d ml (remaining %d ml)\n", sum.TargetMl, sum.Remaining)
			}
			return nil
		})
	},
}

// parseFoodPortions reads "food_id:portion" values; the portion is optional.
func parseFoodPortions(values []string) ([]model.FoodPortion, error) {
	out := make([]model.FoodPortion, 0, len(values))
	for _, raw := range values {
		id, portion, _ := strings.Cut(strings.TrimSpace(raw), ":")
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("invalid food %q (expected food_id[:portion])", raw)
		}
		out = append(out, model.FoodPortion{FoodID: id, Portion: strings.TrimSpace(portion)})
	}
	return out, nil
}

func printMealPlan(w io.Writer, plan model.MealPlan) {
	fmt.Fprintf(w, "Plan: %s (%s)\n", plan.Name, plan.ID)
	fmt.Fprintf(w, "Total: %d kcal (P %s g / C %s g / F %s g)\n",
		plan.TotalCalories, formatFloat(plan.Macros.ProteinG), formatFloat(plan.Macros.CarbsG), formatFloat(plan.Macros.FatsG))
	fmt.Fprintln(w, "TIME\tID\tMEAL\tTYPE\tKCAL\tFOODS")
	for _, m := range plan.Meals {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n", m.Time, m.ID, m.Name, m.Type, m.TotalCalories, len(m.Foods))
	}
}

func init() {
	rootCmd.AddCommand(mealCmd, waterCmd)
	mealCmd.AddCommand(mealPlanCmd, mealLogCmd)
	mealPlanCmd.AddCommand(mealPlanSetCmd, mealPlanShowCmd)
	mealLogCmd.AddCommand(mealLogAddCmd, mealLogUpdateCmd, mealLogListCmd)
	waterCmd.AddCommand(waterAddCmd, waterListCmd, waterTotalCmd)

	mealPlanSetCmd.Flags().StringVar(&mealPlanFile, "file", "", "Plan file (.json, .yaml)")
	mealPlanSetCmd.Flags().BoolVar(&mealPlanStarter, "starter", false, "Install the built-in three-meal starter plan")
	mealPlanSetCmd.Flags().BoolVar(&mealPlanForce, "force", false, "With --starter, replace an existing plan")

	mealLogAddCmd.Flags().StringVar(&mealLogMeal, "meal", "", "Meal id from the current plan")
	mealLogAddCmd.Flags().StringVar(&mealLogDate, "date", "", "Date YYYY-MM-DD (default today)")
	mealLogAddCmd.Flags().BoolVar(&mealLogCompleted, "completed", false, "Mark the meal eaten")
	mealLogAddCmd.Flags().IntVar(&mealLogCalories, "calories", 0, "Calories eaten (default: planned calories when completed)")
	mealLogAddCmd.Flags().StringVar(&mealLogNotes, "notes", "", "Notes")
	mealLogAddCmd.Flags().StringArrayVar(&mealLogFoods, "food", nil, "Food eaten as food_id[:portion] (repeatable)")
	_ = mealLogAddCmd.MarkFlagRequired("meal")

	mealLogUpdateCmd.Flags().StringVar(&mealLogDate, "date", "", "Date YYYY-MM-DD")
	mealLogUpdateCmd.Flags().BoolVar(&mealLogCompleted, "completed", false, "Completed")
	mealLogUpdateCmd.Flags().IntVar(&mealLogCalories, "calories", 0, "Calories eaten")
	mealLogUpdateCmd.Flags().StringVar(&mealLogNotes, "notes", "", "Notes")
	mealLogUpdateCmd.Flags().StringArrayVar(&mealLogFoods, "food", nil, "Replace foods eaten (repeatable)")

	mealLogListCmd.Flags().StringVar(&mealListDate, "date", "", "Only logs on YYYY-MM-DD")

	waterAddCmd.Flags().IntVar(&waterAmount, "ml", 0, "Amount in ml")
	waterAddCmd.Flags().StringVar(&waterDate, "date", "", "Date YYYY-MM-DD (default today)")
	waterAddCmd.Flags().StringVar(&waterTime, "time", "", "Time HH:MM (default now)")
	_ = waterAddCmd.MarkFlagRequired("ml")
	waterListCmd.Flags().StringVar(&waterListDate, "date", "", "Only logs on YYYY-MM-DD")
	waterTotalCmd.Flags().StringVar(&waterListDate, "date", "", "Date YYYY-MM-DD (default today)")
}
