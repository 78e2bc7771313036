package fittrack

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/fittrack-cli/internal/service"
)

var (
	metricsActivity string
	metricsGoal     string
	metricsHeight   float64
	metricsWeight   float64
	metricsAge      int
	metricsGender   string
	metricsFormat   string
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show BMI, BMR, TDEE, macro split and daily targets",
	Long:  "Computes metrics from your profile. Pass --height, --weight, --age and --gender together to compute for someone else.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, func(s *session) error {
			activity := firstNonEmpty(metricsActivity, s.cfg.DefaultActivityLevel)
			goal := firstNonEmpty(metricsGoal, s.cfg.DefaultMacroGoal)

			var (
				m   service.Metrics
				err error
			)
			if explicitMetricsFlags(cmd) {
				m, err = service.ComputeMetrics(service.MetricsInput{
					HeightCm:      metricsHeight,
					WeightKg:      metricsWeight,
					Age:           metricsAge,
					Gender:        metricsGender,
					ActivityLevel: activity,
					MacroGoal:     goal,
				})
			} else {
				m, err = service.ProfileMetrics(s.stores, activity, goal)
			}
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), metricsFormat, m, func(w io.Writer) { printMetrics(w, m) })
		})
	},
}

func explicitMetricsFlags(cmd *cobra.Command) bool {
	for _, name := range []string{"height", "weight", "age", "gender"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func printMetrics(w io.Writer, m service.Metrics) {
	fmt.Fprintf(w, "BMI: %s (%s)\n", formatFloat(m.BMI), m.BMICategory)
	fmt.Fprintf(w, "BMR: %s kcal\n", formatFloat(m.BMR))
	fmt.Fprintf(w, "TDEE (%s): %s kcal\n", m.ActivityLevel, formatFloat(m.TDEE))
	fmt.Fprintf(w, "Target calories: %d kcal\n", m.TargetCalories)
	fmt.Fprintf(w, "Macros (%s): protein %d g, carbs %d g, fats %d g\n",
		m.MacroGoal, m.Macros.ProteinG, m.Macros.CarbsG, m.Macros.FatsG)
	fmt.Fprintf(w, "Water: %d ml/day\n", m.WaterMl)
	fmt.Fprintf(w, "Sleep: %s h/night\n", formatFloat(m.SleepHours))
}

// render writes v as json or yaml, or calls text for the default format.
func render(w io.Writer, format string, v any, text func(io.Writer)) error {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" || format == "text" {
		text(w)
		return nil
	}
	f, err := service.ParseFormat(format)
	if err != nil {
		return err
	}
	return service.Encode(w, f, v)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func init() {
	rootCmd.AddCommand(metricsCmd)
	metricsCmd.Flags().StringVar(&metricsActivity, "activity", "", "Activity level (sedentary|light|moderate|active|very_active)")
	metricsCmd.Flags().StringVar(&metricsGoal, "macro-goal", "", "Macro goal (lose_weight|maintain|gain_muscle)")
	metricsCmd.Flags().Float64Var(&metricsHeight, "height", 0, "Height in cm")
	metricsCmd.Flags().Float64Var(&metricsWeight, "weight", 0, "Weight in kg")
	metricsCmd.Flags().IntVar(&metricsAge, "age", 0, "Age in years")
	metricsCmd.Flags().StringVar(&metricsGender, "gender", "", "Gender (male|female|other)")
	metricsCmd.Flags().StringVar(&metricsFormat, "format", "text", "Output format (text|json|yaml)")
}
