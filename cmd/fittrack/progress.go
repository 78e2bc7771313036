package fittrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/fittrack-cli/internal/service"
)

var (
	progressDate     string
	progressWeight   float64
	progressChest    float64
	progressWaist    float64
	progressHips     float64
	progressArms     float64
	progressThighs   float64
	progressPhotos   []string
	progressSync     bool
	progressShowDate string
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Track weight and body measurements",
}

var progressAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log weight and measurements for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, func(s *session) error {
			entry, err := service.AddProgress(s.stores, service.ProgressInput{
				Date:        progressDate,
				WeightKg:    progressWeight,
				Chest:       progressChest,
				Waist:       progressWaist,
				Hips:        progressHips,
				Arms:        progressArms,
				Thighs:      progressThighs,
				Photos:      progressPhotos,
				SyncProfile: progressSync,
			}, s.now)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged progress for %s: %s kg\n", entry.Date, formatFloat(entry.WeightKg))
			return nil
		})
	},
}

var progressUpdateCmd = &cobra.Command{
	Use:   "update <date>",
	Short: "Update the progress entry for a day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.ProgressUpdateInput{
			WeightKg: floatFlag(cmd, "weight", progressWeight),
			Chest:    floatFlag(cmd, "chest", progressChest),
			Waist:    floatFlag(cmd, "waist", progressWaist),
			Hips:     floatFlag(cmd, "hips", progressHips),
			Arms:     floatFlag(cmd, "arms", progressArms),
			Thighs:   floatFlag(cmd, "thighs", progressThighs),
		}
		if cmd.Flags().Changed("photo") {
			in.Photos = progressPhotos
		}
		if in.WeightKg == nil && in.Chest == nil && in.Waist == nil && in.Hips == nil &&
			in.Arms == nil && in.Thighs == nil && in.Photos == nil {
			return fmt.Errorf("set at least one flag")
		}
		return withState(cmd, func(s *session) error {
			if err := service.UpdateProgress(s.stores, args[0], in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated progress for %s\n", args[0])
			return nil
		})
	},
}

var progressShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the progress entry for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, func(s *session) error {
			p, err := service.ProgressForDate(s.stores, progressShowDate, s.now)
			if err != nil {
				return err
			}
			m := p.Measurements
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", p.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "Weight: %s kg\n", formatFloat(p.WeightKg))
			fmt.Fprintln(cmd.OutOrStdout(), "CHEST\tWAIST\tHIPS\tARMS\tTHIGHS")
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n",
				formatFloat(m.Chest), formatFloat(m.Waist), formatFloat(m.Hips), formatFloat(m.Arms), formatFloat(m.Thighs))
			for _, photo := range p.Photos {
				fmt.Fprintf(cmd.OutOrStdout(), "Photo: %s\n", photo)
			}
			return nil
		})
	},
}

var progressChangeCmd = &cobra.Command{
	Use:   "change [metric]",
	Short: "Compare the two latest entries (weight, chest, waist, hips, arms, thighs)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		metric := "weight"
		if len(args) == 1 {
			metric = args[0]
		}
		return withState(cmd, func(s *session) error {
			c, err := service.ProgressDelta(s.stores, metric)
			if err != nil {
				return err
			}
			direction := "down"
			if c.Change.Increased {
				direction = "up"
			}
			if c.Change.Value == 0 {
				direction = "unchanged"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s -> %s (%s %s, %s to %s)\n",
				c.Metric, formatFloat(c.Previous), formatFloat(c.Latest), direction, formatFloat(c.Change.Value), c.From, c.To)
			return nil
		})
	},
}

func addMeasurementFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&progressWeight, "weight", 0, "Weight in kg")
	cmd.Flags().Float64Var(&progressChest, "chest", 0, "Chest")
	cmd.Flags().Float64Var(&progressWaist, "waist", 0, "Waist")
	cmd.Flags().Float64Var(&progressHips, "hips", 0, "Hips")
	cmd.Flags().Float64Var(&progressArms, "arms", 0, "Arms")
	cmd.Flags().Float64Var(&progressThighs, "thighs", 0, "Thighs")
	cmd.Flags().StringArrayVar(&progressPhotos, "photo", nil, "Photo URL (repeatable)")
}

func init() {
	rootCmd.AddCommand(progressCmd)
	progressCmd.AddCommand(progressAddCmd, progressUpdateCmd, progressShowCmd, progressChangeCmd)

	addMeasurementFlags(progressAddCmd)
	progressAddCmd.Flags().StringVar(&progressDate, "date", "", "Date YYYY-MM-DD (default today)")
	progressAddCmd.Flags().BoolVar(&progressSync, "sync-profile", false, "Also update the profile weight")
	_ = progressAddCmd.MarkFlagRequired("weight")

	addMeasurementFlags(progressUpdateCmd)

	progressShowCmd.Flags().StringVar(&progressShowDate, "date", "", "Date YYYY-MM-DD (default today)")
}
