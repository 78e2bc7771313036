package fittrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/fittrack-cli/internal/service"
)

var (
	sleepDate     string
	sleepHours    float64
	sleepQuality  string
	sleepNotes    string
	sleepShowDate string
	sleepWeekEnd  string

	sleepUpdateHours   float64
	sleepUpdateQuality string
	sleepUpdateNotes   string
)

var sleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Track sleep duration and quality",
}

var sleepAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a night of sleep",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, func(s *session) error {
			entry, err := service.AddSleep(s.stores, service.SleepInput{
				Date:          sleepDate,
				DurationHours: sleepHours,
				Quality:       sleepQuality,
				Notes:         sleepNotes,
			}, s.now)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %sh of %s sleep on %s (%s)\n", formatFloat(entry.DurationHours), entry.Quality, entry.Date, entry.ID)
			return nil
		})
	},
}

var sleepUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a sleep log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.SleepUpdateInput{
			DurationHours: floatFlag(cmd, "hours", sleepUpdateHours),
			Quality:       stringFlag(cmd, "quality", sleepUpdateQuality),
			Notes:         stringFlag(cmd, "notes", sleepUpdateNotes),
		}
		if in == (service.SleepUpdateInput{}) {
			return fmt.Errorf("set at least one flag")
		}
		return withState(cmd, func(s *session) error {
			if err := service.UpdateSleep(s.stores, args[0], in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated sleep log %s\n", args[0])
			return nil
		})
	},
}

var sleepShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the sleep log for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, func(s *session) error {
			l, err := service.SleepForDate(s.stores, sleepShowDate, s.now)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ID: %s\n", l.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", l.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "Duration: %sh\n", formatFloat(l.DurationHours))
			fmt.Fprintf(cmd.OutOrStdout(), "Quality: %s\n", l.Quality)
			if l.Notes != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Notes: %s\n", l.Notes)
			}
			return nil
		})
	},
}

var sleepWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the last seven nights",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, func(s *session) error {
			end, err := dayOrNow(sleepWeekEnd, s.now)
			if err != nil {
				return err
			}
			week := service.WeeklySleep(s.stores, end)
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tDAY\tHOURS\tQUALITY")
			for _, d := range week.Days {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", d.Date, d.Weekday, formatFloat(d.DurationHours), d.Quality)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Average: %sh over %d nights\n", formatFloat(week.AverageHours), week.LoggedNights)
			if week.RecommendedHours > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Recommended: %sh\n", formatFloat(week.RecommendedHours))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(sleepCmd)
	sleepCmd.AddCommand(sleepAddCmd, sleepUpdateCmd, sleepShowCmd, sleepWeekCmd)

	sleepAddCmd.Flags().StringVar(&sleepDate, "date", "", "Date YYYY-MM-DD (default today)")
	sleepAddCmd.Flags().Float64Var(&sleepHours, "hours", 0, "Hours slept")
	sleepAddCmd.Flags().StringVar(&sleepQuality, "quality", "good", "Quality (poor|fair|good|excellent)")
	sleepAddCmd.Flags().StringVar(&sleepNotes, "notes", "", "Notes")
	_ = sleepAddCmd.MarkFlagRequired("hours")

	sleepUpdateCmd.Flags().Float64Var(&sleepUpdateHours, "hours", 0, "Hours slept")
	sleepUpdateCmd.Flags().StringVar(&sleepUpdateQuality, "quality", "", "Quality (poor|fair|good|excellent)")
	sleepUpdateCmd.Flags().StringVar(&sleepUpdateNotes, "notes", "", "Notes")

	sleepShowCmd.Flags().StringVar(&sleepShowDate, "date", "", "Date YYYY-MM-DD (default today)")
	sleepWeekCmd.Flags().StringVar(&sleepWeekEnd, "date", "", "Last day of the week YYYY-MM-DD (default today)")
}
