package fittrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/fittrack-cli/internal/db"
	"github.com/saadjs/fittrack-cli/internal/service"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, func(s *session) error {
			schemaVersion, err := db.SchemaVersion(s.db)
			if err != nil {
				return err
			}
			report := service.RunDoctor(s.stores)
			fmt.Fprintf(cmd.OutOrStdout(), "Schema version: %d\n", schemaVersion)
			fmt.Fprintf(cmd.OutOrStdout(), "Onboarded: %t\n", report.Onboarded)
			fmt.Fprintf(cmd.OutOrStdout(), "Duplicate plan days: %d\n", report.DuplicatePlanDays)
			fmt.Fprintf(cmd.OutOrStdout(), "Orphan workout logs: %d\n", report.OrphanWorkoutLogs)
			fmt.Fprintf(cmd.OutOrStdout(), "Orphan meal logs: %d\n", report.OrphanMealLogs)
			fmt.Fprintf(cmd.OutOrStdout(), "Duplicate sleep dates: %d\n", report.DuplicateSleepDates)
			fmt.Fprintf(cmd.OutOrStdout(), "Duplicate progress dates: %d\n", report.DuplicateProgressDates)
			fmt.Fprintf(cmd.OutOrStdout(), "Invalid dates: %d\n", report.InvalidDates)
			fmt.Fprintf(cmd.OutOrStdout(), "Invalid times: %d\n", report.InvalidTimes)
			for _, issue := range report.Issues {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", issue)
			}
			if report.HasIssues() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
