package fittrack

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/saadjs/fittrack-cli/internal/formula"
	"github.com/saadjs/fittrack-cli/internal/model"
	"github.com/saadjs/fittrack-cli/internal/service"
)

var (
	reminderType     string
	reminderTime     string
	reminderMessage  string
	reminderDays     string
	reminderInactive bool
	reminderActive   bool
	reminderAt       string

	reminderUpdateType    string
	reminderUpdateTime    string
	reminderUpdateMessage string
	reminderUpdateDays    string
	reminderUpdateActive  bool
)

var reminderCmd = &cobra.Command{
	Use:   "reminder",
	Short: "Manage workout, meal, water and sleep reminders",
}

var reminderAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a reminder",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, err := parseDaysArg(reminderDays)
		if err != nil {
			return err
		}
		return withState(cmd, func(s *session) error {
			r, err := service.AddReminder(s.stores, service.ReminderInput{
				Type:       reminderType,
				Time:       reminderTime,
				Message:    reminderMessage,
				DaysOfWeek: days,
				Inactive:   reminderInactive,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s reminder %s at %s\n", r.Type, r.ID, r.Time)
			return nil
		})
	},
}

var reminderUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a reminder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.ReminderUpdateInput{
			Type:     stringFlag(cmd, "type", reminderUpdateType),
			Time:     stringFlag(cmd, "time", reminderUpdateTime),
			Message:  stringFlag(cmd, "message", reminderUpdateMessage),
			IsActive: boolFlag(cmd, "active", reminderUpdateActive),
		}
		if cmd.Flags().Changed("days") {
			days, err := parseDaysArg(reminderUpdateDays)
			if err != nil {
				return err
			}
			if len(days) == 0 {
				return fmt.Errorf("--days cannot be empty")
			}
			in.DaysOfWeek = days
		}
		if in.Type == nil && in.Time == nil && in.Message == nil && in.IsActive == nil && in.DaysOfWeek == nil {
			return fmt.Errorf("set at least one flag")
		}
		return withState(cmd, func(s *session) error {
			if err := service.UpdateReminder(s.stores, args[0], in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated reminder %s\n", args[0])
			return nil
		})
	},
}

var reminderDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a reminder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, func(s *session) error {
			if err := service.DeleteReminder(s.stores, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted reminder %s\n", args[0])
			return nil
		})
	},
}

var reminderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, func(s *session) error {
			printReminders(cmd.OutOrStdout(), service.ListReminders(s.stores, reminderActive))
			return nil
		})
	},
}

var reminderDueCmd = &cobra.Command{
	Use:   "due",
	Short: "List active reminders firing now",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, func(s *session) error {
			at := s.now
			if strings.TrimSpace(reminderAt) != "" {
				t, err := time.ParseInLocation(formula.DateLayout+" "+formula.TimeLayout, strings.TrimSpace(reminderAt), s.now.Location())
				if err != nil {
					return fmt.Errorf("invalid --at %q (expected \"YYYY-MM-DD HH:MM\")", reminderAt)
				}
				at = t
			}
			printReminders(cmd.OutOrStdout(), service.DueReminders(s.stores, at))
			return nil
		})
	},
}

func printReminders(w io.Writer, reminders []model.Reminder) {
	names := formula.DaysOfWeek()
	fmt.Fprintln(w, "ID\tTYPE\tTIME\tACTIVE\tDAYS\tMESSAGE")
	for _, r := range reminders {
		days := make([]string, 0, len(r.DaysOfWeek))
		for _, d := range r.DaysOfWeek {
			if d >= 0 && d < len(names) {
				days = append(days, names[d][:3])
			} else {
				days = append(days, strconv.Itoa(d))
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\t%s\n", r.ID, r.Type, r.Time, r.IsActive, strings.Join(days, ","), r.Message)
	}
}

func init() {
	rootCmd.AddCommand(reminderCmd)
	reminderCmd.AddCommand(reminderAddCmd, reminderUpdateCmd, reminderDeleteCmd, reminderListCmd, reminderDueCmd)

	reminderAddCmd.Flags().StringVar(&reminderType, "type", "", "Reminder type (workout|meal|water|sleep)")
	reminderAddCmd.Flags().StringVar(&reminderTime, "time", "", "Time HH:MM")
	reminderAddCmd.Flags().StringVar(&reminderMessage, "message", "", "Message")
	reminderAddCmd.Flags().StringVar(&reminderDays, "days", "", "Comma-separated days, 0-6 or names (default every day)")
	reminderAddCmd.Flags().BoolVar(&reminderInactive, "inactive", false, "Create the reminder disabled")
	_ = reminderAddCmd.MarkFlagRequired("type")
	_ = reminderAddCmd.MarkFlagRequired("time")
	_ = reminderAddCmd.MarkFlagRequired("message")

	reminderUpdateCmd.Flags().StringVar(&reminderUpdateType, "type", "", "Reminder type")
	reminderUpdateCmd.Flags().StringVar(&reminderUpdateTime, "time", "", "Time HH:MM")
	reminderUpdateCmd.Flags().StringVar(&reminderUpdateMessage, "message", "", "Message")
	reminderUpdateCmd.Flags().StringVar(&reminderUpdateDays, "days", "", "Comma-separated days, 0-6 or names")
	reminderUpdateCmd.Flags().BoolVar(&reminderUpdateActive, "active", true, "Enable or disable the reminder")

	reminderListCmd.Flags().BoolVar(&reminderActive, "active", false, "Only active reminders")
	reminderDueCmd.Flags().StringVar(&reminderAt, "at", "", "Check at \"YYYY-MM-DD HH:MM\" instead of now")
}
