package fittrack

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/saadjs/fittrack-cli/internal/formula"
	"github.com/saadjs/fittrack-cli/internal/service"
)

var (
	calendarMonth  string
	calendarFormat string
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show which days of a month have workout and meal logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withState(cmd, func(s *session) error {
			grid, err := service.Calendar(s.stores, calendarMonth, s.now)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), calendarFormat, grid, func(w io.Writer) {
				printCalendar(w, grid, s.now.Format(formula.DateLayout))
			})
		})
	},
}

// printCalendar writes one tab-separated row per week. W marks a workout
// log, M a meal log and * today.
func printCalendar(w io.Writer, grid formula.MonthGrid, today string) {
	if first, err := time.Parse(formula.MonthLayout, grid.Month); err == nil {
		fmt.Fprintln(w, first.Format("January 2006"))
	}
	names := formula.DaysOfWeek()
	header := make([]string, 0, len(names))
	for _, n := range names {
		header = append(header, n[:3])
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, week := range grid.Weeks() {
		cells := make([]string, 0, 7)
		for _, d := range week {
			cells = append(cells, calendarCell(d, today))
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	fmt.Fprintln(w, "W = workout logged, M = meal logged, * = today")
}

func calendarCell(d *formula.CalendarDay, today string) string {
	if d == nil {
		return ""
	}
	cell := fmt.Sprintf("%2d ", d.Day)
	if d.HasWorkout {
		cell += "W"
	}
	if d.HasMeal {
		cell += "M"
	}
	if d.Date == today {
		cell += "*"
	}
	return strings.TrimRight(cell, " ")
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().StringVar(&calendarMonth, "month", "", "Month YYYY-MM (default this month)")
	calendarCmd.Flags().StringVar(&calendarFormat, "format", "text", "Output format (text|json|yaml)")
}
