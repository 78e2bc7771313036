package formula

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// clockPattern is TimeLayout with both digits of the hour required.
var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ValidTime reports whether value is a zero-padded 24-hour HH:MM.
func ValidTime(value string) bool {
	return clockPattern.MatchString(value)
}

// NewID returns a random 128-bit identifier.
func NewID() string {
	return uuid.NewString()
}

// FormatDate renders an ISO date relative to now: "Today", "Yesterday", or
// "Jan 02, 2006".
func FormatDate(date string, now time.Time) (string, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(date), now.Location())
	if err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	today := beginningOfDay(now)
	switch {
	case d.Equal(today):
		return "Today", nil
	case d.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday", nil
	default:
		return d.Format("Jan 02, 2006"), nil
	}
}

// FormatTime turns "HH:MM" into a 12-hour clock string such as "2:05 PM".
func FormatTime(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q (expected HH:MM)", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid time %q (expected HH:MM)", value)
	}
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%s %s", h, parts[1], suffix), nil
}

func DaysOfWeek() []string {
	return []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
}

type Day struct {
	Date      time.Time `json:"date" yaml:"date"`
	Formatted string    `json:"formatted" yaml:"formatted"`
}

// Next7Days lists today and the six following days.
func Next7Days(now time.Time) []Day {
	out := make([]Day, 0, 7)
	start := beginningOfDay(now)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		out = append(out, Day{Date: d, Formatted: d.Format(DateLayout)})
	}
	return out
}

func Today(now time.Time) string {
	return now.Format(DateLayout)
}

func beginningOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
