package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/saadjs/fittrack-cli/internal/formula"
	"github.com/saadjs/fittrack-cli/internal/store"
)

// Calendar returns the activity grid for month (YYYY-MM), or for now's
// month when month is empty.
func Calendar(st *store.Stores, month string, now time.Time) (formula.MonthGrid, error) {
	at := now
	if month = strings.TrimSpace(month); month != "" {
		t, err := time.ParseInLocation(formula.MonthLayout, month, now.Location())
		if err != nil {
			return formula.MonthGrid{}, fmt.Errorf("invalid month %q (expected YYYY-MM)", month)
		}
		at = t
	}
	return formula.MonthActivity(st.Workout.Logs(), st.Nutrition.MealLogs(), at), nil
}
