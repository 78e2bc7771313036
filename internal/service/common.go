// Package service holds the use cases behind the CLI. It validates user
// input before it reaches the stores, which accept anything they are given.
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/saadjs/fittrack-cli/internal/formula"
)

var (
	ErrNotOnboarded        = errors.New("profile not set up; run `fittrack onboard` first")
	ErrDuplicateWorkoutDay = errors.New("workout plan has more than one workout on the same day")
	ErrNotFound            = errors.New("record not found")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// hhmm is a zero-padded 24-hour time; time.Parse alone takes "9:05".
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return formula.ValidTime(fl.Field().String())
	})
	return v
}

// validateInput runs struct tag validation and flattens the result into one
// readable error.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate input: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("invalid input: %s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "hhmm":
		return fmt.Sprintf("%s must be HH:MM, got %q", name, fe.Value())
	case "datetime":
		return fmt.Sprintf("%s must be YYYY-MM-DD, got %q", name, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", name, fe.Param(), fmt.Sprint(fe.Value()))
	case "gt", "gte", "lt", "lte", "min", "max":
		return fmt.Sprintf("%s must satisfy %s %s", name, fe.Tag(), fe.Param())
	case "unique":
		return name + " must not contain duplicates"
	default:
		return fmt.Sprintf("%s failed %s", name, fe.Tag())
	}
}

// dateOrToday returns date trimmed, or now's date when empty.
func dateOrToday(date string, now time.Time) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return formula.Today(now)
	}
	return date
}

func beginningOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func ptr[T any](v T) *T {
	return &v
}
