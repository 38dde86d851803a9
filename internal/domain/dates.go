package domain

import (
	"fmt"
	"strings"
	"time"
)

// Clock предоставляет текущее время
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock возвращает часы, основанные на time.Now
func SystemClock() Clock {
	return systemClock{}
}

// parseDate разбирает дату строго в формате dd/mm/yyyy.
// Несуществующие даты (31/02/1970) отклоняются time.ParseInLocation.
func parseDate(raw string, loc *time.Location) (time.Time, error) {
	if !datePattern.MatchString(raw) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	t, err := time.ParseInLocation(DateLayout, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return t, nil
}

// civilDate отбрасывает время суток
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// wholeYears возвращает количество полных лет между датами
func wholeYears(from, to time.Time) int {
	years := to.Year() - from.Year()
	if to.Month() < from.Month() || (to.Month() == from.Month() && to.Day() < from.Day()) {
		years--
	}
	return years
}

type dateField struct {
	text string
	on   time.Time
}

func (e *Employee) parseDateField(raw string) (dateField, error) {
	text := strings.TrimSpace(raw)
	if err := validate.Var(text, dateRule); err != nil {
		return dateField{}, fmt.Errorf("%w: %q", ErrInvalidDate, text)
	}
	on, err := parseDate(text, e.now().Location())
	if err != nil {
		return dateField{}, err
	}
	return dateField{text: text, on: on}, nil
}

func validateBirthDate(born, now time.Time) error {
	if age := wholeYears(born, now); age < minimumAge {
		return fmt.Errorf("%w: %d years old", ErrUnderage, age)
	}
	return nil
}

func validateEmploymentDate(employed, now time.Time) error {
	if civilDate(employed).After(civilDate(now)) {
		return fmt.Errorf("%w: %s", ErrFutureEmploymentDate, employed.Format(DateLayout))
	}
	return nil
}
