package domain

import (
	"errors"
	"strings"
)

var ErrWeekdayMismatch = errors.New("day name does not match number")

var weekdays = map[string]int{
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,
	"sunday":    7,
}

// CheckWeekday reports ErrWeekdayMismatch unless number is the ISO weekday (monday=1) of name.
func CheckWeekday(name string, number int) error {
	want, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	if !ok || want != number {
		return ErrWeekdayMismatch
	}
	return nil
}
