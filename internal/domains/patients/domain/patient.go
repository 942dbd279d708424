package domain

import (
	"errors"
	"strings"
	"time"
	"unicode"
)

var (
	ErrEmptyName    = errors.New("name is required")
	ErrEmptySurname = errors.New("surname is required")
)

// Patient is a registered person awaiting vaccination.
type Patient struct {
	ID              int64
	Name            string
	Surname         string
	RegisterDate    time.Time
	VaccinationDate time.Time
}

// NewPatient validates the names and schedules vaccination relative to registeredAt.
// The ID is assigned by the repository.
func NewPatient(name, surname string, registeredAt time.Time) (*Patient, error) {
	name = strings.TrimSpace(name)
	surname = strings.TrimSpace(surname)
	if name == "" {
		return nil, ErrEmptyName
	}
	if surname == "" {
		return nil, ErrEmptySurname
	}
	registered := DateOf(registeredAt)
	return &Patient{
		Name:            name,
		Surname:         surname,
		RegisterDate:    registered,
		VaccinationDate: registered.AddDate(0, 0, LetterCount(name+surname)),
	}, nil
}

// LetterCount counts Unicode letters, ignoring digits, spaces and punctuation.
func LetterCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}

// DateOf truncates t to midnight UTC of its calendar day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
