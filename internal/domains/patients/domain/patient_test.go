package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPatient_SchedulesVaccinationByLetterCount(t *testing.T) {
	registered := time.Date(2021, time.March, 30, 18, 45, 0, 0, time.UTC)

	patient, err := NewPatient("Jan", "Kowalski-Nowak", registered)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, time.March, 30, 0, 0, 0, 0, time.UTC), patient.RegisterDate)
	// 3 + 13 letters; the hyphen does not count.
	assert.Equal(t, time.Date(2021, time.April, 15, 0, 0, 0, 0, time.UTC), patient.VaccinationDate)
}

func TestNewPatient_Validates(t *testing.T) {
	_, err := NewPatient("  ", "Nowak", time.Now())
	require.ErrorIs(t, err, ErrEmptyName)
	_, err = NewPatient("Jan", "", time.Now())
	require.ErrorIs(t, err, ErrEmptySurname)
}

func TestLetterCount(t *testing.T) {
	assert.Equal(t, 0, LetterCount("123 -!"))
	assert.Equal(t, 5, LetterCount("Łódź ż"))
}
