package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/patients/domain"
	"github.com/Apurer/go-gin-northwind-api/internal/domains/patients/ports"
)

type fakePatientRepo struct {
	patients map[int64]*domain.Patient
	nextID   int64
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: map[int64]*domain.Patient{}}
}

func (f *fakePatientRepo) Save(_ context.Context, patient *domain.Patient) (*domain.Patient, error) {
	f.nextID++
	copy := *patient
	copy.ID = f.nextID
	f.patients[copy.ID] = &copy
	return &copy, nil
}

func (f *fakePatientRepo) GetByID(_ context.Context, id int64) (*domain.Patient, error) {
	if p, ok := f.patients[id]; ok {
		copy := *p
		return &copy, nil
	}
	return nil, ports.ErrNotFound
}

func (f *fakePatientRepo) List(_ context.Context) ([]*domain.Patient, error) {
	var list []*domain.Patient
	for id := int64(1); id <= f.nextID; id++ {
		if p, ok := f.patients[id]; ok {
			copy := *p
			list = append(list, &copy)
		}
	}
	return list, nil
}

func TestRegister_PersistsWithSchedule(t *testing.T) {
	fixed := time.Date(2021, time.January, 1, 12, 0, 0, 0, time.UTC)
	svc := NewService(newFakePatientRepo(), WithClock(func() time.Time { return fixed }))

	patient, err := svc.Register(context.Background(), ports.RegistrationInput{Name: "Jan", Surname: "Nowak"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), patient.ID)
	assert.Equal(t, "2021-01-01", patient.RegisterDate.Format(time.DateOnly))
	assert.Equal(t, "2021-01-09", patient.VaccinationDate.Format(time.DateOnly))
}

func TestRegister_InvalidInput(t *testing.T) {
	svc := NewService(newFakePatientRepo())
	_, err := svc.Register(context.Background(), ports.RegistrationInput{Name: "Jan"})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrEmptySurname)
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakePatientRepo())
	_, err := svc.Register(ctx, ports.RegistrationInput{Name: "Jan", Surname: "Nowak"})
	require.NoError(t, err)

	patient, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Nowak", patient.Surname)

	_, err = svc.Get(ctx, 0)
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Get(ctx, 2)
	require.ErrorIs(t, err, ports.ErrNotFound)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
