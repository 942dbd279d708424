package application

import (
	"context"
	"fmt"
	"time"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/patients/domain"
	"github.com/Apurer/go-gin-northwind-api/internal/domains/patients/ports"
)

// Service orchestrates patient registration.
type Service struct {
	repo ports.Repository
	now  func() time.Time
}

// Option configures optional collaborators.
type Option func(*Service)

// WithClock overrides time.Now for the registration date.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) Register(ctx context.Context, input ports.RegistrationInput) (*domain.Patient, error) {
	patient, err := domain.NewPatient(input.Name, input.Surname, s.now())
	if err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, patient)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Patient, error) {
	if id < 1 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*domain.Patient, error) {
	return s.repo.List(ctx)
}

var _ ports.Service = (*Service)(nil)
