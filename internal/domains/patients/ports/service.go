package ports

import (
	"context"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/patients/domain"
)

// RegistrationInput carries the names of a patient to register.
type RegistrationInput struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// Service exposes patient registry use cases to adapters.
type Service interface {
	Register(ctx context.Context, input RegistrationInput) (*domain.Patient, error)
	Get(ctx context.Context, id int64) (*domain.Patient, error)
	List(ctx context.Context) ([]*domain.Patient, error)
}
