package ports

import (
	"context"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/patients/domain"
)

// WorkflowOrchestrator runs patient registration, durably or inline.
type WorkflowOrchestrator interface {
	RegisterPatient(ctx context.Context, input RegistrationInput) (*domain.Patient, error)
}
