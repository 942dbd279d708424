package patients

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/patients/application"
	"github.com/Apurer/go-gin-northwind-api/internal/domains/patients/domain"
	patientports "github.com/Apurer/go-gin-northwind-api/internal/domains/patients/ports"
	patientworkflows "github.com/Apurer/go-gin-northwind-api/internal/platform/temporal/workflows/patients"
)

// Activities groups activities that operate on the patients bounded context.
type Activities struct {
	service patientports.Service
}

// NewActivities wires the patients service into the Temporal activities bundle.
func NewActivities(service patientports.Service) *Activities {
	return &Activities{service: service}
}

// Persist registers the patient and returns it with the assigned id.
func (a *Activities) Persist(ctx context.Context, input patientports.RegistrationInput) (*domain.Patient, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("patient persist activity not initialized")
		return nil, errors.New("patient persist activity not initialized")
	}
	logger.Info("Persist activity started")
	patient, err := a.service.Register(ctx, input)
	if err != nil {
		logger.Error("Persist activity failed", "error", err)
		if errors.Is(err, application.ErrInvalidInput) {
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), patientworkflows.InvalidInputErrorType, err)
		}
		return nil, err
	}
	logger.Info("Persist activity completed", "patientId", patient.ID)
	return patient, nil
}
