package patients

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/patients/domain"
	patientports "github.com/Apurer/go-gin-northwind-api/internal/domains/patients/ports"
)

const (
	// RegistrationWorkflowName is the public identifier for registering the workflow.
	RegistrationWorkflowName = "patients.workflows.Registration"
	// RegistrationTaskQueue is the queue consumed by the worker processing patient workflows.
	RegistrationTaskQueue = "PATIENT_REGISTRATION"
	// PersistActivityName stores a new patient and returns it with its assigned id.
	PersistActivityName = "patients.activities.Persist"
	// InvalidInputErrorType marks non-retryable activity failures caused by rejected input.
	InvalidInputErrorType = "InvalidInput"
)

// RegistrationWorkflowInput captures the payload required to register a patient.
type RegistrationWorkflowInput struct {
	Command patientports.RegistrationInput
	TraceID string
}

// RegistrationWorkflow persists the patient exactly once; failures are not retried because
// a retry after a lost ack would consume a second id.
func RegistrationWorkflow(ctx workflow.Context, input RegistrationWorkflowInput) (*domain.Patient, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("RegistrationWorkflow started", withTraceID(input.TraceID)...)

	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 10 * time.Second,
		RetryPolicy:         &temporal.RetryPolicy{MaximumAttempts: 1},
	})
	var patient domain.Patient
	if err := workflow.ExecuteActivity(ctx, PersistActivityName, input.Command).Get(ctx, &patient); err != nil {
		logger.Error("RegistrationWorkflow failed", withTraceID(input.TraceID, "error", err)...)
		return nil, err
	}
	logger.Info("RegistrationWorkflow completed", withTraceID(input.TraceID, "patientId", patient.ID)...)
	return &patient, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
