package workflows

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/patients/application"
	"github.com/Apurer/go-gin-northwind-api/internal/domains/patients/domain"
	"github.com/Apurer/go-gin-northwind-api/internal/domains/patients/ports"
	patientworkflows "github.com/Apurer/go-gin-northwind-api/internal/platform/temporal/workflows/patients"
)

var (
	_ ports.WorkflowOrchestrator = (*TemporalPatientWorkflows)(nil)
	_ ports.WorkflowOrchestrator = (*InlinePatientWorkflows)(nil)
)

// DefaultResultTimeout bounds how long RegisterPatient waits for a worker to finish.
const DefaultResultTimeout = 30 * time.Second

// TemporalPatientWorkflows starts patient registration on a Temporal cluster.
type TemporalPatientWorkflows struct {
	client        client.Client
	taskQueue     string
	resultTimeout time.Duration
}

// Option configures TemporalPatientWorkflows.
type Option func(*TemporalPatientWorkflows)

// WithResultTimeout replaces DefaultResultTimeout. Non-positive values are ignored.
func WithResultTimeout(d time.Duration) Option {
	return func(o *TemporalPatientWorkflows) {
		if d > 0 {
			o.resultTimeout = d
		}
	}
}

// NewTemporalPatientWorkflows wires a Temporal client into the orchestrator.
func NewTemporalPatientWorkflows(c client.Client, opts ...Option) *TemporalPatientWorkflows {
	o := &TemporalPatientWorkflows{
		client:        c,
		taskQueue:     patientworkflows.RegistrationTaskQueue,
		resultTimeout: DefaultResultTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// RegisterPatient runs the registration workflow and waits at most the result timeout
// for the stored patient. The workflow itself times out after the same interval.
func (o *TemporalPatientWorkflows) RegisterPatient(ctx context.Context, input ports.RegistrationInput) (*domain.Patient, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal patient workflows not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, o.resultTimeout)
	defer cancel()

	traceID := workflowTraceID(ctx)
	options := client.StartWorkflowOptions{
		ID:                       buildRegistrationWorkflowID(traceID),
		TaskQueue:                o.taskQueue,
		WorkflowExecutionTimeout: o.resultTimeout,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		patientworkflows.RegistrationWorkflowName,
		patientworkflows.RegistrationWorkflowInput{Command: input, TraceID: traceID},
	)
	if runID, ok := alreadyStartedRunID(err); ok {
		run = o.client.GetWorkflow(ctx, options.ID, runID)
	} else if err != nil {
		return nil, err
	}
	var patient domain.Patient
	if err := run.Get(ctx, &patient); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("wait for registration workflow %s: %w", options.ID, ctxErr)
		}
		return nil, unwrapWorkflowError(err)
	}
	return &patient, nil
}

// InlinePatientWorkflows executes the service directly without Temporal.
type InlinePatientWorkflows struct {
	service ports.Service
}

// NewInlinePatientWorkflows wraps the patients service for synchronous execution.
func NewInlinePatientWorkflows(service ports.Service) *InlinePatientWorkflows {
	return &InlinePatientWorkflows{service: service}
}

func (o *InlinePatientWorkflows) RegisterPatient(ctx context.Context, input ports.RegistrationInput) (*domain.Patient, error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline patient workflows not configured")
	}
	return o.service.Register(ctx, input)
}

// unwrapWorkflowError restores ErrInvalidInput from a rejected Persist activity.
func unwrapWorkflowError(err error) error {
	var appErr *temporal.ApplicationError
	if errors.As(err, &appErr) && appErr.Type() == patientworkflows.InvalidInputErrorType {
		return fmt.Errorf("%w: %s", application.ErrInvalidInput, appErr.Message())
	}
	return err
}

// alreadyStartedRunID reports the run to join when the workflow id is already taken.
func alreadyStartedRunID(err error) (string, bool) {
	var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
	if errors.As(err, &alreadyStarted) {
		return alreadyStarted.RunId, true
	}
	return "", false
}

func buildRegistrationWorkflowID(traceID string) string {
	id := fmt.Sprintf("patient-registration-%d", time.Now().UnixNano())
	if strings.TrimSpace(traceID) != "" {
		id += "-" + traceID
	}
	return id
}

func workflowTraceID(ctx context.Context) string {
	spanCtx := oteltrace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}
