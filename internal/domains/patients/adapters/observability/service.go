package observability

import (
	"context"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/patients/domain"
	"github.com/Apurer/go-gin-northwind-api/internal/domains/patients/ports"
)

const tracerName = "github.com/Apurer/go-gin-northwind-api/internal/domains/patients/adapters/observability/service"

// Service decorates the patients service with tracing, logging, and metrics.
type Service struct {
	inner      ports.Service
	tracer     trace.Tracer
	logger     *slog.Logger
	registered metric.Int64Counter
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) { s.tracer = tr }
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		if m != nil {
			s.registered, _ = m.Int64Counter("patients.service.registered", metric.WithDescription("Number of patients registered"))
		}
	}
}

// New wraps the core patients service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{inner: inner}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

func (s *Service) Register(ctx context.Context, input ports.RegistrationInput) (*domain.Patient, error) {
	ctx, span := s.tracer.Start(ctx, "PatientService.Register")
	defer span.End()
	patient, err := s.inner.Register(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to register patient")
	}
	span.SetAttributes(attribute.Int64("patient.id", patient.ID))
	if s.registered != nil {
		s.registered.Add(ctx, 1)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "patient registered",
		slog.Int64("patientId", patient.ID),
		slog.String("vaccinationDate", patient.VaccinationDate.Format(time.DateOnly)),
	)
	return patient, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Patient, error) {
	ctx, span := s.tracer.Start(ctx, "PatientService.Get", trace.WithAttributes(attribute.Int64("patient.id", id)))
	defer span.End()
	return s.inner.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*domain.Patient, error) {
	ctx, span := s.tracer.Start(ctx, "PatientService.List")
	defer span.End()
	return s.inner.List(ctx)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.logger.LogAttrs(ctx, slog.LevelError, msg, slog.String("error", err.Error()))
	return err
}

var _ ports.Service = (*Service)(nil)
