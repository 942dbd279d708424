package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	authdomain "github.com/Apurer/go-gin-northwind-api/internal/domains/auth/domain"
	authports "github.com/Apurer/go-gin-northwind-api/internal/domains/auth/ports"
)

const tracerName = "github.com/Apurer/go-gin-northwind-api/internal/domains/auth/adapters/observability/service"

// Service decorates the auth service with tracing, logging, and metrics.
// Token values never reach logs or span attributes.
type Service struct {
	inner   authports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) { s.tracer = tr }
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) { s.metrics = newServiceMetrics(m) }
}

// New wraps the core auth service.
func New(inner authports.Service, opts ...Option) authports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

func (s *Service) Login(ctx context.Context, ns authdomain.Namespace, username, password string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.Login", trace.WithAttributes(attribute.String("auth.namespace", ns.String())))
	defer span.End()
	token, err := s.inner.Login(ctx, ns, username, password)
	if err != nil {
		s.metrics.recordRejected(ctx, ns)
		return "", s.handleError(ctx, span, err, "login rejected", slog.String("namespace", ns.String()))
	}
	s.metrics.recordLogin(ctx, ns)
	s.logInfo(ctx, "token issued", slog.String("namespace", ns.String()))
	return token, nil
}

func (s *Service) Authorize(ctx context.Context, ns authdomain.Namespace, token string) error {
	ctx, span := s.tracer.Start(ctx, "AuthService.Authorize", trace.WithAttributes(attribute.String("auth.namespace", ns.String())))
	defer span.End()
	if err := s.inner.Authorize(ctx, ns, token); err != nil {
		s.metrics.recordRejected(ctx, ns)
		span.SetStatus(codes.Error, "unauthorized")
		s.logDebug(ctx, "access denied", slog.String("namespace", ns.String()))
		return err
	}
	return nil
}

func (s *Service) Logout(ctx context.Context, ns authdomain.Namespace, token string) error {
	ctx, span := s.tracer.Start(ctx, "AuthService.Logout", trace.WithAttributes(attribute.String("auth.namespace", ns.String())))
	defer span.End()
	if err := s.inner.Logout(ctx, ns, token); err != nil {
		s.metrics.recordRejected(ctx, ns)
		return s.handleError(ctx, span, err, "logout rejected", slog.String("namespace", ns.String()))
	}
	s.metrics.recordLogout(ctx, ns)
	s.logInfo(ctx, "token revoked", slog.String("namespace", ns.String()))
	return nil
}

func (s *Service) VerifyPasswordHash(ctx context.Context, password, hash string) bool {
	ctx, span := s.tracer.Start(ctx, "AuthService.VerifyPasswordHash")
	defer span.End()
	ok := s.inner.VerifyPasswordHash(ctx, password, hash)
	span.SetAttributes(attribute.Bool("auth.hash.match", ok))
	return ok
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
	}
	return err
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logDebug(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

type serviceMetrics struct {
	logins   metric.Int64Counter
	logouts  metric.Int64Counter
	rejected metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	logins, _ := m.Int64Counter("auth.service.logins", metric.WithDescription("Number of tokens issued"))
	logouts, _ := m.Int64Counter("auth.service.logouts", metric.WithDescription("Number of tokens revoked"))
	rejected, _ := m.Int64Counter("auth.service.rejected", metric.WithDescription("Number of rejected credentials or tokens"))
	return serviceMetrics{logins: logins, logouts: logouts, rejected: rejected}
}

func (m serviceMetrics) recordLogin(ctx context.Context, ns authdomain.Namespace) {
	if m.logins != nil {
		m.logins.Add(ctx, 1, metric.WithAttributes(attribute.String("namespace", ns.String())))
	}
}

func (m serviceMetrics) recordLogout(ctx context.Context, ns authdomain.Namespace) {
	if m.logouts != nil {
		m.logouts.Add(ctx, 1, metric.WithAttributes(attribute.String("namespace", ns.String())))
	}
}

func (m serviceMetrics) recordRejected(ctx context.Context, ns authdomain.Namespace) {
	if m.rejected != nil {
		m.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("namespace", ns.String())))
	}
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var _ authports.Service = (*Service)(nil)
