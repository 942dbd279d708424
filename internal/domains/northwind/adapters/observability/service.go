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

	"github.com/Apurer/go-gin-northwind-api/internal/domains/northwind/domain"
	"github.com/Apurer/go-gin-northwind-api/internal/domains/northwind/ports"
)

const tracerName = "github.com/Apurer/go-gin-northwind-api/internal/domains/northwind/adapters/observability/service"

// Service decorates the Northwind service with tracing, logging, and category mutation metrics.
type Service struct {
	inner     ports.Service
	tracer    trace.Tracer
	logger    *slog.Logger
	mutations metric.Int64Counter
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
			s.mutations, _ = m.Int64Counter("northwind.categories.mutations", metric.WithDescription("Number of category create, update and delete calls that succeeded"))
		}
	}
}

// New wraps the core Northwind service.
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

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	ctx, span := s.tracer.Start(ctx, "NorthwindService.Categories")
	defer span.End()
	categories, err := s.inner.Categories(ctx)
	return categories, s.record(ctx, span, err, "failed to list categories")
}

func (s *Service) Customers(ctx context.Context) ([]domain.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "NorthwindService.Customers")
	defer span.End()
	customers, err := s.inner.Customers(ctx)
	return customers, s.record(ctx, span, err, "failed to list customers")
}

func (s *Service) Product(ctx context.Context, id int64) (*domain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "NorthwindService.Product", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()
	product, err := s.inner.Product(ctx, id)
	return product, s.record(ctx, span, err, "failed to get product")
}

func (s *Service) Employees(ctx context.Context, query domain.EmployeeQuery) ([]domain.Employee, error) {
	ctx, span := s.tracer.Start(ctx, "NorthwindService.Employees", trace.WithAttributes(
		attribute.String("employees.order", string(query.Order)),
		attribute.Int("employees.offset", query.Offset),
	))
	defer span.End()
	employees, err := s.inner.Employees(ctx, query)
	return employees, s.record(ctx, span, err, "failed to list employees")
}

func (s *Service) ProductsExtended(ctx context.Context) ([]domain.ProductExtended, error) {
	ctx, span := s.tracer.Start(ctx, "NorthwindService.ProductsExtended")
	defer span.End()
	products, err := s.inner.ProductsExtended(ctx)
	return products, s.record(ctx, span, err, "failed to list extended products")
}

func (s *Service) ProductOrders(ctx context.Context, productID int64) ([]domain.ProductOrder, error) {
	ctx, span := s.tracer.Start(ctx, "NorthwindService.ProductOrders", trace.WithAttributes(attribute.Int64("product.id", productID)))
	defer span.End()
	orders, err := s.inner.ProductOrders(ctx, productID)
	return orders, s.record(ctx, span, err, "failed to list product orders")
}

func (s *Service) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	ctx, span := s.tracer.Start(ctx, "NorthwindService.CreateCategory")
	defer span.End()
	category, err := s.inner.CreateCategory(ctx, name)
	if err != nil {
		return nil, s.record(ctx, span, err, "failed to create category")
	}
	s.mutated(ctx, "create", category.ID)
	return category, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, name string) (*domain.Category, error) {
	ctx, span := s.tracer.Start(ctx, "NorthwindService.UpdateCategory", trace.WithAttributes(attribute.Int64("category.id", id)))
	defer span.End()
	category, err := s.inner.UpdateCategory(ctx, id, name)
	if err != nil {
		return nil, s.record(ctx, span, err, "failed to update category")
	}
	s.mutated(ctx, "update", id)
	return category, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id int64) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "NorthwindService.DeleteCategory", trace.WithAttributes(attribute.Int64("category.id", id)))
	defer span.End()
	deleted, err := s.inner.DeleteCategory(ctx, id)
	if err != nil {
		return 0, s.record(ctx, span, err, "failed to delete category")
	}
	s.mutated(ctx, "delete", id)
	return deleted, nil
}

func (s *Service) mutated(ctx context.Context, op string, id int64) {
	if s.mutations != nil {
		s.mutations.Add(ctx, 1, metric.WithAttributes(attribute.String("op", op)))
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "category "+op, slog.Int64("categoryId", id))
}

// record marks the span failed and logs; nil errors pass through untouched.
func (s *Service) record(ctx context.Context, span trace.Span, err error, msg string) error {
	if err == nil {
		return nil
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.logger.LogAttrs(ctx, slog.LevelWarn, msg, slog.String("error", err.Error()))
	return err
}

var _ ports.Service = (*Service)(nil)
