package application

import (
	"context"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/northwind/domain"
	"github.com/Apurer/go-gin-northwind-api/internal/domains/northwind/ports"
)

// Service validates requests before they reach the Northwind repository.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.Categories(ctx)
}

func (s *Service) Customers(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.Customers(ctx)
}

func (s *Service) Product(ctx context.Context, id int64) (*domain.Product, error) {
	if id < 1 {
		return nil, mapError(domain.ErrInvalidID)
	}
	return s.repo.ProductByID(ctx, id)
}

func (s *Service) Employees(ctx context.Context, query domain.EmployeeQuery) ([]domain.Employee, error) {
	if err := query.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Employees(ctx, query)
}

func (s *Service) ProductsExtended(ctx context.Context) ([]domain.ProductExtended, error) {
	return s.repo.ProductsExtended(ctx)
}

func (s *Service) ProductOrders(ctx context.Context, productID int64) ([]domain.ProductOrder, error) {
	if productID < 1 {
		return nil, mapError(domain.ErrInvalidID)
	}
	return s.repo.ProductOrders(ctx, productID)
}

func (s *Service) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	name, err := domain.NormalizeCategoryName(name)
	if err != nil {
		return nil, mapError(err)
	}
	return s.repo.CreateCategory(ctx, name)
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, name string) (*domain.Category, error) {
	if id < 1 {
		return nil, mapError(domain.ErrInvalidID)
	}
	name, err := domain.NormalizeCategoryName(name)
	if err != nil {
		return nil, mapError(err)
	}
	return s.repo.UpdateCategory(ctx, id, name)
}

func (s *Service) DeleteCategory(ctx context.Context, id int64) (int64, error) {
	if id < 1 {
		return 0, mapError(domain.ErrInvalidID)
	}
	return s.repo.DeleteCategory(ctx, id)
}

var _ ports.Service = (*Service)(nil)
