package ports

import (
	"context"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/northwind/domain"
)

// Service exposes Northwind use cases to adapters.
type Service interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	Customers(ctx context.Context) ([]domain.Customer, error)
	Product(ctx context.Context, id int64) (*domain.Product, error)
	Employees(ctx context.Context, query domain.EmployeeQuery) ([]domain.Employee, error)
	ProductsExtended(ctx context.Context) ([]domain.ProductExtended, error)
	ProductOrders(ctx context.Context, productID int64) ([]domain.ProductOrder, error)
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, name string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) (int64, error)
}
