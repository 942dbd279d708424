package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/northwind/domain"
)

var (
	ErrNotFound = errors.New("northwind record not found")
	// ErrConflict reports a write that lost a race for the same key. Callers may retry.
	ErrConflict = errors.New("northwind record conflicts with a concurrent write")
)

// Repository reads and writes the Northwind sample schema.
type Repository interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	Customers(ctx context.Context) ([]domain.Customer, error)
	ProductByID(ctx context.Context, id int64) (*domain.Product, error)
	Employees(ctx context.Context, query domain.EmployeeQuery) ([]domain.Employee, error)
	ProductsExtended(ctx context.Context) ([]domain.ProductExtended, error)
	// ProductOrders returns ErrNotFound when the product itself does not exist.
	ProductOrders(ctx context.Context, productID int64) ([]domain.ProductOrder, error)
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, name string) (*domain.Category, error)
	// DeleteCategory returns the number of deleted rows, or ErrNotFound when none matched.
	DeleteCategory(ctx context.Context, id int64) (int64, error)
}
