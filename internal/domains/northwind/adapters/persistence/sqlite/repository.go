package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/northwind/domain"
	"github.com/Apurer/go-gin-northwind-api/internal/domains/northwind/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository reads the upstream Northwind SQLite schema through database/sql.
type Repository struct {
	db *sql.DB
}

// NewRepository wires a SQLite-backed repository. Caller owns the connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

var employeeOrderColumns = map[domain.EmployeeOrder]string{
	domain.OrderDefault:   "EmployeeID",
	domain.OrderFirstName: "FirstName",
	domain.OrderLastName:  "LastName",
	domain.OrderCity:      "City",
}

func (r *Repository) Categories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT CategoryID, CategoryName FROM Categories ORDER BY CategoryID`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *Repository) Customers(ctx context.Context) ([]domain.Customer, error) {
	query := `
		SELECT CustomerID, CompanyName,
			COALESCE(Address, ''), COALESCE(PostalCode, ''), COALESCE(City, ''), COALESCE(Country, '')
		FROM Customers
		ORDER BY UPPER(CustomerID)`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		var (
			c                                  domain.Customer
			address, postalCode, city, country string
		)
		if err := rows.Scan(&c.ID, &c.Name, &address, &postalCode, &city, &country); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		c.FullAddress = domain.JoinAddress(address, postalCode, city, country)
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *Repository) ProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	p := &domain.Product{}
	err := r.db.QueryRowContext(ctx,
		`SELECT ProductID, ProductName FROM Products WHERE ProductID = ?`, id,
	).Scan(&p.ID, &p.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (r *Repository) Employees(ctx context.Context, q domain.EmployeeQuery) ([]domain.Employee, error) {
	column, ok := employeeOrderColumns[q.Order]
	if !ok {
		return nil, domain.ErrInvalidOrder
	}
	limit := -1
	if q.Limit != nil {
		limit = *q.Limit
	}
	query := `SELECT EmployeeID, LastName, FirstName, COALESCE(City, '') FROM Employees ORDER BY ` +
		column + `, EmployeeID LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, limit, q.Offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.LastName, &e.FirstName, &e.City); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *Repository) ProductsExtended(ctx context.Context) ([]domain.ProductExtended, error) {
	query := `
		SELECT p.ProductID, p.ProductName, c.CategoryName, s.CompanyName
		FROM Products p
		JOIN Categories c ON p.CategoryID = c.CategoryID
		JOIN Suppliers s ON p.SupplierID = s.SupplierID
		ORDER BY p.ProductID`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list extended products: %w", err)
	}
	defer rows.Close()

	products := []domain.ProductExtended{}
	for rows.Next() {
		var p domain.ProductExtended
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Supplier); err != nil {
			return nil, fmt.Errorf("scan extended product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *Repository) ProductOrders(ctx context.Context, productID int64) ([]domain.ProductOrder, error) {
	if _, err := r.ProductByID(ctx, productID); err != nil {
		return nil, err
	}
	query := `
		SELECT o.OrderID, c.CompanyName, od.Quantity,
			ROUND(od.UnitPrice * od.Quantity - od.Discount * od.UnitPrice * od.Quantity, 2)
		FROM Orders o
		JOIN "Order Details" od ON o.OrderID = od.OrderID
		JOIN Customers c ON o.CustomerID = c.CustomerID
		WHERE od.ProductID = ?
		ORDER BY o.OrderID`

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.ProductOrder{}
	for rows.Next() {
		var o domain.ProductOrder
		if err := rows.Scan(&o.ID, &o.Customer, &o.Quantity, &o.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan product order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *Repository) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO Categories (CategoryName) VALUES (?)`, name)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("read category id: %w", err)
	}
	return &domain.Category{ID: id, Name: name}, nil
}

func (r *Repository) UpdateCategory(ctx context.Context, id int64, name string) (*domain.Category, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE Categories SET CategoryName = ? WHERE CategoryID = ?`, name, id)
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	if err := requireRows(res); err != nil {
		return nil, err
	}
	return &domain.Category{ID: id, Name: name}, nil
}

func (r *Repository) DeleteCategory(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM Categories WHERE CategoryID = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete category: %w", err)
	}
	if err := requireRows(res); err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func requireRows(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ports.ErrNotFound
	}
	return nil
}
