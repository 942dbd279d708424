package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/northwind/domain"
	"github.com/Apurer/go-gin-northwind-api/internal/domains/northwind/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository reads the snake_case northwind_psql schema using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle and migrations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

var employeeOrderColumns = map[domain.EmployeeOrder]string{
	domain.OrderDefault:   "employee_id",
	domain.OrderFirstName: "first_name",
	domain.OrderLastName:  "last_name",
	domain.OrderCity:      "city",
}

type categoryRecord struct {
	CategoryID   int64  `gorm:"primaryKey;column:category_id"`
	CategoryName string `gorm:"column:category_name"`
}

func (categoryRecord) TableName() string { return "categories" }

type customerRow struct {
	ID         string
	Name       string
	Address    string
	PostalCode string
	City       string
	Country    string
}

type productRow struct {
	ID   int64
	Name string
}

type productExtendedRow struct {
	ID       int64
	Name     string
	Category string
	Supplier string
}

type employeeRow struct {
	ID        int64
	LastName  string
	FirstName string
	City      string
}

type productOrderRow struct {
	ID         int64
	Customer   string
	Quantity   int64
	TotalPrice float64
}

func (r *Repository) Categories(ctx context.Context) ([]domain.Category, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []categoryRecord
	if err := r.db.WithContext(ctx).Order("category_id").Find(&records).Error; err != nil {
		return nil, err
	}
	categories := make([]domain.Category, 0, len(records))
	for _, rec := range records {
		categories = append(categories, rec.toDomain())
	}
	return categories, nil
}

func (r *Repository) Customers(ctx context.Context) ([]domain.Customer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var rows []customerRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT customer_id AS id, company_name AS name,
			COALESCE(address, '') AS address, COALESCE(postal_code, '') AS postal_code,
			COALESCE(city, '') AS city, COALESCE(country, '') AS country
		FROM customers
		ORDER BY UPPER(customer_id)`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	customers := make([]domain.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, domain.Customer{
			ID:          row.ID,
			Name:        row.Name,
			FullAddress: domain.JoinAddress(row.Address, row.PostalCode, row.City, row.Country),
		})
	}
	return customers, nil
}

func (r *Repository) ProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var rows []productRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT product_id AS id, product_name AS name FROM products WHERE product_id = ?`, id,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}
	product := domain.Product(rows[0])
	return &product, nil
}

func (r *Repository) Employees(ctx context.Context, q domain.EmployeeQuery) ([]domain.Employee, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	column, ok := employeeOrderColumns[q.Order]
	if !ok {
		return nil, domain.ErrInvalidOrder
	}
	query := `SELECT employee_id AS id, last_name, first_name, COALESCE(city, '') AS city FROM employees ORDER BY ` +
		pq.QuoteIdentifier(column) + `, employee_id`
	args := []any{}
	if q.Limit != nil {
		query += ` LIMIT ?`
		args = append(args, *q.Limit)
	}
	query += ` OFFSET ?`
	args = append(args, q.Offset)

	var rows []employeeRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	employees := make([]domain.Employee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, domain.Employee(row))
	}
	return employees, nil
}

func (r *Repository) ProductsExtended(ctx context.Context) ([]domain.ProductExtended, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var rows []productExtendedRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.product_id AS id, p.product_name AS name, c.category_name AS category, s.company_name AS supplier
		FROM products p
		JOIN categories c ON p.category_id = c.category_id
		JOIN suppliers s ON p.supplier_id = s.supplier_id
		ORDER BY p.product_id`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	products := make([]domain.ProductExtended, 0, len(rows))
	for _, row := range rows {
		products = append(products, domain.ProductExtended(row))
	}
	return products, nil
}

func (r *Repository) ProductOrders(ctx context.Context, productID int64) ([]domain.ProductOrder, error) {
	if _, err := r.ProductByID(ctx, productID); err != nil {
		return nil, err
	}
	var rows []productOrderRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT o.order_id AS id, c.company_name AS customer, od.quantity AS quantity,
			CAST(ROUND(CAST(od.unit_price * od.quantity - od.discount * od.unit_price * od.quantity AS numeric), 2) AS float8) AS total_price
		FROM orders o
		JOIN order_details od ON o.order_id = od.order_id
		JOIN customers c ON o.customer_id = c.customer_id
		WHERE od.product_id = ?
		ORDER BY o.order_id`, productID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	orders := make([]domain.ProductOrder, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, domain.ProductOrder(row))
	}
	return orders, nil
}

// CreateCategory allocates the next id itself; the upstream dump declares category_id without a sequence.
func (r *Repository) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record categoryRecord
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO categories (category_id, category_name)
		VALUES ((SELECT COALESCE(MAX(category_id), 0) + 1 FROM categories), ?)
		RETURNING category_id, category_name`, name).Scan(&record).Error
	if isUniqueViolation(err) {
		// Two creates read the same MAX(category_id).
		return nil, fmt.Errorf("%w: category id taken by a concurrent create", ports.ErrConflict)
	}
	if err != nil {
		return nil, err
	}
	category := record.toDomain()
	return &category, nil
}

func (r *Repository) UpdateCategory(ctx context.Context, id int64, name string) (*domain.Category, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	res := r.db.WithContext(ctx).Model(&categoryRecord{}).Where("category_id = ?", id).Update("category_name", name)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return &domain.Category{ID: id, Name: name}, nil
}

func (r *Repository) DeleteCategory(ctx context.Context, id int64) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	res := r.db.WithContext(ctx).Where("category_id = ?", id).Delete(&categoryRecord{})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ports.ErrNotFound
	}
	return res.RowsAffected, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres northwind repository not configured")
	}
	return nil
}

func (r categoryRecord) toDomain() domain.Category {
	return domain.Category{ID: r.CategoryID, Name: r.CategoryName}
}

// uniqueViolation is the SQLSTATE for a duplicate key.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
