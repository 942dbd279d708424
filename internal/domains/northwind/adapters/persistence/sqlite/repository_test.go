package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/northwind/domain"
	"github.com/Apurer/go-gin-northwind-api/internal/domains/northwind/ports"
	platformsqlite "github.com/Apurer/go-gin-northwind-api/internal/platform/sqlite"
)

var seed = []string{
	`INSERT INTO Categories (CategoryID, CategoryName) VALUES (1, 'Beverages'), (2, 'Condiments')`,
	`INSERT INTO Suppliers (SupplierID, CompanyName) VALUES (1, 'Exotic Liquids'), (2, 'New Orleans Cajun Delights')`,
	`INSERT INTO Products (ProductID, ProductName, SupplierID, CategoryID, UnitPrice) VALUES
		(1, 'Chai', 1, 1, 18), (2, 'Chang', 1, 1, 19), (3, 'Aniseed Syrup', 2, 2, 10), (4, 'Orphan', NULL, 1, 5)`,
	`INSERT INTO Customers (CustomerID, CompanyName, Address, City, PostalCode, Country) VALUES
		('VINET', 'Vins et alcools Chevalier', '59 rue de l''Abbaye', 'Reims', '51100', 'France'),
		('ANATR', 'Ana Trujillo Emparedados y helados', 'Avda. de la Constitución 2222', 'México D.F.', NULL, 'Mexico'),
		('alfki', 'Alfreds Futterkiste', 'Obere Str. 57', 'Berlin', '12209', 'Germany')`,
	`INSERT INTO Employees (EmployeeID, LastName, FirstName, City) VALUES
		(1, 'Davolio', 'Nancy', 'Seattle'), (2, 'Fuller', 'Andrew', 'Tacoma'),
		(3, 'Leverling', 'Janet', 'Kirkland'), (4, 'Peacock', 'Margaret', 'Redmond')`,
	`INSERT INTO Orders (OrderID, CustomerID) VALUES (10248, 'VINET'), (10249, 'alfki')`,
	`INSERT INTO "Order Details" (OrderID, ProductID, UnitPrice, Quantity, Discount) VALUES
		(10249, 1, 18, 9, 0.15), (10248, 1, 14, 12, 0), (10248, 3, 10, 5, 0)`,
}

func setupRepository(t *testing.T) *Repository {
	t.Helper()
	ctx := context.Background()
	db, err := platformsqlite.Open(ctx, platformsqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, platformsqlite.EnsureNorthwindSchema(ctx, db))
	seedDB(t, db)
	return NewRepository(db)
}

func seedDB(t *testing.T, db *sql.DB) {
	t.Helper()
	for _, stmt := range seed {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
}

func TestCategoriesAndCustomers(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{{ID: 1, Name: "Beverages"}, {ID: 2, Name: "Condiments"}}, categories)

	customers, err := repo.Customers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 3)
	assert.Equal(t, "alfki", customers[0].ID)
	assert.Equal(t, "Obere Str. 57 12209 Berlin Germany", customers[0].FullAddress)
	assert.Equal(t, "ANATR", customers[1].ID)
	assert.Equal(t, "Avda. de la Constitución 2222  México D.F. Mexico", customers[1].FullAddress)
	assert.Equal(t, "VINET", customers[2].ID)
}

func TestProductByID(t *testing.T) {
	repo := setupRepository(t)

	product, err := repo.ProductByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, domain.Product{ID: 2, Name: "Chang"}, *product)

	_, err = repo.ProductByID(context.Background(), 99)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestEmployeesOrderingAndPaging(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	ids := func(employees []domain.Employee) []int64 {
		out := make([]int64, 0, len(employees))
		for _, e := range employees {
			out = append(out, e.ID)
		}
		return out
	}

	all, err := repo.Employees(ctx, domain.EmployeeQuery{})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(all))

	byFirstName, err := repo.Employees(ctx, domain.EmployeeQuery{Order: domain.OrderFirstName})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 4, 1}, ids(byFirstName))

	byCity, err := repo.Employees(ctx, domain.EmployeeQuery{Order: domain.OrderCity})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4, 1, 2}, ids(byCity))

	limit := 2
	page, err := repo.Employees(ctx, domain.EmployeeQuery{Limit: &limit, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, ids(page))

	tail, err := repo.Employees(ctx, domain.EmployeeQuery{Offset: 3})
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, ids(tail))

	_, err = repo.Employees(ctx, domain.EmployeeQuery{Order: "salary"})
	require.ErrorIs(t, err, domain.ErrInvalidOrder)
}

func TestProductsExtendedSkipsProductsWithoutSupplier(t *testing.T) {
	repo := setupRepository(t)

	products, err := repo.ProductsExtended(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, domain.ProductExtended{ID: 1, Name: "Chai", Category: "Beverages", Supplier: "Exotic Liquids"}, products[0])
	assert.Equal(t, domain.ProductExtended{ID: 3, Name: "Aniseed Syrup", Category: "Condiments", Supplier: "New Orleans Cajun Delights"}, products[2])
}

func TestProductOrders(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	orders, err := repo.ProductOrders(ctx, 1)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(10248), orders[0].ID)
	assert.Equal(t, "Vins et alcools Chevalier", orders[0].Customer)
	assert.Equal(t, int64(12), orders[0].Quantity)
	assert.InDelta(t, 168.0, orders[0].TotalPrice, 1e-9)
	assert.Equal(t, int64(10249), orders[1].ID)
	assert.InDelta(t, 137.7, orders[1].TotalPrice, 1e-9)

	empty, err := repo.ProductOrders(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = repo.ProductOrders(ctx, 99)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestCategoryMutations(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	created, err := repo.CreateCategory(ctx, "Seafood")
	require.NoError(t, err)
	assert.Equal(t, domain.Category{ID: 3, Name: "Seafood"}, *created)

	updated, err := repo.UpdateCategory(ctx, created.ID, "Fish")
	require.NoError(t, err)
	assert.Equal(t, "Fish", updated.Name)

	_, err = repo.UpdateCategory(ctx, 99, "Nothing")
	require.ErrorIs(t, err, ports.ErrNotFound)

	deleted, err := repo.DeleteCategory(ctx, created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	_, err = repo.DeleteCategory(ctx, created.ID)
	require.ErrorIs(t, err, ports.ErrNotFound)

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}
