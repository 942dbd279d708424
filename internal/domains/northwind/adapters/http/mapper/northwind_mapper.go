package mapper

import (
	"github.com/Apurer/go-gin-northwind-api/internal/domains/northwind/domain"
)

// CategoryRequest is the body of category create and update calls.
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Customer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	FullAddress string `json:"full_address"`
}

type Product struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ProductExtended struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Supplier string `json:"supplier"`
}

type Employee struct {
	ID        int64  `json:"id"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	City      string `json:"city"`
}

type ProductOrder struct {
	ID         int64   `json:"id"`
	Customer   string  `json:"customer"`
	Quantity   int64   `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
}

func FromCategory(c *domain.Category) Category {
	if c == nil {
		return Category{}
	}
	return Category{ID: c.ID, Name: c.Name}
}

func FromCategories(list []domain.Category) []Category {
	out := make([]Category, 0, len(list))
	for i := range list {
		out = append(out, FromCategory(&list[i]))
	}
	return out
}

func FromCustomers(list []domain.Customer) []Customer {
	out := make([]Customer, 0, len(list))
	for _, c := range list {
		out = append(out, Customer{ID: c.ID, Name: c.Name, FullAddress: c.FullAddress})
	}
	return out
}

func FromProduct(p *domain.Product) Product {
	if p == nil {
		return Product{}
	}
	return Product{ID: p.ID, Name: p.Name}
}

func FromProductsExtended(list []domain.ProductExtended) []ProductExtended {
	out := make([]ProductExtended, 0, len(list))
	for _, p := range list {
		out = append(out, ProductExtended{ID: p.ID, Name: p.Name, Category: p.Category, Supplier: p.Supplier})
	}
	return out
}

func FromEmployees(list []domain.Employee) []Employee {
	out := make([]Employee, 0, len(list))
	for _, e := range list {
		out = append(out, Employee{ID: e.ID, LastName: e.LastName, FirstName: e.FirstName, City: e.City})
	}
	return out
}

func FromProductOrders(list []domain.ProductOrder) []ProductOrder {
	out := make([]ProductOrder, 0, len(list))
	for _, o := range list {
		out = append(out, ProductOrder{ID: o.ID, Customer: o.Customer, Quantity: o.Quantity, TotalPrice: o.TotalPrice})
	}
	return out
}
