package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyCategoryName = errors.New("category name is required")
	ErrInvalidID         = errors.New("id must be greater than zero")
	ErrInvalidOrder      = errors.New("order must be one of first_name, last_name, city")
	ErrNegativePaging    = errors.New("limit and offset must not be negative")
)

type Category struct {
	ID   int64
	Name string
}

type Customer struct {
	ID          string
	Name        string
	FullAddress string
}

type Product struct {
	ID   int64
	Name string
}

type ProductExtended struct {
	ID       int64
	Name     string
	Category string
	Supplier string
}

type Employee struct {
	ID        int64
	LastName  string
	FirstName string
	City      string
}

// ProductOrder is one order line of a product, priced after discount.
type ProductOrder struct {
	ID         int64
	Customer   string
	Quantity   int64
	TotalPrice float64
}

// EmployeeOrder names the columns employees may be sorted by.
type EmployeeOrder string

const (
	OrderDefault   EmployeeOrder = ""
	OrderFirstName EmployeeOrder = "first_name"
	OrderLastName  EmployeeOrder = "last_name"
	OrderCity      EmployeeOrder = "city"
)

// EmployeeQuery pages and sorts the employee listing. Nil Limit means no limit.
type EmployeeQuery struct {
	Limit  *int
	Offset int
	Order  EmployeeOrder
}

// Validate rejects unknown sort columns and negative paging.
func (q EmployeeQuery) Validate() error {
	switch q.Order {
	case OrderDefault, OrderFirstName, OrderLastName, OrderCity:
	default:
		return ErrInvalidOrder
	}
	if q.Offset < 0 || (q.Limit != nil && *q.Limit < 0) {
		return ErrNegativePaging
	}
	return nil
}

// NormalizeCategoryName trims the name and rejects empty values.
func NormalizeCategoryName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyCategoryName
	}
	return name, nil
}

// JoinAddress renders address parts separated by single spaces; empty parts stay empty.
func JoinAddress(address, postalCode, city, country string) string {
	return strings.Join([]string{address, postalCode, city, country}, " ")
}
