package apiserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	northwindhttpmapper "github.com/Apurer/go-gin-northwind-api/internal/domains/northwind/adapters/http/mapper"
	northwinddomain "github.com/Apurer/go-gin-northwind-api/internal/domains/northwind/domain"
	northwindports "github.com/Apurer/go-gin-northwind-api/internal/domains/northwind/ports"
)

// NorthwindAPI exposes the Northwind sample database.
type NorthwindAPI struct {
	service northwindports.Service
}

func NewNorthwindAPI(service northwindports.Service) NorthwindAPI {
	return NorthwindAPI{service: service}
}

// EmployeesParams are the query parameters of GET /employees.
type EmployeesParams struct {
	Limit  *int
	Offset *int
	Order  *string
}

// Get /categories
func (api *NorthwindAPI) ListCategories(c *gin.Context) {
	categories, err := api.service.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": northwindhttpmapper.FromCategories(categories)})
}

// Post /categories
func (api *NorthwindAPI) CreateCategory(c *gin.Context) {
	var payload northwindhttpmapper.CategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	category, err := api.service.CreateCategory(c.Request.Context(), payload.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, northwindhttpmapper.FromCategory(category))
}

// Put /categories/:id
func (api *NorthwindAPI) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload northwindhttpmapper.CategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	category, err := api.service.UpdateCategory(c.Request.Context(), id, payload.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, northwindhttpmapper.FromCategory(category))
}

// Delete /categories/:id
func (api *NorthwindAPI) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	deleted, err := api.service.DeleteCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// Get /customers
func (api *NorthwindAPI) ListCustomers(c *gin.Context) {
	customers, err := api.service.Customers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": northwindhttpmapper.FromCustomers(customers)})
}

// Get /products/:id
func (api *NorthwindAPI) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := api.service.Product(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, northwindhttpmapper.FromProduct(product))
}

// Get /products/:id/orders
func (api *NorthwindAPI) ListProductOrders(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	orders, err := api.service.ProductOrders(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": northwindhttpmapper.FromProductOrders(orders)})
}

// Get /products_extended
func (api *NorthwindAPI) ListProductsExtended(c *gin.Context) {
	products, err := api.service.ProductsExtended(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products_extended": northwindhttpmapper.FromProductsExtended(products)})
}

// Get /employees
// Lists employees with optional limit, offset and order
func (api *NorthwindAPI) ListEmployees(c *gin.Context) {
	var params EmployeesParams
	query := c.Request.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "limit", query, &params.Limit); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "offset", query, &params.Offset); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "order", query, &params.Order); err != nil {
		respondBadRequest(c, err)
		return
	}
	employees, err := api.service.Employees(c.Request.Context(), params.toQuery())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": northwindhttpmapper.FromEmployees(employees)})
}

func (p EmployeesParams) toQuery() northwinddomain.EmployeeQuery {
	q := northwinddomain.EmployeeQuery{Limit: p.Limit}
	if p.Offset != nil {
		q.Offset = *p.Offset
	}
	if p.Order != nil {
		q.Order = northwinddomain.EmployeeOrder(*p.Order)
	}
	return q
}
