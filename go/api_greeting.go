package apiserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	greetingdomain "github.com/Apurer/go-gin-northwind-api/internal/domains/greeting/domain"
	greetingports "github.com/Apurer/go-gin-northwind-api/internal/domains/greeting/ports"
)

// GreetingAPI serves the small unauthenticated endpoints.
type GreetingAPI struct {
	service greetingports.Service
}

func NewGreetingAPI(service greetingports.Service) GreetingAPI {
	return GreetingAPI{service: service}
}

// Get /
func (api *GreetingAPI) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello world!"})
}

// Get|Post|Delete|Put|Options /method
// Echoes the request method; POST answers 201
func (api *GreetingAPI) Method(c *gin.Context) {
	status := http.StatusOK
	if c.Request.Method == http.MethodPost {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"method": c.Request.Method})
}

// Get /counter
func (api *GreetingAPI) Counter(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"counter": api.service.Count(c.Request.Context())})
}

// Get /day
// Checks that number is the ISO weekday of name
func (api *GreetingAPI) Day(c *gin.Context) {
	var (
		name   string
		number int
	)
	query := c.Request.URL.Query()
	if err := runtime.BindQueryParameter("form", true, true, "name", query, &name); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	if err := runtime.BindQueryParameter("form", true, true, "number", query, &number); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	if err := api.service.CheckDay(c.Request.Context(), name, number); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	c.Status(http.StatusOK)
}

// Get /hello
func (api *GreetingAPI) Hello(c *gin.Context) {
	page, err := api.service.Hello(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, greetingdomain.ContentTypeHTML, []byte(page))
}
