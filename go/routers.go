package apiserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
	// Middleware runs before HandlerFunc, in order.
	Middleware []gin.HandlerFunc
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds the routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		chain := append(append([]gin.HandlerFunc{}, route.Middleware...), route.HandlerFunc)
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, chain...)
		case http.MethodPost:
			router.POST(route.Pattern, chain...)
		case http.MethodPut:
			router.PUT(route.Pattern, chain...)
		case http.MethodPatch:
			router.PATCH(route.Pattern, chain...)
		case http.MethodDelete:
			router.DELETE(route.Pattern, chain...)
		case http.MethodOptions:
			router.OPTIONS(route.Pattern, chain...)
		}
	}

	return router
}

// DefaultHandleFunc answers routes that have no handler wired.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

type ApiHandleFunctions struct {
	// Routes for the greeting part of the API
	GreetingAPI GreetingAPI
	// Routes for the session and token authentication part of the API
	AuthAPI AuthAPI
	// Routes for the patient registry part of the API
	PatientAPI PatientAPI
	// Routes for the Northwind part of the API
	NorthwindAPI NorthwindAPI
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	requireSession := []gin.HandlerFunc{handleFunctions.AuthAPI.RequireSession}
	requireToken := []gin.HandlerFunc{handleFunctions.AuthAPI.RequireToken}

	routes := []Route{
		{"Root", http.MethodGet, "/", handleFunctions.GreetingAPI.Root, nil},
		{"Counter", http.MethodGet, "/counter", handleFunctions.GreetingAPI.Counter, nil},
		{"Day", http.MethodGet, "/day", handleFunctions.GreetingAPI.Day, nil},
		{"Hello", http.MethodGet, "/hello", handleFunctions.GreetingAPI.Hello, nil},

		{"LoginSession", http.MethodPost, "/login_session", handleFunctions.AuthAPI.LoginSession, nil},
		{"LoginToken", http.MethodPost, "/login_token", handleFunctions.AuthAPI.LoginToken, nil},
		{"WelcomeSession", http.MethodGet, "/welcome_session", handleFunctions.AuthAPI.Welcome, requireSession},
		{"WelcomeToken", http.MethodGet, "/welcome_token", handleFunctions.AuthAPI.Welcome, requireToken},
		{"LogoutSession", http.MethodDelete, "/logout_session", handleFunctions.AuthAPI.LogoutSession, requireSession},
		{"LogoutToken", http.MethodDelete, "/logout_token", handleFunctions.AuthAPI.LogoutToken, requireToken},
		{"LoggedOut", http.MethodGet, "/logged_out", handleFunctions.AuthAPI.LoggedOut, nil},
		{"CheckPasswordHash", http.MethodGet, "/auth", handleFunctions.AuthAPI.CheckPasswordHash, nil},

		{"RegisterPatient", http.MethodPost, "/register", handleFunctions.PatientAPI.Register, nil},
		{"GetPatient", http.MethodGet, "/patient/:id", handleFunctions.PatientAPI.GetPatient, nil},

		{"ListCategories", http.MethodGet, "/categories", handleFunctions.NorthwindAPI.ListCategories, nil},
		{"CreateCategory", http.MethodPost, "/categories", handleFunctions.NorthwindAPI.CreateCategory, nil},
		{"UpdateCategory", http.MethodPut, "/categories/:id", handleFunctions.NorthwindAPI.UpdateCategory, nil},
		{"DeleteCategory", http.MethodDelete, "/categories/:id", handleFunctions.NorthwindAPI.DeleteCategory, nil},
		{"ListCustomers", http.MethodGet, "/customers", handleFunctions.NorthwindAPI.ListCustomers, nil},
		{"GetProduct", http.MethodGet, "/products/:id", handleFunctions.NorthwindAPI.GetProduct, nil},
		{"ListProductOrders", http.MethodGet, "/products/:id/orders", handleFunctions.NorthwindAPI.ListProductOrders, nil},
		{"ListProductsExtended", http.MethodGet, "/products_extended", handleFunctions.NorthwindAPI.ListProductsExtended, nil},
		{"ListEmployees", http.MethodGet, "/employees", handleFunctions.NorthwindAPI.ListEmployees, nil},
	}

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodPut, http.MethodOptions} {
		routes = append(routes, Route{"Method" + method, method, "/method", handleFunctions.GreetingAPI.Method, nil})
	}
	return routes
}
