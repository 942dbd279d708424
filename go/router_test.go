package apiserver

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	authmemory "github.com/Apurer/go-gin-northwind-api/internal/domains/auth/adapters/memory"
	authapp "github.com/Apurer/go-gin-northwind-api/internal/domains/auth/application"
	authdomain "github.com/Apurer/go-gin-northwind-api/internal/domains/auth/domain"
	greetingapp "github.com/Apurer/go-gin-northwind-api/internal/domains/greeting/application"
	nwsqlite "github.com/Apurer/go-gin-northwind-api/internal/domains/northwind/adapters/persistence/sqlite"
	nwapp "github.com/Apurer/go-gin-northwind-api/internal/domains/northwind/application"
	patientsmemory "github.com/Apurer/go-gin-northwind-api/internal/domains/patients/adapters/memory"
	patientsworkflows "github.com/Apurer/go-gin-northwind-api/internal/domains/patients/adapters/workflows"
	patientsapp "github.com/Apurer/go-gin-northwind-api/internal/domains/patients/application"
	platformsqlite "github.com/Apurer/go-gin-northwind-api/internal/platform/sqlite"
)

const (
	testUser     = "4dm1n"
	testPassword = "NotSoSecurePa$$"
)

var fixedNow = time.Date(2021, time.May, 1, 10, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, northwindSeed ...string) *gin.Engine {
	t.Helper()
	ctx := context.Background()

	checker, err := authdomain.NewCredentialChecker(testUser, testPassword)
	require.NoError(t, err)
	auth := authapp.NewService(checker, authmemory.NewBoundedTokenStore(), authmemory.NewBoundedTokenStore())
	clock := func() time.Time { return fixedNow }
	greeting := greetingapp.NewService(greetingapp.WithClock(clock))
	patients := patientsapp.NewService(patientsmemory.NewRepository(), patientsapp.WithClock(clock))

	db, err := platformsqlite.Open(ctx, platformsqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, platformsqlite.EnsureNorthwindSchema(ctx, db))
	for _, stmt := range northwindSeed {
		_, err := db.ExecContext(ctx, stmt)
		require.NoError(t, err)
	}

	return NewRouterWithGinEngine(gin.New(), ApiHandleFunctions{
		GreetingAPI:  NewGreetingAPI(greeting),
		AuthAPI:      NewAuthAPI(auth, greeting),
		PatientAPI:   NewPatientAPI(patients, patientsworkflows.NewInlinePatientWorkflows(patients)),
		NorthwindAPI: NewNorthwindAPI(nwapp.NewService(nwsqlite.NewRepository(db))),
	})
}

func perform(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}
