package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	"gorm.io/gorm"

	apiserver "github.com/Apurer/go-gin-northwind-api/go"

	authmemory "github.com/Apurer/go-gin-northwind-api/internal/domains/auth/adapters/memory"
	authobs "github.com/Apurer/go-gin-northwind-api/internal/domains/auth/adapters/observability"
	authapp "github.com/Apurer/go-gin-northwind-api/internal/domains/auth/application"
	authdomain "github.com/Apurer/go-gin-northwind-api/internal/domains/auth/domain"
	greetingapp "github.com/Apurer/go-gin-northwind-api/internal/domains/greeting/application"
	nwobs "github.com/Apurer/go-gin-northwind-api/internal/domains/northwind/adapters/observability"
	nwpostgres "github.com/Apurer/go-gin-northwind-api/internal/domains/northwind/adapters/persistence/postgres"
	nwsqlite "github.com/Apurer/go-gin-northwind-api/internal/domains/northwind/adapters/persistence/sqlite"
	nwapp "github.com/Apurer/go-gin-northwind-api/internal/domains/northwind/application"
	nwports "github.com/Apurer/go-gin-northwind-api/internal/domains/northwind/ports"
	patientsmemory "github.com/Apurer/go-gin-northwind-api/internal/domains/patients/adapters/memory"
	patientsobs "github.com/Apurer/go-gin-northwind-api/internal/domains/patients/adapters/observability"
	patientspostgres "github.com/Apurer/go-gin-northwind-api/internal/domains/patients/adapters/persistence/postgres"
	patientsworkflows "github.com/Apurer/go-gin-northwind-api/internal/domains/patients/adapters/workflows"
	patientsapp "github.com/Apurer/go-gin-northwind-api/internal/domains/patients/application"
	patientsports "github.com/Apurer/go-gin-northwind-api/internal/domains/patients/ports"
	"github.com/Apurer/go-gin-northwind-api/internal/platform/migrations"
	platformobservability "github.com/Apurer/go-gin-northwind-api/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-gin-northwind-api/internal/platform/postgres"
	platformsqlite "github.com/Apurer/go-gin-northwind-api/internal/platform/sqlite"
	platformtemporal "github.com/Apurer/go-gin-northwind-api/internal/platform/temporal"
)

const shutdownTimeout = 5 * time.Second

// Run boots the HTTP API with observability, repositories, and workflows wired, and serves
// until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	instruments, shutdown, err := platformobservability.Init(ctx, DefaultServiceName, platformobservability.WithLogLevel(cfg.LogLevel))
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := platformpostgres.ConnectOptional(ctx, cfg.PostgresDSN, logger)
	defer cleanupDB()

	checker, err := authdomain.NewCredentialChecker(cfg.AuthUsername, cfg.AuthPassword)
	if err != nil {
		return fmt.Errorf("invalid auth configuration: %w", err)
	}
	authService := authobs.New(
		authapp.NewService(checker, authmemory.NewBoundedTokenStore(), authmemory.NewBoundedTokenStore()),
		authobs.WithLogger(logger),
		authobs.WithTracer(instruments.Tracer("internal.auth.application")),
		authobs.WithMeter(instruments.Meter("internal.auth.application")),
	)
	greetingService := greetingapp.NewService()

	patientRepo, sharedPatients := buildPatientRepository(db, logger)
	patientService := patientsobs.New(
		patientsapp.NewService(patientRepo),
		patientsobs.WithLogger(logger),
		patientsobs.WithTracer(instruments.Tracer("internal.patients.application")),
		patientsobs.WithMeter(instruments.Meter("internal.patients.application")),
	)
	dialTemporal := func() (client.Client, error) {
		return platformtemporal.Dial(platformtemporal.Settings{
			Address:   cfg.TemporalAddress,
			Namespace: cfg.TemporalNamespace,
			Disabled:  cfg.TemporalDisabled,
		}, instruments, "temporal-client")
	}
	patientWorkflows, closeTemporal := choosePatientWorkflows(sharedPatients, patientService, dialTemporal, logger)
	defer closeTemporal()

	northwindRepo, cleanupNorthwind, err := buildNorthwindRepository(ctx, cfg, db, logger)
	if err != nil {
		return err
	}
	defer cleanupNorthwind()
	northwindService := nwobs.New(
		nwapp.NewService(northwindRepo),
		nwobs.WithLogger(logger),
		nwobs.WithTracer(instruments.Tracer("internal.northwind.application")),
		nwobs.WithMeter(instruments.Meter("internal.northwind.application")),
	)

	engine := gin.New()
	engine.Use(gin.Recovery(), otelgin.Middleware(DefaultServiceName))
	router := apiserver.NewRouterWithGinEngine(engine, apiserver.ApiHandleFunctions{
		GreetingAPI:  apiserver.NewGreetingAPI(greetingService),
		AuthAPI:      apiserver.NewAuthAPI(authService, greetingService),
		PatientAPI:   apiserver.NewPatientAPI(patientService, patientWorkflows),
		NorthwindAPI: apiserver.NewNorthwindAPI(northwindService),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           withCORS(router, cfg.CORSAllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return serve(ctx, srv, logger)
}

func serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Northwind API listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.Error("Northwind API server exited", slog.String("addr", srv.Addr), slog.String("error", err.Error()))
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("shutting down Northwind API")
	return srv.Shutdown(shutdownCtx)
}

// withCORS wraps handler when origins are configured; without origins no CORS headers are sent.
func withCORS(handler http.Handler, origins []string) http.Handler {
	if len(origins) == 0 {
		return handler
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(handler)
}

// buildPatientRepository reports shared=true only for postgres, the one store the worker
// process can write to and the API can read back.
func buildPatientRepository(db *gorm.DB, logger *slog.Logger) (repo patientsports.Repository, shared bool) {
	if db == nil {
		return patientsmemory.NewRepository(), false
	}
	if err := migrations.Run(db); err != nil {
		logger.Warn("failed to migrate patients schema, falling back to memory", slog.String("error", err.Error()))
		return patientsmemory.NewRepository(), false
	}
	logger.Info("patient repository configured with postgres")
	return patientspostgres.NewRepository(db), true
}

// choosePatientWorkflows uses Temporal only when patients live in a store the worker shares
// with the API. The returned close func is never nil.
func choosePatientWorkflows(shared bool, service patientsports.Service, dial func() (client.Client, error), logger *slog.Logger) (patientsports.WorkflowOrchestrator, func()) {
	inline := patientsworkflows.NewInlinePatientWorkflows(service)
	if !shared {
		logger.Info("patients stored in memory, registering inline without Temporal")
		return inline, func() {}
	}
	temporalClient, err := dial()
	if err != nil {
		logger.Warn("Temporal workflows unavailable, registering patients inline", slog.String("error", err.Error()))
		return inline, func() {}
	}
	logger.Info("Temporal workflows enabled for patient registration")
	return patientsworkflows.NewTemporalPatientWorkflows(temporalClient), temporalClient.Close
}

func buildNorthwindRepository(ctx context.Context, cfg Config, db *gorm.DB, logger *slog.Logger) (nwports.Repository, func(), error) {
	if cfg.NorthwindBackend == BackendPostgres {
		if db == nil {
			return nil, nil, errors.New("northwind postgres backend selected but postgres is unavailable")
		}
		if err := migrations.RunNorthwind(db); err != nil {
			return nil, nil, fmt.Errorf("failed to prepare northwind schema: %w", err)
		}
		logger.Info("northwind repository configured with postgres")
		return nwpostgres.NewRepository(db), func() {}, nil
	}

	sqlDB, err := platformsqlite.Open(ctx, cfg.NorthwindSQLitePath)
	if err != nil {
		return nil, nil, err
	}
	if err := platformsqlite.EnsureNorthwindSchema(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, nil, err
	}
	logger.Info("northwind repository configured with sqlite", slog.String("path", cfg.NorthwindSQLitePath))
	return nwsqlite.NewRepository(sqlDB), func() { _ = sqlDB.Close() }, nil
}
