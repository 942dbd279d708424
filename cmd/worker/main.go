package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"
	"gorm.io/gorm"

	"github.com/Apurer/go-gin-northwind-api/internal/app/api"
	patientsobs "github.com/Apurer/go-gin-northwind-api/internal/domains/patients/adapters/observability"
	patientspostgres "github.com/Apurer/go-gin-northwind-api/internal/domains/patients/adapters/persistence/postgres"
	patientsapp "github.com/Apurer/go-gin-northwind-api/internal/domains/patients/application"
	patientsports "github.com/Apurer/go-gin-northwind-api/internal/domains/patients/ports"
	"github.com/Apurer/go-gin-northwind-api/internal/platform/migrations"
	platformobservability "github.com/Apurer/go-gin-northwind-api/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-gin-northwind-api/internal/platform/postgres"
	platformtemporal "github.com/Apurer/go-gin-northwind-api/internal/platform/temporal"
	patientactivities "github.com/Apurer/go-gin-northwind-api/internal/platform/temporal/activities/patients"
	patientworkflows "github.com/Apurer/go-gin-northwind-api/internal/platform/temporal/workflows/patients"
)

func main() {
	ctx := context.Background()
	const serviceName = "northwind-worker"

	cfg, err := api.LoadConfig("")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName, platformobservability.WithLogLevel(cfg.LogLevel))
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := platformpostgres.ConnectOptional(ctx, cfg.PostgresDSN, logger)
	defer cleanupDB()
	patientRepo, err := buildPatientRepository(db)
	if err != nil {
		logger.Error("worker cannot persist patients", slog.String("error", err.Error()))
		cleanupDB()
		os.Exit(1)
	}
	patientService := patientsobs.New(
		patientsapp.NewService(patientRepo),
		patientsobs.WithLogger(logger),
		patientsobs.WithTracer(instruments.Tracer("internal.patients.application")),
		patientsobs.WithMeter(instruments.Meter("internal.patients.application")),
	)
	activities := patientactivities.NewActivities(patientService)

	temporalClient, err := platformtemporal.Dial(platformtemporal.Settings{
		Address:   cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Disabled:  cfg.TemporalDisabled,
	}, instruments, "temporal-worker")
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, patientworkflows.RegistrationTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(patientworkflows.RegistrationWorkflow, workflow.RegisterOptions{Name: patientworkflows.RegistrationWorkflowName})
	w.RegisterActivityWithOptions(activities.Persist, activity.RegisterOptions{Name: patientworkflows.PersistActivityName})

	logger.Info("worker listening", slog.String("taskQueue", patientworkflows.RegistrationTaskQueue), slog.String("namespace", cfg.TemporalNamespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

// errNoSharedStore stops the worker when patients would land in a store the API cannot read.
var errNoSharedStore = errors.New("POSTGRES_DSN must point at the database the API reads patients from")

func buildPatientRepository(db *gorm.DB) (patientsports.Repository, error) {
	if db == nil {
		return nil, errNoSharedStore
	}
	if err := migrations.Run(db); err != nil {
		return nil, fmt.Errorf("migrate patients schema: %w", err)
	}
	return patientspostgres.NewRepository(db), nil
}
