//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/patients/domain"
	"github.com/Apurer/go-gin-northwind-api/internal/domains/patients/ports"
	"github.com/Apurer/go-gin-northwind-api/internal/platform/migrations"
)

func setupPatientsPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("clinic_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, migrations.Run(db))

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		_ = pgContainer.Terminate(ctx)
	}
	return db, cleanup
}

func TestRepository_SaveAssignsSequentialIDs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db, cleanup := setupPatientsPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()
	registered := time.Date(2021, time.May, 1, 9, 30, 0, 0, time.UTC)

	first, err := domain.NewPatient("Jan", "Nowak", registered)
	require.NoError(t, err)
	savedFirst, err := repo.Save(ctx, first)
	require.NoError(t, err)

	second, err := domain.NewPatient("Ala", "Kot", registered)
	require.NoError(t, err)
	second.ID = 500
	savedSecond, err := repo.Save(ctx, second)
	require.NoError(t, err)

	assert.Equal(t, int64(1), savedFirst.ID)
	assert.Equal(t, int64(2), savedSecond.ID)

	fetched, err := repo.GetByID(ctx, savedFirst.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nowak", fetched.Surname)
	assert.Equal(t, "2021-05-01", fetched.RegisterDate.Format(time.DateOnly))
	assert.Equal(t, "2021-05-09", fetched.VaccinationDate.Format(time.DateOnly))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, savedFirst.ID, list[0].ID)
}

func TestRepository_GetMissing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db, cleanup := setupPatientsPostgresContainer(t)
	defer cleanup()

	_, err := NewRepository(db).GetByID(context.Background(), 404)
	require.ErrorIs(t, err, ports.ErrNotFound)
}
