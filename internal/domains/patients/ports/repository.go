package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/patients/domain"
)

var ErrNotFound = errors.New("patient not found")

// Repository persists patients. Save assigns sequential ids starting at 1; ids are never reused.
type Repository interface {
	Save(ctx context.Context, patient *domain.Patient) (*domain.Patient, error)
	GetByID(ctx context.Context, id int64) (*domain.Patient, error)
	List(ctx context.Context) ([]*domain.Patient, error)
}
