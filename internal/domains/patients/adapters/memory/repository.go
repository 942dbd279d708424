package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/patients/domain"
	"github.com/Apurer/go-gin-northwind-api/internal/domains/patients/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory patient registry.
type Repository struct {
	mu       sync.RWMutex
	patients map[int64]*domain.Patient
	nextID   int64
}

func NewRepository() *Repository {
	return &Repository{patients: map[int64]*domain.Patient{}}
}

func (r *Repository) Save(_ context.Context, patient *domain.Patient) (*domain.Patient, error) {
	if patient == nil {
		return nil, errors.New("patient is nil")
	}
	clone := *patient
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	clone.ID = r.nextID
	r.patients[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	patient, ok := r.patients[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *patient
	return &clone, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Patient, 0, len(r.patients))
	for _, patient := range r.patients {
		clone := *patient
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}
