package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/patients/domain"
	"github.com/Apurer/go-gin-northwind-api/internal/domains/patients/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists patients in PostgreSQL using GORM. Ids come from the table sequence,
// which never hands out the same value twice.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle and migrations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type patientRecord struct {
	ID              int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Name            string    `gorm:"column:name;not null"`
	Surname         string    `gorm:"column:surname;not null"`
	RegisterDate    time.Time `gorm:"column:register_date;type:date;not null"`
	VaccinationDate time.Time `gorm:"column:vaccination_date;type:date;not null"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (patientRecord) TableName() string { return "patients" }

// Save inserts a new patient; any ID on the input is ignored.
func (r *Repository) Save(ctx context.Context, patient *domain.Patient) (*domain.Patient, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, errors.New("patient is nil")
	}
	record := toRecord(patient)
	record.ID = 0
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Patient, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record patientRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) List(ctx context.Context) ([]*domain.Patient, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []patientRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	patients := make([]*domain.Patient, 0, len(records))
	for i := range records {
		patients = append(patients, records[i].toDomain())
	}
	return patients, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres patient repository not configured")
	}
	return nil
}

func toRecord(p *domain.Patient) patientRecord {
	return patientRecord{
		ID:              p.ID,
		Name:            p.Name,
		Surname:         p.Surname,
		RegisterDate:    p.RegisterDate,
		VaccinationDate: p.VaccinationDate,
	}
}

func (r patientRecord) toDomain() *domain.Patient {
	return &domain.Patient{
		ID:              r.ID,
		Name:            r.Name,
		Surname:         r.Surname,
		RegisterDate:    domain.DateOf(r.RegisterDate),
		VaccinationDate: domain.DateOf(r.VaccinationDate),
	}
}
