package mapper

import (
	"time"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/patients/domain"
	"github.com/Apurer/go-gin-northwind-api/internal/domains/patients/ports"
)

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Name    string `json:"name" binding:"required"`
	Surname string `json:"surname" binding:"required"`
}

// Patient is the transport shape with dates rendered as YYYY-MM-DD.
type Patient struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Surname         string `json:"surname"`
	RegisterDate    string `json:"register_date"`
	VaccinationDate string `json:"vaccination_date"`
}

func ToRegistrationInput(req RegisterRequest) ports.RegistrationInput {
	return ports.RegistrationInput{Name: req.Name, Surname: req.Surname}
}

func FromDomainPatient(p *domain.Patient) Patient {
	if p == nil {
		return Patient{}
	}
	return Patient{
		ID:              p.ID,
		Name:            p.Name,
		Surname:         p.Surname,
		RegisterDate:    p.RegisterDate.Format(time.DateOnly),
		VaccinationDate: p.VaccinationDate.Format(time.DateOnly),
	}
}
