package apiserver

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	patienthttpmapper "github.com/Apurer/go-gin-northwind-api/internal/domains/patients/adapters/http/mapper"
	patientsdomain "github.com/Apurer/go-gin-northwind-api/internal/domains/patients/domain"
	patientsports "github.com/Apurer/go-gin-northwind-api/internal/domains/patients/ports"
)

// PatientAPI wires HTTP transport with the patients bounded context service and workflows.
type PatientAPI struct {
	service   patientsports.Service
	workflows patientsports.WorkflowOrchestrator
}

// NewPatientAPI creates a PatientAPI. A nil orchestrator registers through the service directly.
func NewPatientAPI(service patientsports.Service, workflows patientsports.WorkflowOrchestrator) PatientAPI {
	return PatientAPI{service: service, workflows: workflows}
}

// Post /register
// Registers a patient and schedules the vaccination date
func (api *PatientAPI) Register(c *gin.Context) {
	var payload patienthttpmapper.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	patient, err := api.register(c.Request.Context(), patienthttpmapper.ToRegistrationInput(payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, patienthttpmapper.FromDomainPatient(patient))
}

func (api *PatientAPI) register(ctx context.Context, input patientsports.RegistrationInput) (*patientsdomain.Patient, error) {
	if api.workflows != nil {
		return api.workflows.RegisterPatient(ctx, input)
	}
	return api.service.Register(ctx, input)
}

// Get /patient/:id
func (api *PatientAPI) GetPatient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	patient, err := api.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, patienthttpmapper.FromDomainPatient(patient))
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		respondBadRequest(c, err)
		return 0, false
	}
	return id, true
}
