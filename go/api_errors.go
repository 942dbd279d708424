package apiserver

import (
	"github.com/gin-gonic/gin"

	authapp "github.com/Apurer/go-gin-northwind-api/internal/domains/auth/application"
	northwindapp "github.com/Apurer/go-gin-northwind-api/internal/domains/northwind/application"
	northwindports "github.com/Apurer/go-gin-northwind-api/internal/domains/northwind/ports"
	patientsapp "github.com/Apurer/go-gin-northwind-api/internal/domains/patients/application"
	patientsports "github.com/Apurer/go-gin-northwind-api/internal/domains/patients/ports"
	apierrors "github.com/Apurer/go-gin-northwind-api/internal/shared/errors"
)

// BasicChallenge is the WWW-Authenticate value sent when basic credentials are rejected.
const BasicChallenge = "Basic"

var responder = apierrors.NewResponder("",
	apierrors.Sentinel(authapp.ErrAuthentication, apierrors.ErrUnauthorized),
	apierrors.Sentinel(patientsports.ErrNotFound, apierrors.ErrNotFound),
	apierrors.Sentinel(patientsapp.ErrInvalidInput, apierrors.ErrBadRequest),
	apierrors.Sentinel(northwindports.ErrNotFound, apierrors.ErrNotFound),
	apierrors.Sentinel(northwindports.ErrConflict, apierrors.ErrConflict),
	apierrors.Sentinel(northwindapp.ErrInvalidInput, apierrors.ErrBadRequest),
)

// respondProblem maps a ProblemDetail through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	responder.Respond(c, problem)
}

// respondError translates domain errors into RFC 7807 responses.
func respondError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	responder.RespondError(c, err)
}

func respondBadRequest(c *gin.Context, err error) {
	respondProblem(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
}
