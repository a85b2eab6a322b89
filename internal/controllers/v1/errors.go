package v1

import (
	"errors"
	"net/http"

	"github.com/bazooka-parts/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no part matching your query"`
}

// status returns the appropriate HTTP status for a ledger error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errAllocationFilterRequired = errors.New("the project or part parameter must be set")
	errQuantityParameterInvalid = errors.New("the quantity parameter must be a positive number")
)
