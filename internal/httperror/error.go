package httperror

import (
	"errors"
	"net/http"

	"github.com/tallybook/backend/internal/models"
)

type Error struct {
	Message string `json:"error" example:"the ledger file could not be parsed"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

// Status returns the appropriate HTTP status for a ledger error.
func Status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}
