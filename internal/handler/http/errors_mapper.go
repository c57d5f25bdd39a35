package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/flux-signup/internal/service"
	"github.com/MKhiriev/flux-signup/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:  http.StatusUnprocessableEntity,
	service.ErrUnknownField:         http.StatusBadRequest,
	service.ErrIntegrityCheckFailed: http.StatusBadRequest,

	validators.ErrValidationFailed: http.StatusUnprocessableEntity,
	validators.ErrUnknownField:     http.StatusBadRequest,
	validators.ErrUnsupportedType:  http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
