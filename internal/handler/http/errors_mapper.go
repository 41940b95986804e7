package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-secure-store/internal/crypto"
	"github.com/MKhiriev/go-secure-store/internal/service"
	"github.com/MKhiriev/go-secure-store/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrAdminRequired:              http.StatusForbidden,
	service.ErrValidationNoFieldsProvided: http.StatusBadRequest,
	service.ErrValidationNoRecordID:       http.StatusBadRequest,

	crypto.ErrInvalidInput: http.StatusBadRequest,
	// format and authentication failures share one generic message and are
	// both surfaced as server-side failures, so a caller probing with forged
	// envelopes learns nothing about which check tripped
	crypto.ErrInvalidFormat:    http.StatusInternalServerError,
	crypto.ErrDecryptionFailed: http.StatusInternalServerError,

	store.ErrRecordAlreadyExists: http.StatusConflict,
	store.ErrRecordNotFound:      http.StatusNotFound,
	store.ErrRecordNotSaved:      http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
