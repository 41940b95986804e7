package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/go-secure-store/internal/logger"
	"github.com/MKhiriev/go-secure-store/internal/utils"
	"github.com/MKhiriev/go-secure-store/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createSecret(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var record models.SecretRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Err(err).Str("func", "*Handler.createSecret").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.SecretsService.CreateSecret(r.Context(), record)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createSecret").Msg("error creating secret record")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, models.SecretCreatedResponse{
		ID:        created.ID,
		CreatedAt: created.CreatedAt.Format(time.RFC3339),
	}, http.StatusCreated)
}

func (h *Handler) getSecret(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	record, err := h.services.SecretsService.GetSecret(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getSecret").Msg("error loading secret record")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, record, http.StatusOK)
}
