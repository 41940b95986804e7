package http

import (
	"net/http"

	"github.com/MKhiriev/go-secure-store/internal/logger"
	"github.com/MKhiriev/go-secure-store/internal/ratelimit"
	"github.com/MKhiriev/go-secure-store/internal/utils"
)

// limitInfo describes one rate-limit profile in the diagnostics response.
type limitInfo struct {
	MaxRequests int   `json:"maxRequests"`
	WindowMs    int64 `json:"windowMs"`
}

// getRateLimits reports the active rate-limit profiles. Admin only: the
// numbers are configuration, not secrets, but there is no reason to hand
// abuse tooling a map of the quotas.
func (h *Handler) getRateLimits(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if !utils.GetAdminFromContext(r.Context()) {
		log.Warn().Str("func", "*Handler.getRateLimits").Msg("diagnostics access rejected: admin required")
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	profiles := map[string]*ratelimit.Limiter{
		"encryption": h.encryptionLimiter,
		"debug":      h.debugLimiter,
		"general":    h.generalLimiter,
	}

	response := make(map[string]limitInfo, len(profiles))
	for name, limiter := range profiles {
		profile := limiter.Profile()
		response[name] = limitInfo{
			MaxRequests: profile.MaxRequests,
			WindowMs:    profile.Window.Milliseconds(),
		}
	}

	_, _ = utils.WriteJSON(w, response, http.StatusOK)
}
