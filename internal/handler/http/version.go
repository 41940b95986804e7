package http

import (
	"net/http"
)

// buildVersion is stamped at build time via
// -ldflags "-X .../internal/handler/http.buildVersion=v1.2.3".
var buildVersion = "N/A"

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(buildVersion))
}
