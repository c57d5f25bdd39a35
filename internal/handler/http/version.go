package http

import (
	"net/http"

	"github.com/MKhiriev/flux-signup/internal/utils"
)

// getServerVersion handles GET /api/version.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	_, _ = utils.WriteText(w, serverVersion, http.StatusOK)
}
