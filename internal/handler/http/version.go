package http

import (
	"net/http"

	"github.com/MKhiriev/bloglist/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, h.services.AppInfoService.GetAppVersion(r.Context()), http.StatusOK)
}
