package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-bundle-composer/internal/logger"
	"github.com/MKhiriev/go-bundle-composer/internal/utils"
)

type buildInfoResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// getServerVersion answers with the bare version string, or with the full
// build info when the client accepts JSON.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		info := h.services.AppInfoService.GetBuildInfo(ctx)
		_, err := utils.WriteJSON(w, buildInfoResponse{
			Version: info.BuildVersion(),
			Date:    info.BuildDate(),
			Commit:  info.BuildCommit(),
		}, http.StatusOK)
		if err != nil {
			logger.FromRequest(r).Err(err).Msg("failed to write build info")
		}
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(h.services.AppInfoService.GetAppVersion(ctx)))
}
