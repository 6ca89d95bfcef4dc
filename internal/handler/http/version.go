package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-platform/internal/utils"
	"github.com/MKhiriev/go-blog-platform/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	build := h.services.AppInfoService.GetBuildInfo(ctx)

	utils.WriteJSON(w, models.VersionResponse{
		Version:     h.services.AppInfoService.GetAppVersion(ctx),
		BuildDate:   build.BuildDate(),
		BuildCommit: build.BuildCommit(),
	}, http.StatusOK)
}
