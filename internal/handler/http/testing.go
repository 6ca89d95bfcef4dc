package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/internal/service"
	"github.com/MKhiriev/go-blog-platform/internal/utils"
	"github.com/MKhiriev/go-blog-platform/models"
)

// Handlers below are mounted only when testing endpoints are enabled.

func (h *Handler) deleteAllData(w http.ResponseWriter, r *http.Request) {
	if err := h.services.UserService.ResetAll(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("error wiping data")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) lastConfirmationCode(w http.ResponseWriter, r *http.Request) {
	code, err := h.services.UserService.LatestConfirmationCode(r.Context())
	if err != nil && !errors.Is(err, service.ErrUserNotFound) {
		logger.FromRequest(r).Err(err).Msg("error reading latest confirmation code")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ConfirmationCodeResponse{Code: code}, http.StatusOK)
}
