package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/internal/service"
	"github.com/MKhiriev/go-blog-platform/internal/utils"
	"github.com/MKhiriev/go-blog-platform/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegistrationRequest
	if result, ok := h.decodeRequest(r, &req); !ok {
		log.Debug().Any("errors", result.ErrorsMessages).Msg("invalid user data")
		utils.WriteJSON(w, result, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.CreateConfirmedUser(r.Context(), req.Login, req.Password, req.Email)
	if err != nil {
		writeServiceError(w, r, err, "login")
		return
	}

	log.Info().Str("user_id", user.ID).Msg("user created by admin")
	utils.WriteJSON(w, models.NewUserView(user), http.StatusCreated)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID := chi.URLParam(r, "id")

	err := h.services.UserService.DeleteUser(r.Context(), userID)
	switch {
	case err == nil:
		log.Info().Str("user_id", userID).Msg("user deleted")
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, service.ErrUserNotFound):
		log.Debug().Str("user_id", userID).Msg("no user to delete")
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	default:
		log.Err(err).Str("user_id", userID).Msg("unexpected error occurred during user deletion")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
