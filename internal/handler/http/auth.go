package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/internal/utils"
	"github.com/MKhiriev/go-blog-platform/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegistrationRequest
	if result, ok := h.decodeRequest(r, &req); !ok {
		log.Debug().Any("errors", result.ErrorsMessages).Msg("invalid registration data")
		utils.WriteJSON(w, result, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Register(ctx, req.Login, req.Password, req.Email)
	if err != nil {
		writeServiceError(w, r, err, "login")
		return
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) confirmRegistration(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ConfirmationRequest
	if result, ok := h.decodeRequest(r, &req); !ok {
		log.Debug().Any("errors", result.ErrorsMessages).Msg("invalid confirmation data")
		utils.WriteJSON(w, result, http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ConfirmRegistration(r.Context(), req.Code); err != nil {
		writeServiceError(w, r, err, "code")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) resendConfirmation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.EmailResendingRequest
	if result, ok := h.decodeRequest(r, &req); !ok {
		log.Debug().Any("errors", result.ErrorsMessages).Msg("invalid email resending data")
		utils.WriteJSON(w, result, http.StatusBadRequest)
		return
	}

	if _, err := h.services.AuthService.ResendConfirmation(r.Context(), req.Email); err != nil {
		writeServiceError(w, r, err, "email")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if result, ok := h.decodeRequest(r, &req); !ok {
		log.Debug().Any("errors", result.ErrorsMessages).Msg("invalid login data")
		utils.WriteJSON(w, result, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), req.LoginOrEmail, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "loginOrEmail")
		return
	}

	log.Debug().Str("user_id", token.Identity.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.LoginResponse{AccessToken: token.SignedString}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no identity in authorized request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, identity, http.StatusOK)
}
