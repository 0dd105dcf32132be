package http

import (
	"net/http"

	"github.com/MKhiriev/bloglist/internal/logger"
	"github.com/MKhiriev/bloglist/internal/utils"
	"github.com/MKhiriev/bloglist/models"
)

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	var request models.RegisterUserRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.RegisterUser(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

// login checks the credentials and answers with a fresh bearer token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.LoginRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", user.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.LoginResponse{
		Token:    token.SignedString,
		Username: user.Username,
		Name:     user.Name,
	}, http.StatusOK)
}
