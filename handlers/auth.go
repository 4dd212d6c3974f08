package handlers

import (
	"log/slog"
	"net/http"

	"timesheet/service"
)

type AuthHandler struct {
	auth *service.AuthService
	log  *slog.Logger
}

func NewAuthHandler(auth *service.AuthService, log *slog.Logger) *AuthHandler {
	return &AuthHandler{
		auth: auth,
		log:  log,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, r, h.log, err)
		return
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeAppError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"access_token": token})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, r, h.log, err)
		return
	}

	user, err := h.auth.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		writeAppError(w, r, h.log, err)
		return
	}

	h.log.InfoContext(r.Context(), "user registered", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, user)
}
