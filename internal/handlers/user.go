package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"MovieBase/internal/service"

	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию, вход и смену пароля.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
}

// NewUserHandler создаёт хендлер пользователей
func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Register создаёт пользователя и сразу возвращает access-токен.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "username, email and password are required")
		return
	}

	accessToken, err := h.UserService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeError(w, http.StatusConflict, "already_exists", "user already exists")
			return
		}
		h.Logger.Errorw("Register: service error", "email", req.Email, "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: accessToken})
}

// Login проверяет пароль и возвращает access-токен.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request")
		return
	}

	accessToken, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "not_found", "user not found")
		case errors.Is(err, service.ErrInvalidPassword):
			writeError(w, http.StatusUnauthorized, "invalid_credential", "invalid password")
		default:
			h.Logger.Errorw("Login: service error", "email", req.Email, "error", err)
			writeError(w, http.StatusInternalServerError, "internal", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: accessToken})
}

// ChangePassword сверяет текущий пароль и перезаписывает дайджест.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("ChangePassword: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request")
		return
	}

	err := h.UserService.ChangePassword(r.Context(), req.Email, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "not_found", "user not found")
		case errors.Is(err, service.ErrInvalidPassword):
			writeError(w, http.StatusUnauthorized, "invalid_credential", "invalid current password")
		default:
			h.Logger.Errorw("ChangePassword: service error", "email", req.Email, "error", err)
			writeError(w, http.StatusInternalServerError, "internal", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"result": "password changed"})
}

// List отдаёт всех пользователей. Дайджест наружу не сериализуется.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListUsers(r.Context())
	if err != nil {
		h.Logger.Errorw("ListUsers: service error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, users)
}
