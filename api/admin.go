package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"log/slog"

	"github.com/codesumanr/portfolio-api/internal/auth"
	"github.com/codesumanr/portfolio-api/internal/models"
	"github.com/codesumanr/portfolio-api/pkg/repository"
)

type AdminHandler struct {
	admins        repository.AdminRepo
	jwtSecret     string
	passwordSalt  string
	tokenDuration time.Duration
}

// NewAdminHandler creates an AdminHandler with required dependencies.
func NewAdminHandler(admins repository.AdminRepo, jwtSecret, passwordSalt string, tokenDuration time.Duration) *AdminHandler {
	return &AdminHandler{admins: admins, jwtSecret: jwtSecret, passwordSalt: passwordSalt, tokenDuration: tokenDuration}
}

type credentialsRequest struct {
	User string `json:"user"`
	Pass string `json:"pass"`
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	ctx := r.Context()

	// Absent username and wrong password are indistinguishable to the caller.
	admin, err := h.admins.GetAdmin(ctx, req.User)
	if err != nil {
		logger.Error("get admin", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "Error logging in")
		return
	}
	if admin == nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	hash, err := auth.HashPassword(req.Pass, h.passwordSalt)
	if err != nil {
		logger.Error("hash password", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "Error logging in")
		return
	}
	if hash != admin.PasswordHash {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.NewToken(req.User, h.jwtSecret, h.tokenDuration)
	if err != nil {
		logger.Error("sign token", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "Error signing token")
		return
	}

	writeJSON(w, map[string]any{"success": true, "token": token}, http.StatusOK)
}

func (h *AdminHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.User == "" || req.Pass == "" {
		writeError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	ctx := r.Context()

	existing, err := h.admins.GetAdmin(ctx, req.User)
	if err != nil {
		logger.Error("get admin", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "Error registering admin")
		return
	}
	if existing != nil {
		writeError(w, http.StatusBadRequest, "Username already exists")
		return
	}

	hash, err := auth.HashPassword(req.Pass, h.passwordSalt)
	if err != nil {
		logger.Error("hash password", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "Error registering admin")
		return
	}

	err = h.admins.CreateAdmin(ctx, &models.Admin{Username: req.User, PasswordHash: hash})
	if errors.Is(err, repository.ErrConflict) {
		// lost the race against a concurrent registration
		writeError(w, http.StatusBadRequest, "Username already exists")
		return
	}
	if err != nil {
		logger.Error("create admin", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "Error registering admin")
		return
	}

	writeJSON(w, map[string]any{"success": true, "message": "Admin registered successfully"}, http.StatusOK)
}

func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	// Tokens are stateless; logout is a client-side discard.
	writeJSON(w, map[string]any{"success": true, "message": "Logged out"}, http.StatusOK)
}
