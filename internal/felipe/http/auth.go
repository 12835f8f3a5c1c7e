package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/wramaba/felipe/internal/felipe/service"
	"github.com/wramaba/felipe/pkg/httpx"
	"github.com/wramaba/felipe/pkg/slogx"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleRegister handles POST /auth/register
//
//	@Summary		Register a new user
//	@Description	Creates a user account and returns a bearer token for it.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"Registration payload"
//	@Success		200		{object}	AuthResponse	"access_token, token_type, user"
//	@Failure		400		{object}	httpx.ErrorResponse	"detail"
//	@Failure		500		{object}	httpx.ErrorResponse	"detail"
//	@Router			/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, token, err := h.AuthService.Register(ctx, service.RegisterParams{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Position: req.Position,
		Fiscalia: req.Fiscalia,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			httpx.WriteError(w, http.StatusBadRequest, "email already registered")
			return
		}
		log.Error("register failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        profileOf(user),
	})
}

// HandleLogin handles POST /auth/login
//
//	@Summary		Log in
//	@Description	Verifies credentials and returns a bearer token. Bad credentials and inactive accounts both yield 401.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Login payload"
//	@Success		200		{object}	AuthResponse	"access_token, token_type, user"
//	@Failure		401		{object}	httpx.ErrorResponse	"detail"
//	@Failure		500		{object}	httpx.ErrorResponse	"detail"
//	@Router			/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}

	user, token, err := h.AuthService.Login(ctx, strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteError(w, http.StatusUnauthorized, "invalid credentials")
		case errors.Is(err, service.ErrInactiveUser):
			httpx.WriteError(w, http.StatusUnauthorized, "inactive user")
		default:
			log.Error("login failed", "error", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to log in")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        profileOf(user),
	})
}
