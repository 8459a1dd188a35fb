package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/erazemk/juicedepot/internal/auth"
	"github.com/erazemk/juicedepot/internal/depot"
	"github.com/erazemk/juicedepot/internal/model"
	"github.com/erazemk/juicedepot/internal/store"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	Depot     *depot.Service
	Store     *store.Store
	JWTSecret string
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string        `json:"token"`
	Session model.Session `json:"session"`
}

type signupRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	UserType        string `json:"userType"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		jsonError(w, http.StatusBadRequest, "username and password required")
		return
	}

	session, err := h.Depot.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		serviceError(w, err, "login failed")
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, session)
	if err != nil {
		slog.Error("failed to generate token", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	jsonResponse(w, http.StatusOK, loginResponse{Token: token, Session: session})
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.Depot.Signup(r.Context(), req.Username, req.Password, req.ConfirmPassword, req.UserType)
	if errors.Is(err, depot.ErrAuth) {
		jsonError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		serviceError(w, err, "failed to sign up")
		return
	}

	jsonResponse(w, http.StatusCreated, user.Session())
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	expiresAt := time.Now().Add(auth.TokenExpiry)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := h.Store.RevokeToken(r.Context(), claims.ID, expiresAt); err != nil {
		slog.Error("failed to revoke token", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to log out")
		return
	}

	slog.Info("user logged out", "user", claims.Username)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Session handles GET /api/auth/session.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	jsonResponse(w, http.StatusOK, claims.Session())
}
