package handler

import (
	"net/http"

	"github.com/osse101/InventoryHub_Go/internal/auth"
	"github.com/osse101/InventoryHub_Go/internal/user"
)

// RegisterRequest is the body of POST /auth/register
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Name     string `json:"name" validate:"required,notblank,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler serves registration, login and the caller's profile
type AuthHandler struct {
	users user.Service
}

// NewAuthHandler creates an AuthHandler
func NewAuthHandler(users user.Service) *AuthHandler {
	return &AuthHandler{users: users}
}

// HandleRegister creates an account
// @Summary Register
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} Response{data=domain.User}
// @Failure 400 {object} Response
// @Failure 400 {object} Response "Email already registered"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register"); err != nil {
		return
	}

	u, err := h.users.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		respondServiceError(w, r, "Register", err)
		return
	}
	respondData(w, http.StatusCreated, u)
}

// HandleLogin exchanges credentials for a bearer token
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} Response{data=user.Session}
// @Failure 401 {object} Response
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
		return
	}

	session, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, r, "Login", err)
		return
	}
	respondData(w, http.StatusOK, session)
}

// HandleLogout revokes the token the request was made with
// @Summary Logout
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} Response
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Logout(r.Context(), auth.IdentityFromContext(r.Context())); err != nil {
		respondServiceError(w, r, "Logout", err)
		return
	}
	respondMessage(w, http.StatusOK, MsgLoggedOut)
}

// HandleMe returns the caller's profile
// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} Response{data=domain.User}
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.GetUser(r.Context(), callerID(r))
	if err != nil {
		respondServiceError(w, r, "Get current user", err)
		return
	}
	respondData(w, http.StatusOK, u)
}

// HandleSearchUsers finds users by email or name prefix, for the share dialog
// @Summary Search users
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param q query string true "Email or name prefix"
// @Success 200 {object} Response{data=[]domain.UserSummary}
// @Router /api/v1/users/search [get]
func (h *AuthHandler) HandleSearchUsers(w http.ResponseWriter, r *http.Request) {
	q, ok := GetQueryParam(r, w, "q")
	if !ok {
		return
	}
	users, err := h.users.SearchUsers(r.Context(), q)
	if err != nil {
		respondServiceError(w, r, "Search users", err)
		return
	}
	respondData(w, http.StatusOK, users)
}
