// File: internal/handlers/auth_handlers.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/abudi-09/Chat-App/internal/auth"
	"github.com/abudi-09/Chat-App/internal/dtos"
	"github.com/abudi-09/Chat-App/internal/middleware"
	"github.com/abudi-09/Chat-App/internal/services/user_services"
)

const authCookieName = "jwt"

// AuthHandler exposes signup, login, logout, session check, and profile
// updates. Sessions ride in an HttpOnly cookie, not a bearer header.
type AuthHandler struct {
	authService   *user_services.AuthService
	userService   *user_services.UserService
	secureCookies bool
}

func NewAuthHandler(authService *user_services.AuthService, userService *user_services.UserService, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		userService:   userService,
		secureCookies: secureCookies,
	}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dtos.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, token, err := h.authService.Signup(r.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user_services.ErrEmailTaken) {
			writeError(w, http.StatusBadRequest, "Email already exists")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.setAuthCookie(w, token)
	writeJSON(w, http.StatusCreated, dtos.NewUserResponse(u))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user_services.ErrInvalidCredentials) {
			writeError(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.setAuthCookie(w, token)
	writeJSON(w, http.StatusOK, dtos.NewUserResponse(u))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// CheckAuth returns the authenticated user, letting the client restore a
// session from the cookie on page load.
func (h *AuthHandler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	u, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, dtos.NewUserResponse(u))
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dtos.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProfilePic == "" {
		writeError(w, http.StatusBadRequest, "Profile pic is required")
		return
	}

	u, err := h.userService.UpdateProfilePicture(r.Context(), userID, req.ProfilePic)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	writeJSON(w, http.StatusOK, dtos.NewUserResponse(u))
}

func (h *AuthHandler) setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
