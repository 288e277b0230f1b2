package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lankanwheels/dealership/internal/activity"
	"github.com/lankanwheels/dealership/internal/auth"
	"github.com/lankanwheels/dealership/internal/db"
	"github.com/lankanwheels/dealership/internal/middleware"
	"github.com/lankanwheels/dealership/internal/models"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	authService *auth.Service
	users       db.UserCollection
	recorder    *activity.Recorder
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService *auth.Service, users db.UserCollection, recorder *activity.Recorder) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		users:       users,
		recorder:    recorder,
	}
}

// Login handles user login. Unknown email, wrong password, and deactivated
// accounts all fail with the same generic message, and none of them leave an
// activity entry.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if loginReq.Email == "" || loginReq.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.users.FindUserByEmail(r.Context(), loginReq.Email)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !user.IsActive {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !h.authService.CheckPassword(loginReq.Password, user.PasswordHash) {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	// Best effort: a stale last_login must not fail the login.
	_ = h.users.UpdateLastLogin(r.Context(), user.ID)

	h.recorder.Record(r.Context(), user.ID, models.ActivityLogin,
		fmt.Sprintf("User %s logged in", user.Name))

	writeJSON(w, http.StatusOK, models.LoginResponse{
		Token: token,
		User:  *user,
	})
}

// Logout records the end of a session. Tokens are not revoked server-side;
// logout is an audit event.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "User context not found")
		return
	}

	h.recorder.Record(r.Context(), claims.UserID, models.ActivityLogout,
		fmt.Sprintf("User %s logged out", claims.Name))

	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}
