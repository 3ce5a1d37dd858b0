package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"wordquest/internal/models"
	"wordquest/internal/security"
	"wordquest/internal/service"
)

const oauthStateMaxAge = 10 * time.Minute

// AuthHandler handles registration, login and Google sign-in
type AuthHandler struct {
	auth        *service.AuthService
	oauthConfig *oauth2.Config
	state       *security.StateSigner
}

// NewAuthHandler creates a new auth handler. Google sign-in is enabled
// only when a client ID is configured.
func NewAuthHandler(auth *service.AuthService, state *security.StateSigner, clientID, clientSecret, redirectBaseURL string) *AuthHandler {
	h := &AuthHandler{auth: auth, state: state}
	if clientID != "" {
		h.oauthConfig = &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectBaseURL + "/api/auth/google/callback",
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		}
	}
	return h
}

type userResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email,omitempty"`
	Role        string `json:"role"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Role:        string(u.Role),
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username    string `json:"username"`
		Password    string `json:"password"`
		DisplayName string `json:"displayName"`
		Email       string `json:"email"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	user, token, err := h.auth.Register(req.Username, req.Password, req.DisplayName, req.Email)
	switch {
	case errors.Is(err, service.ErrInvalidUsername),
		errors.Is(err, service.ErrWeakPassword):
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	case errors.Is(err, service.ErrUsernameTaken):
		respondError(w, http.StatusConflict, err.Error(), nil)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "Failed to register", err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"user":  toUserResponse(user),
		"token": token,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	user, token, err := h.auth.Login(req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		respondError(w, http.StatusUnauthorized, "Invalid username or password", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to log in", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"user":  toUserResponse(user),
		"token": token,
	})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, progress, err := h.auth.Profile(UserID(r))
	if errors.Is(err, service.ErrInvalidCredentials) {
		respondError(w, http.StatusNotFound, "User not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load profile", err)
		return
	}

	resp := map[string]interface{}{"user": toUserResponse(user)}
	if progress != nil {
		resp["progress"] = map[string]interface{}{
			"totalCoins":    progress.TotalCoins,
			"totalStars":    progress.TotalStars,
			"currentTitle":  progress.CurrentTitle,
			"wordsMastered": progress.WordsMastered,
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

// StartGoogleOAuth handles GET /api/auth/google/start
func (h *AuthHandler) StartGoogleOAuth(w http.ResponseWriter, r *http.Request) {
	if h.oauthConfig == nil {
		respondError(w, http.StatusNotFound, "Google sign-in is not configured", nil)
		return
	}

	state, err := h.state.Sign()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to start sign-in", err)
		return
	}
	http.Redirect(w, r, h.oauthConfig.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// GoogleOAuthCallback handles GET /api/auth/google/callback
func (h *AuthHandler) GoogleOAuthCallback(w http.ResponseWriter, r *http.Request) {
	if h.oauthConfig == nil {
		respondError(w, http.StatusNotFound, "Google sign-in is not configured", nil)
		return
	}

	if !h.state.Verify(r.URL.Query().Get("state"), oauthStateMaxAge) {
		respondError(w, http.StatusBadRequest, "Invalid sign-in state", nil)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		respondError(w, http.StatusBadRequest, "Missing authorization code", nil)
		return
	}

	oauthToken, err := h.oauthConfig.Exchange(r.Context(), code)
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to exchange authorization code", err)
		return
	}

	email, name, err := h.fetchGoogleProfile(r, oauthToken)
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to load Google profile", err)
		return
	}

	user, token, err := h.auth.LoginWithGoogle(email, name)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to sign in", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"user":  toUserResponse(user),
		"token": token,
	})
}

func (h *AuthHandler) fetchGoogleProfile(r *http.Request, token *oauth2.Token) (email, name string, err error) {
	client := h.oauthConfig.Client(r.Context(), token)
	resp, err := client.Get("https://openidconnect.googleapis.com/v1/userinfo")
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", "", fmt.Errorf("userinfo returned %d: %s", resp.StatusCode, body)
	}

	var info struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", "", err
	}
	return info.Email, info.Name, nil
}
