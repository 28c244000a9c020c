package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shrusti-bit/AI-Study-Hub/internal/middleware"
	"github.com/shrusti-bit/AI-Study-Hub/internal/models"
	"github.com/shrusti-bit/AI-Study-Hub/internal/services"
	"github.com/shrusti-bit/AI-Study-Hub/internal/store"
)

// AuthHandler stores AI provider credentials against the anonymous
// session. There are no password accounts.
type AuthHandler struct {
	sessions *store.Sessions
	ai       *services.AIService
}

func NewAuthHandler(sessions *store.Sessions, ai *services.AIService) *AuthHandler {
	return &AuthHandler{sessions: sessions, ai: ai}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.APIKey) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "API key is required", r))
		return
	}
	if req.Provider == "" {
		req.Provider = "gemini"
	}

	if err := h.ai.ValidateCredentials(req.APIKey, req.Provider); err != nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"message": "Invalid API key or provider",
		})
		return
	}

	userID := middleware.GetUserID(r.Context())
	err := h.sessions.Update(userID.String(), func(data *models.HubData) error {
		data.APIKey = req.APIKey
		data.Provider = strings.ToLower(req.Provider)
		return nil
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Login successful!",
	})
}
