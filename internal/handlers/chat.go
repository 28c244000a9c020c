package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/shrusti-bit/AI-Study-Hub/internal/middleware"
	"github.com/shrusti-bit/AI-Study-Hub/internal/models"
	"github.com/shrusti-bit/AI-Study-Hub/internal/services"
	"github.com/shrusti-bit/AI-Study-Hub/internal/store"
)

type ChatHandler struct {
	sessions *store.Sessions
	ai       *services.AIService
}

func NewChatHandler(sessions *store.Sessions, ai *services.AIService) *ChatHandler {
	return &ChatHandler{sessions: sessions, ai: ai}
}

func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Message is required", r))
		return
	}

	userID := middleware.GetUserID(r.Context())

	var apiKey, providerName string
	if err := h.sessions.View(userID.String(), func(data *models.HubData) error {
		apiKey = data.APIKey
		providerName = data.Provider
		return nil
	}); err != nil {
		handleServiceError(w, r, err)
		return
	}

	provider, err := h.ai.ProviderFor(apiKey, providerName)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	reply, err := h.ai.Chat(r.Context(), provider, req.Message)
	if err != nil {
		log.Printf("chat failed: %v", err)
		writeJSON(w, http.StatusOK, map[string]string{"response": "❌ Error: " + err.Error()})
		return
	}

	// Successful exchanges join the persisted chat history.
	saveErr := h.sessions.Update(userID.String(), func(data *models.HubData) error {
		data.ChatHistory = append(data.ChatHistory, models.ChatEntry{
			User:      req.Message,
			AI:        reply,
			Timestamp: time.Now(),
		})
		return nil
	})
	if saveErr != nil {
		log.Printf("failed to persist chat history for user %s: %v", userID, saveErr)
	}

	writeJSON(w, http.StatusOK, map[string]string{"response": reply})
}
