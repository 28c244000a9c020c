package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/shrusti-bit/AI-Study-Hub/internal/middleware"
	"github.com/shrusti-bit/AI-Study-Hub/internal/models"
	"github.com/shrusti-bit/AI-Study-Hub/internal/services"
	"github.com/shrusti-bit/AI-Study-Hub/internal/store"
)

// GenerateHandler runs the AI summary/MCQ/flashcard flows with the
// caller's stored provider credentials.
type GenerateHandler struct {
	sessions *store.Sessions
	ai       *services.AIService
	redis    *redis.Client
}

func NewGenerateHandler(sessions *store.Sessions, ai *services.AIService, redisClient *redis.Client) *GenerateHandler {
	return &GenerateHandler{sessions: sessions, ai: ai, redis: redisClient}
}

// providerFor loads the caller's stored credentials and builds the
// generation backend.
func (h *GenerateHandler) providerFor(r *http.Request) (services.Provider, error) {
	userID := middleware.GetUserID(r.Context())

	var apiKey, providerName string
	err := h.sessions.View(userID.String(), func(data *models.HubData) error {
		apiKey = data.APIKey
		providerName = data.Provider
		return nil
	})
	if err != nil {
		return nil, err
	}

	return h.ai.ProviderFor(apiKey, providerName)
}

func (h *GenerateHandler) Summary(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Content is required", r))
		return
	}
	if req.ContentType == "" {
		req.ContentType = "general"
	}

	provider, err := h.providerFor(r)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	summary, err := h.ai.GenerateSummary(r.Context(), provider, req.Content, req.ContentType)
	if err != nil {
		// Provider failures surface as a user-visible string, not a crash.
		log.Printf("summary generation failed: %v", err)
		summary = "❌ Error generating summary: " + err.Error()
	}

	h.notifyDone(r, "summary", generationStatus(err))
	writeJSON(w, http.StatusOK, map[string]string{"summary": summary})
}

func (h *GenerateHandler) MCQ(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateMCQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Content is required", r))
		return
	}

	provider, err := h.providerFor(r)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	mcq, err := h.ai.GenerateMCQ(r.Context(), provider, req.Content, req.NumQuestions)
	if err != nil {
		log.Printf("mcq generation failed: %v", err)
		mcq = "❌ Error generating MCQ: " + err.Error()
	}

	h.notifyDone(r, "mcq", generationStatus(err))
	writeJSON(w, http.StatusOK, map[string]string{"mcq": mcq})
}

func (h *GenerateHandler) Flashcards(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateFlashcardsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Content is required", r))
		return
	}

	provider, err := h.providerFor(r)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	flashcards, err := h.ai.GenerateFlashcards(r.Context(), provider, req.Content)
	if err != nil {
		log.Printf("flashcard generation failed: %v", err)
		flashcards = "❌ Error generating flashcards: " + err.Error()
	}

	h.notifyDone(r, "flashcards", generationStatus(err))
	writeJSON(w, http.StatusOK, map[string]string{"flashcards": flashcards})
}

// generationStatus maps the provider call result to the event status
// so subscribers can tell a real completion from an in-band failure.
func generationStatus(err error) string {
	if err != nil {
		return "failed"
	}
	return "completed"
}

func (h *GenerateHandler) notifyDone(r *http.Request, kind, status string) {
	publishUpdate(r.Context(), h.redis, middleware.GetUserID(r.Context()), models.WSMessage{
		Type: "generation_update",
		Payload: models.GenerationUpdate{
			ContentKind: kind,
			Status:      status,
		},
	})
}
