package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shrusti-bit/AI-Study-Hub/internal/middleware"
	"github.com/shrusti-bit/AI-Study-Hub/internal/models"
	"github.com/shrusti-bit/AI-Study-Hub/internal/services"
	"github.com/shrusti-bit/AI-Study-Hub/internal/store"
)

type ScrapeHandler struct {
	sessions *store.Sessions
	scraper  *services.ScraperService
	redis    *redis.Client
}

func NewScrapeHandler(sessions *store.Sessions, scraper *services.ScraperService, redisClient *redis.Client) *ScrapeHandler {
	return &ScrapeHandler{sessions: sessions, scraper: scraper, redis: redisClient}
}

func (h *ScrapeHandler) Scrape(w http.ResponseWriter, r *http.Request) {
	var req models.ScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.URL) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "URL is required", r))
		return
	}

	userID := middleware.GetUserID(r.Context())

	result, err := h.scraper.Scrape(r.Context(), req.URL)
	if err != nil {
		// Acquisition failures are reported in-band, never as a crash.
		log.Printf("scrape failed for %s: %v", req.URL, err)
		result = &models.ScrapeResult{
			URL:        req.URL,
			Error:      err.Error(),
			Successful: false,
			Timestamp:  time.Now(),
		}
	}

	if result.Successful {
		saveErr := h.sessions.Update(userID.String(), func(data *models.HubData) error {
			data.ScrapedContent[result.URL] = result
			return nil
		})
		if saveErr != nil {
			log.Printf("failed to persist scrape result for user %s: %v", userID, saveErr)
		}
	}

	publishUpdate(r.Context(), h.redis, userID, models.WSMessage{
		Type: "scraping_update",
		Payload: models.ScrapingUpdate{
			URL:    req.URL,
			Status: "completed",
			Result: result,
		},
	})

	writeJSON(w, http.StatusOK, result)
}
