package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shrusti-bit/AI-Study-Hub/internal/middleware"
	"github.com/shrusti-bit/AI-Study-Hub/internal/models"
	"github.com/shrusti-bit/AI-Study-Hub/internal/store"
)

type EventHandler struct {
	sessions *store.Sessions
}

func NewEventHandler(sessions *store.Sessions) *EventHandler {
	return &EventHandler{sessions: sessions}
}

func (h *EventHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Title is required", r))
		return
	}
	if req.Duration <= 0 {
		req.Duration = 60
	}

	event := models.Event{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Duration:    req.Duration,
		CreatedAt:   time.Now(),
	}

	userID := middleware.GetUserID(r.Context())
	err := h.sessions.Update(userID.String(), func(data *models.HubData) error {
		data.Events = append(data.Events, event)
		return nil
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"event": event})
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")

	var req models.EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if req.Duration <= 0 {
		req.Duration = 60
	}

	var updated *models.Event
	userID := middleware.GetUserID(r.Context())
	err := h.sessions.Update(userID.String(), func(data *models.HubData) error {
		for i := range data.Events {
			if data.Events[i].ID == eventID {
				data.Events[i].Title = req.Title
				data.Events[i].Description = req.Description
				data.Events[i].Date = req.Date
				data.Events[i].Duration = req.Duration
				data.Events[i].Completed = req.Completed
				updated = &data.Events[i]
				return nil
			}
		}
		return nil
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	if updated == nil {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"success": false,
			"message": "Event not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "event": updated})
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")

	userID := middleware.GetUserID(r.Context())
	err := h.sessions.Update(userID.String(), func(data *models.HubData) error {
		kept := data.Events[:0]
		for _, event := range data.Events {
			if event.ID != eventID {
				kept = append(kept, event)
			}
		}
		data.Events = kept
		return nil
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Event deleted"})
}
