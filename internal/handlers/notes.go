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

type NoteHandler struct {
	sessions *store.Sessions
}

func NewNoteHandler(sessions *store.Sessions) *NoteHandler {
	return &NoteHandler{sessions: sessions}
}

func (h *NoteHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Title is required", r))
		return
	}
	if req.Tags == nil {
		req.Tags = []string{}
	}

	now := time.Now()
	note := models.Note{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Content:   req.Content,
		Tags:      req.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	userID := middleware.GetUserID(r.Context())
	err := h.sessions.Update(userID.String(), func(data *models.HubData) error {
		data.Notes = append(data.Notes, note)
		return nil
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"note": note})
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "id")

	var req models.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if req.Tags == nil {
		req.Tags = []string{}
	}

	var updated *models.Note
	userID := middleware.GetUserID(r.Context())
	err := h.sessions.Update(userID.String(), func(data *models.HubData) error {
		for i := range data.Notes {
			if data.Notes[i].ID == noteID {
				data.Notes[i].Title = req.Title
				data.Notes[i].Content = req.Content
				data.Notes[i].Tags = req.Tags
				data.Notes[i].UpdatedAt = time.Now()
				updated = &data.Notes[i]
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
			"message": "Note not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "note": updated})
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "id")

	userID := middleware.GetUserID(r.Context())
	err := h.sessions.Update(userID.String(), func(data *models.HubData) error {
		kept := data.Notes[:0]
		for _, note := range data.Notes {
			if note.ID != noteID {
				kept = append(kept, note)
			}
		}
		data.Notes = kept
		return nil
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Note deleted"})
}
