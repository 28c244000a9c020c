package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shrusti-bit/AI-Study-Hub/internal/middleware"
	"github.com/shrusti-bit/AI-Study-Hub/internal/models"
	"github.com/shrusti-bit/AI-Study-Hub/internal/store"
)

type GroupHandler struct {
	sessions *store.Sessions
}

func NewGroupHandler(sessions *store.Sessions) *GroupHandler {
	return &GroupHandler{sessions: sessions}
}

func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.GroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Name is required", r))
		return
	}
	if req.Members == nil {
		req.Members = []string{}
	}

	group := models.StudyGroup{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Members:     req.Members,
		CreatedAt:   time.Now(),
	}

	userID := middleware.GetUserID(r.Context())
	err := h.sessions.Update(userID.String(), func(data *models.HubData) error {
		data.StudyGroups = append(data.StudyGroups, group)
		return nil
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"group": group})
}
