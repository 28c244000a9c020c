package handlers

import (
	"net/http"

	"github.com/shrusti-bit/AI-Study-Hub/internal/middleware"
	"github.com/shrusti-bit/AI-Study-Hub/internal/models"
	"github.com/shrusti-bit/AI-Study-Hub/internal/store"
)

type DataHandler struct {
	sessions *store.Sessions
}

func NewDataHandler(sessions *store.Sessions) *DataHandler {
	return &DataHandler{sessions: sessions}
}

// Get returns the caller's whole hub. The stored API key stays
// server-side.
func (h *DataHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var resp map[string]interface{}
	err := h.sessions.View(userID.String(), func(data *models.HubData) error {
		resp = map[string]interface{}{
			"notes":           data.Notes,
			"events":          data.Events,
			"study_groups":    data.StudyGroups,
			"scraped_content": data.ScrapedContent,
			"pdf_content":     data.PDFContent,
			"chat_history":    data.ChatHistory,
		}
		return nil
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
