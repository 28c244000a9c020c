package handlers

import (
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shrusti-bit/AI-Study-Hub/internal/middleware"
	"github.com/shrusti-bit/AI-Study-Hub/internal/models"
	"github.com/shrusti-bit/AI-Study-Hub/internal/services"
	"github.com/shrusti-bit/AI-Study-Hub/internal/store"
)

type PDFHandler struct {
	sessions  *store.Sessions
	pdf       *services.PDFService
	redis     *redis.Client
	uploadDir string
	maxBytes  int64
}

func NewPDFHandler(sessions *store.Sessions, pdfService *services.PDFService, redisClient *redis.Client, uploadDir string, maxUploadMB int) *PDFHandler {
	return &PDFHandler{
		sessions:  sessions,
		pdf:       pdfService,
		redis:     redisClient,
		uploadDir: uploadDir,
		maxBytes:  int64(maxUploadMB) << 20,
	}
}

func (h *PDFHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "File too large or malformed upload", r))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "No file provided", r))
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "No file selected", r))
		return
	}
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid file type", r))
		return
	}

	filename := sanitizeFilename(header.Filename)
	path := filepath.Join(h.uploadDir, filename)

	dst, err := os.Create(path)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to store upload", r))
		return
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to store upload", r))
		return
	}
	dst.Close()

	userID := middleware.GetUserID(r.Context())

	result, err := h.pdf.Extract(path)
	if err != nil {
		log.Printf("pdf extraction failed for %s: %v", filename, err)
		result = &models.PDFResult{
			FilePath:   path,
			FileName:   filename,
			Error:      err.Error(),
			Successful: false,
			Timestamp:  time.Now(),
		}
	}

	if result.Successful {
		saveErr := h.sessions.Update(userID.String(), func(data *models.HubData) error {
			data.PDFContent[result.FilePath] = result
			return nil
		})
		if saveErr != nil {
			log.Printf("failed to persist pdf result for user %s: %v", userID, saveErr)
		}
	}

	publishUpdate(r.Context(), h.redis, userID, models.WSMessage{
		Type: "pdf_processing_update",
		Payload: models.PDFProcessingUpdate{
			Filename: filename,
			Status:   "completed",
			Result:   result,
		},
	})

	writeJSON(w, http.StatusOK, result)
}

// sanitizeFilename keeps only the base name and replaces characters
// that have no business in a stored filename.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
