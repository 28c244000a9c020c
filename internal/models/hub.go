package models

import "time"

// Note is a user-authored study note.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Event is a scheduled study event.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Duration    int       `json:"duration"` // minutes
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// StudyGroup is a named group of collaborators.
type StudyGroup struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Members     []string  `json:"members"`
	CreatedAt   time.Time `json:"created_at"`
}

// ChatEntry records one exchange with the AI companion.
type ChatEntry struct {
	User      string    `json:"user"`
	AI        string    `json:"ai"`
	Timestamp time.Time `json:"timestamp"`
}

// HubData is the whole per-user state, persisted as a single JSON
// document keyed by the opaque session id.
type HubData struct {
	UserID         string                   `json:"user_id"`
	APIKey         string                   `json:"api_key,omitempty"`
	Provider       string                   `json:"provider,omitempty"`
	Notes          []Note                   `json:"notes"`
	Events         []Event                  `json:"events"`
	StudyGroups    []StudyGroup             `json:"study_groups"`
	ScrapedContent map[string]*ScrapeResult `json:"scraped_content"`
	PDFContent     map[string]*PDFResult    `json:"pdf_content"`
	ChatHistory    []ChatEntry              `json:"chat_history"`
	LastUpdated    time.Time                `json:"last_updated"`
}

// NewHubData returns an empty hub for a user, with all collections
// initialized so JSON output never contains nulls.
func NewHubData(userID string) *HubData {
	return &HubData{
		UserID:         userID,
		Notes:          []Note{},
		Events:         []Event{},
		StudyGroups:    []StudyGroup{},
		ScrapedContent: make(map[string]*ScrapeResult),
		PDFContent:     make(map[string]*PDFResult),
		ChatHistory:    []ChatEntry{},
	}
}
