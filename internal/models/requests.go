package models

// Request payloads for the HTTP API.

type LoginRequest struct {
	APIKey   string `json:"api_key"`
	Provider string `json:"provider"`
}

type ScrapeRequest struct {
	URL string `json:"url"`
}

type GenerateSummaryRequest struct {
	Content     string `json:"content"`
	ContentType string `json:"content_type"`
}

type GenerateMCQRequest struct {
	Content      string `json:"content"`
	NumQuestions int    `json:"num_questions"`
}

type GenerateFlashcardsRequest struct {
	Content string `json:"content"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type NoteRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

type EventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	Completed   bool   `json:"completed"`
}

type GroupRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
}
