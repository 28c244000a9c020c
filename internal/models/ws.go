package models

// WebSocket message types

type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// ScrapingUpdate is pushed once when a scrape request completes.
type ScrapingUpdate struct {
	URL    string        `json:"url"`
	Status string        `json:"status"`
	Result *ScrapeResult `json:"result"`
}

// PDFProcessingUpdate is pushed once when a PDF upload completes.
type PDFProcessingUpdate struct {
	Filename string     `json:"filename"`
	Status   string     `json:"status"`
	Result   *PDFResult `json:"result"`
}

// GenerationUpdate is pushed once when an AI generation completes.
type GenerationUpdate struct {
	ContentKind string `json:"content_kind"`
	Status      string `json:"status"`
}

// API Error response
type APIError struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}
