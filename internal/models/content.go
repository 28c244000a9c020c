package models

import "time"

// PageLink is a hyperlink found on a scraped page.
type PageLink struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// PageImage is an image reference found on a scraped page.
type PageImage struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// ScrapeResult is the outcome of fetching and parsing one web page.
// On failure only URL, Error, Successful and Timestamp are set.
type ScrapeResult struct {
	URL        string      `json:"url"`
	Title      string      `json:"title,omitempty"`
	Text       string      `json:"text,omitempty"`
	Links      []PageLink  `json:"links,omitempty"`
	Images     []PageImage `json:"images,omitempty"`
	WordCount  int         `json:"word_count"`
	Successful bool        `json:"scraping_successful"`
	Error      string      `json:"error,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
}

// PDFPage is the extracted text of a single PDF page.
type PDFPage struct {
	PageNumber int    `json:"page_number"`
	Text       string `json:"text"`
	WordCount  int    `json:"word_count"`
}

// PDFResult is the outcome of extracting text from an uploaded PDF.
type PDFResult struct {
	FilePath   string    `json:"file_path"`
	FileName   string    `json:"file_name,omitempty"`
	TotalPages int       `json:"total_pages"`
	Text       string    `json:"text_content,omitempty"`
	Pages      []PDFPage `json:"pages,omitempty"`
	WordCount  int       `json:"word_count"`
	Successful bool      `json:"processing_successful"`
	Error      string    `json:"error,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
