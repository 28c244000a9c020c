package services

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/shrusti-bit/AI-Study-Hub/internal/format"
	"github.com/shrusti-bit/AI-Study-Hub/internal/models"
)

// PDFService extracts per-page text from uploaded PDF files.
type PDFService struct{}

func NewPDFService() *PDFService {
	return &PDFService{}
}

// Extract reads every page of the PDF at path. Pages that fail to
// decode are skipped; the whole call fails only when the file cannot
// be opened or yields no text at all.
func (s *PDFService) Extract(path string) (*models.PDFResult, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, &AcquisitionError{Source: path, Message: err.Error()}
	}
	defer f.Close()

	var full strings.Builder
	var pages []models.PDFPage
	totalPages := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPages; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		cleaned := format.Clean(content)
		if cleaned == "" {
			continue
		}

		pages = append(pages, models.PDFPage{
			PageNumber: pageIndex,
			Text:       cleaned,
			WordCount:  len(strings.Fields(cleaned)),
		})
		full.WriteString(cleaned)
		full.WriteString("\n\n")
	}

	text := strings.TrimSpace(full.String())
	if text == "" {
		return nil, &AcquisitionError{Source: path, Message: "no extractable text found in pdf"}
	}

	return &models.PDFResult{
		FilePath:   path,
		FileName:   filepath.Base(path),
		TotalPages: totalPages,
		Text:       text,
		Pages:      pages,
		WordCount:  len(strings.Fields(text)),
		Successful: true,
		Timestamp:  time.Now(),
	}, nil
}
