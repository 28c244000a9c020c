package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const testPageHTML = `<!DOCTYPE html>
<html>
<head><title>  Study   Guide  </title><script>var x = 1;</script></head>
<body>
<nav><a href="/home">navigation link</a></nav>
<header>Site Header</header>
<p>Photosynthesis converts light into chemical energy.</p>
<a href="/chapter-1">Chapter One</a>
<a href="/x">ab</a>
<img src="/diagram.png" alt="Leaf diagram">
<footer>footer junk</footer>
</body>
</html>`

func TestScrape_ExtractsContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, testPageHTML)
	}))
	defer srv.Close()

	result, err := NewScraperService().Scrape(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Scrape: %v", err)
	}

	if !result.Successful {
		t.Fatal("expected successful scrape")
	}
	if result.Title != "Study Guide" {
		t.Errorf("expected cleaned title 'Study Guide', got %q", result.Title)
	}
	if !strings.Contains(result.Text, "Photosynthesis converts light into chemical energy.") {
		t.Errorf("body text missing from result: %q", result.Text)
	}
	if strings.Contains(result.Text, "navigation link") || strings.Contains(result.Text, "footer junk") {
		t.Errorf("boilerplate elements must be removed: %q", result.Text)
	}
	if strings.Contains(result.Text, "var x") {
		t.Errorf("script content must be removed: %q", result.Text)
	}
	if result.WordCount == 0 {
		t.Error("expected nonzero word count")
	}
}

func TestScrape_LinkAndImageExtraction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, testPageHTML)
	}))
	defer srv.Close()

	result, err := NewScraperService().Scrape(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Scrape: %v", err)
	}

	// "Chapter One" qualifies; "ab" is too short; the nav link was removed.
	if len(result.Links) != 1 {
		t.Fatalf("expected 1 link, got %d: %+v", len(result.Links), result.Links)
	}
	if result.Links[0].URL != srv.URL+"/chapter-1" {
		t.Errorf("relative href must resolve against the base URL, got %q", result.Links[0].URL)
	}
	if result.Links[0].Text != "Chapter One" {
		t.Errorf("expected anchor text 'Chapter One', got %q", result.Links[0].Text)
	}

	if len(result.Images) != 1 {
		t.Fatalf("expected 1 image, got %d", len(result.Images))
	}
	if result.Images[0].URL != srv.URL+"/diagram.png" {
		t.Errorf("image src must resolve against the base URL, got %q", result.Images[0].URL)
	}
	if result.Images[0].Alt != "Leaf diagram" {
		t.Errorf("expected alt 'Leaf diagram', got %q", result.Images[0].Alt)
	}
}

func TestScrape_CapsLinksAndImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body>")
		for i := 0; i < 40; i++ {
			fmt.Fprintf(w, `<a href="/p/%d">link number %d</a>`, i, i)
		}
		for i := 0; i < 25; i++ {
			fmt.Fprintf(w, `<img src="/img/%d.png" alt="pic %d">`, i, i)
		}
		fmt.Fprint(w, "</body></html>")
	}))
	defer srv.Close()

	result, err := NewScraperService().Scrape(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Scrape: %v", err)
	}

	if len(result.Links) != maxLinks {
		t.Errorf("expected link extraction capped at %d, got %d", maxLinks, len(result.Links))
	}
	if len(result.Images) != maxImages {
		t.Errorf("expected image extraction capped at %d, got %d", maxImages, len(result.Images))
	}
}

func TestScrape_Failures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	tests := []struct {
		name string
		url  string
	}{
		{"invalid url", "not a url"},
		{"missing scheme", "example.com/page"},
		{"http error status", srv.URL + "/missing"},
	}

	svc := NewScraperService()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Scrape(context.Background(), tc.url)
			if err == nil {
				t.Fatal("expected an error")
			}
			if _, ok := err.(*AcquisitionError); !ok {
				t.Errorf("expected *AcquisitionError, got %T", err)
			}
		})
	}
}
