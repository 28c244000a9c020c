package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/shrusti-bit/AI-Study-Hub/internal/format"
	"github.com/shrusti-bit/AI-Study-Hub/internal/models"
)

const (
	scrapeTimeout   = 15 * time.Second
	scrapeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	maxLinks        = 20
	maxImages       = 10
)

// ScraperService fetches a web page and extracts its title, text,
// links and images.
type ScraperService struct {
	client *http.Client
}

func NewScraperService() *ScraperService {
	return &ScraperService{
		client: &http.Client{Timeout: scrapeTimeout},
	}
}

// Scrape fetches rawURL and returns the extracted content. Failures
// come back as an *AcquisitionError carrying the URL; the caller is
// responsible for building the failure object.
func (s *ScraperService) Scrape(ctx context.Context, rawURL string) (*models.ScrapeResult, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &AcquisitionError{Source: rawURL, Message: "invalid URL"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &AcquisitionError{Source: rawURL, Message: err.Error()}
	}
	req.Header.Set("User-Agent", scrapeUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &AcquisitionError{Source: rawURL, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &AcquisitionError{Source: rawURL, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &AcquisitionError{Source: rawURL, Message: "failed to parse HTML: " + err.Error()}
	}

	return extractPage(doc, parsed), nil
}

func extractPage(doc *goquery.Document, base *url.URL) *models.ScrapeResult {
	// Boilerplate elements contribute noise, not content.
	doc.Find("script, style, nav, footer, header").Remove()

	title := "No Title"
	if t := doc.Find("title").First(); t.Length() > 0 {
		title = t.Text()
	}

	text := format.Clean(doc.Find("body").Text())
	if text == "" {
		text = format.Clean(doc.Text())
	}

	var links []models.PageLink
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		anchor := strings.TrimSpace(sel.Text())
		if href == "" || len(anchor) <= 3 {
			return true
		}
		abs := resolveURL(base, href)
		if abs == "" {
			return true
		}
		links = append(links, models.PageLink{URL: abs, Text: format.Clean(anchor)})
		return len(links) < maxLinks
	})

	var images []models.PageImage
	doc.Find("img[src]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		src, _ := sel.Attr("src")
		if src == "" {
			return true
		}
		abs := resolveURL(base, src)
		if abs == "" {
			return true
		}
		alt, _ := sel.Attr("alt")
		images = append(images, models.PageImage{URL: abs, Alt: format.Clean(alt)})
		return len(images) < maxImages
	})

	return &models.ScrapeResult{
		URL:        base.String(),
		Title:      format.Clean(title),
		Text:       text,
		Links:      links,
		Images:     images,
		WordCount:  len(strings.Fields(text)),
		Successful: true,
		Timestamp:  time.Now(),
	}
}

func resolveURL(base *url.URL, ref string) string {
	parsed, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return base.ResolveReference(parsed).String()
}
