package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/shrusti-bit/AI-Study-Hub/internal/handlers"
	"github.com/shrusti-bit/AI-Study-Hub/internal/middleware"
	"github.com/shrusti-bit/AI-Study-Hub/internal/websocket"
)

func New(
	sessionAuth *middleware.SessionAuth,
	authHandler *handlers.AuthHandler,
	scrapeHandler *handlers.ScrapeHandler,
	pdfHandler *handlers.PDFHandler,
	generateHandler *handlers.GenerateHandler,
	chatHandler *handlers.ChatHandler,
	noteHandler *handlers.NoteHandler,
	eventHandler *handlers.EventHandler,
	groupHandler *handlers.GroupHandler,
	dataHandler *handlers.DataHandler,
	wsHub *websocket.Hub,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Login rate limiter (10 req/min per IP)
	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// WebSocket authenticates via its own token query param, so it
		// stays outside the cookie session middleware.
		r.Get("/ws", wsHub.HandleWebSocket)

		r.Group(func(r chi.Router) {
			r.Use(sessionAuth.Middleware)

			// ──── Provider Login ────
			r.Group(func(r chi.Router) {
				r.Use(authLimiter.Middleware)
				r.Post("/auth/login", authHandler.Login)
			})

			// ──── Content Acquisition ────
			r.Post("/scrape", scrapeHandler.Scrape)
			r.Post("/upload_pdf", pdfHandler.Upload)

			// ──── AI Generation ────
			r.Post("/generate_summary", generateHandler.Summary)
			r.Post("/generate_mcq", generateHandler.MCQ)
			r.Post("/generate_flashcards", generateHandler.Flashcards)
			r.Post("/chat", chatHandler.Ask)

			// ──── Notes ────
			r.Post("/notes", noteHandler.Add)
			r.Put("/notes/{id}", noteHandler.Update)
			r.Delete("/notes/{id}", noteHandler.Delete)

			// ──── Events ────
			r.Post("/events", eventHandler.Add)
			r.Put("/events/{id}", eventHandler.Update)
			r.Delete("/events/{id}", eventHandler.Delete)

			// ──── Study Groups ────
			r.Post("/groups", groupHandler.Create)

			// ──── Full Hub Dump ────
			r.Get("/data", dataHandler.Get)
		})
	})

	return r
}
