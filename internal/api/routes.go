// Route registration and go-chi router setup.
// Public routes (/, /health, /languages, /auth/*) vs JWT-protected routes (/api/v1/*).
package api

import (
	"context"
	"database/sql"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/umaryunusa/wazobia/internal/api/handlers"
	apmiddleware "github.com/umaryunusa/wazobia/internal/api/middleware"
	"github.com/umaryunusa/wazobia/internal/domain/agent"
	domainauth "github.com/umaryunusa/wazobia/internal/domain/auth"
	"github.com/umaryunusa/wazobia/internal/domain/conversation"
	"github.com/umaryunusa/wazobia/internal/infra/config"
	"github.com/umaryunusa/wazobia/internal/infra/eventbus"
)

// NewRouter creates and configures a new chi router with all routes.
// The conversation recorder is started here: it consumes the turn events the
// chat handler publishes and persists them without blocking responses.
func NewRouter(db *sql.DB, ag *agent.Agent, bus eventbus.EventBus, cfg config.Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware (runs on all routes)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	convSvc := conversation.NewService(db)
	go conversation.NewRecorder(convSvc, bus).Run(context.Background())

	// ===== PUBLIC ROUTES (no auth required) =====

	systemHandler := handlers.NewSystemHandler(ag, cfg)
	r.Get("/", systemHandler.Root)               // GET /
	r.Get("/health", systemHandler.Health)       // GET /health
	r.Get("/languages", systemHandler.Languages) // GET /languages

	// Auth endpoints — public, no JWT required
	authHandler := handlers.NewAuthHandler(domainauth.NewAuthService(db))
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup) // POST /auth/signup
		r.Post("/login", authHandler.Login)   // POST /auth/login
	})

	// ===== PROTECTED ROUTES (JWT required via AuthMiddleware) =====

	// All /api/v1/* routes require a valid Bearer JWT token.
	// AuthMiddleware validates the token and injects UserID + Username into context.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apmiddleware.AuthMiddleware)

		chatHandler := handlers.NewChatHandler(ag, bus, cfg.MaxConcurrentChats)
		translateHandler := handlers.NewTranslateHandler(ag)
		detectHandler := handlers.NewDetectHandler()
		generateHandler := handlers.NewGenerateHandler(ag)
		statsHandler := handlers.NewStatsHandler(ag)
		conversationHandler := handlers.NewConversationHandler(convSvc)

		r.Post("/chat", chatHandler.Chat)                      // POST /api/v1/chat
		r.Post("/translate", translateHandler.Translate)       // POST /api/v1/translate
		r.Post("/detect-language", detectHandler.Detect)       // POST /api/v1/detect-language
		r.Post("/generate-content", generateHandler.Generate)  // POST /api/v1/generate-content
		r.Get("/stats", statsHandler.Stats)                    // GET /api/v1/stats
		r.Delete("/history", statsHandler.ClearHistory)        // DELETE /api/v1/history
		r.Get("/me", authHandler.Me)                           // GET /api/v1/me

		r.Route("/conversations", func(r chi.Router) {
			r.Get("/", conversationHandler.List)                  // GET /api/v1/conversations
			r.Post("/", conversationHandler.Create)               // POST /api/v1/conversations
			r.Get("/stats", conversationHandler.Stats)            // GET /api/v1/conversations/stats
			r.Get("/{id}/messages", conversationHandler.Messages) // GET /api/v1/conversations/{id}/messages
		})
	})

	return r
}
