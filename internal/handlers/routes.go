package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// conditionalHTTPLogger only logs HTTP requests when HTTP logging is enabled
func (h *Handlers) conditionalHTTPLogger(next http.Handler) http.Handler {
	logger := middleware.Logger(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.Log != nil && h.Log.IsHTTPLoggingEnabled() {
			logger.ServeHTTP(w, r)
		} else {
			next.ServeHTTP(w, r)
		}
	})
}

// Router returns a configured chi router with all routes
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.conditionalHTTPLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)
	r.Use(middleware.Timeout(60 * time.Second))

	// WebSocket
	if h.Hub != nil {
		r.Get("/ws", h.Hub.ServeWs)
	}

	// Public API
	r.Get("/api/events", h.handleGetEvents)
	r.Get("/api/competition", h.handleGetActiveCompetition)
	r.Get("/api/competitions", h.handleListCompetitions)
	r.Get("/api/competitions/{number}", h.handleGetCompetition)
	r.Get("/api/competition/events/{eventID}/scrambles", h.handleGetScrambles)
	r.Get("/api/competition/events/{eventID}/leaderboard", h.handleGetLeaderboard)
	r.Post("/api/attempts", h.handleSubmitAttempt)

	r.Get("/api/competitors", h.handleGetCompetitors)
	r.Get("/api/competitors/{id}", h.handleGetCompetitor)
	r.Get("/api/competitors/{id}/records", h.handleGetCompetitorRecords)
	r.Get("/api/competitors/{id}/records/qr", h.handleGetRecordsQR)

	// Moderator auth (public)
	r.Post("/api/moderator/login", h.handleLogin)
	r.Post("/api/moderator/logout", h.handleLogout)

	// Moderator API (protected)
	r.Group(func(r chi.Router) {
		r.Use(h.Auth.RequireAuthAPI)

		// Moderation
		r.Get("/api/moderator/pending", h.handleGetPending)
		r.Post("/api/moderator/moderate", h.handleModerate)
		r.Post("/api/moderator/close-competition", h.handleCloseCompetition)

		// Competitors
		r.Post("/api/competitors", h.handleCreateCompetitor)
		r.Put("/api/competitors/{id}", h.handleUpdateCompetitor)
		r.Delete("/api/competitors/{id}", h.handleDeleteCompetitor)
		r.Post("/api/competitors/{id}/federation-import", h.handleFederationImport)

		// Settings
		r.Get("/api/moderator/settings", h.handleGetSettings)
		r.Put("/api/moderator/settings", h.handleUpdateSettings)
	})

	return r
}
