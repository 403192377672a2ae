package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ramonehamilton/deckscope/internal/api/handlers"
	"github.com/ramonehamilton/deckscope/internal/api/response"
	"github.com/ramonehamilton/deckscope/internal/version"
)

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	// Health check endpoint (no versioning)
	s.router.Get("/health", s.healthCheck)

	s.router.Route("/api/v1", func(r chi.Router) {
		classifyHandler := handlers.NewClassifyHandler(s.provider, s.logger)
		r.Post("/classify", classifyHandler.Classify)
		r.Post("/classify/batch", classifyHandler.ClassifyBatch)
		r.Get("/formats", classifyHandler.GetFormats)
		r.Get("/archetypes", classifyHandler.GetArchetypes)

		catalogHandler := handlers.NewCatalogHandler(s.provider, s.logger)
		r.Post("/catalog/refresh", catalogHandler.Refresh)
	})
}

// healthCheck reports service liveness.
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.GetVersion(),
	})
}
