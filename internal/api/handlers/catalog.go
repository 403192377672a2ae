package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ramonehamilton/deckscope/internal/api/response"
	"github.com/ramonehamilton/deckscope/internal/catalog"
)

// CatalogHandler serves catalog maintenance requests.
type CatalogHandler struct {
	provider *catalog.Provider
	logger   *slog.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(provider *catalog.Provider, logger *slog.Logger) *CatalogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogHandler{provider: provider, logger: logger}
}

// RefreshStatus reports the outcome of a catalog refresh.
type RefreshStatus struct {
	Formats []string `json:"formats"`
}

// Refresh handles POST /api/v1/catalog/refresh. A failed refresh keeps the
// previously published catalog in place.
func (h *CatalogHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.provider.Refresh(r.Context()); err != nil {
		h.logger.Error("manual catalog refresh failed", "error", err)
		response.InternalError(w, err)
		return
	}

	response.Success(w, RefreshStatus{Formats: h.provider.Current().Formats()})
}
