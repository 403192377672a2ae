// Package handlers contains the HTTP handlers of the classification API.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/ramonehamilton/deckscope/internal/api/response"
	"github.com/ramonehamilton/deckscope/internal/archetype"
	"github.com/ramonehamilton/deckscope/internal/catalog"
	"github.com/ramonehamilton/deckscope/internal/deck"
)

// ClassifyHandler serves classification requests.
type ClassifyHandler struct {
	provider *catalog.Provider
	logger   *slog.Logger
}

// NewClassifyHandler creates a new ClassifyHandler.
func NewClassifyHandler(provider *catalog.Provider, logger *slog.Logger) *ClassifyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClassifyHandler{provider: provider, logger: logger}
}

// ClassifyRequest represents one classification request. Either Decklist
// (raw text, parsed server-side) or Cards must be provided. Only the
// mainboard of a parsed decklist feeds classification.
type ClassifyRequest struct {
	Format   string                `json:"format"`
	Decklist string                `json:"decklist,omitempty"`
	Cards    []archetype.CardEntry `json:"cards,omitempty"`
}

// ClassifyResponse pairs the classification result with parse warnings.
type ClassifyResponse struct {
	Result   *archetype.Result `json:"result"`
	Warnings []string          `json:"warnings,omitempty"`
}

// Classify handles POST /api/v1/classify.
func (h *ClassifyHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, errors.New("invalid request body"))
		return
	}

	resp, err := h.classifyOne(&req)
	if err != nil {
		if errors.Is(err, archetype.ErrUnknownFormat) {
			response.UnprocessableEntity(w, err)
			return
		}
		response.BadRequest(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *ClassifyHandler) classifyOne(req *ClassifyRequest) (*ClassifyResponse, error) {
	if req.Format == "" {
		return nil, errors.New("format is required")
	}

	entries := req.Cards
	var warnings []string
	if len(entries) == 0 {
		if req.Decklist == "" {
			return nil, errors.New("either cards or decklist is required")
		}
		list, err := deck.Parse(req.Decklist)
		if err != nil {
			return nil, err
		}
		entries = list.Mainboard
		warnings = list.Warnings
	}

	result, err := h.provider.Classifier().Classify(entries, req.Format)
	if err != nil {
		return nil, err
	}
	return &ClassifyResponse{Result: result, Warnings: warnings}, nil
}

// BatchClassifyRequest classifies many decklists in one call.
type BatchClassifyRequest struct {
	Format    string   `json:"format"`
	Decklists []string `json:"decklists"`
}

// BatchItem is the outcome for one decklist of a batch. Failures are
// isolated per item: Error is set and Result is nil, and the rest of the
// batch proceeds.
type BatchItem struct {
	ID       string            `json:"id"`
	Result   *archetype.Result `json:"result,omitempty"`
	Error    string            `json:"error,omitempty"`
	Warnings []string          `json:"warnings,omitempty"`
}

// ClassifyBatch handles POST /api/v1/classify/batch. An unknown format fails
// the whole request; per-decklist parse failures only fail their item.
func (h *ClassifyHandler) ClassifyBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, errors.New("invalid request body"))
		return
	}
	if req.Format == "" {
		response.BadRequest(w, errors.New("format is required"))
		return
	}
	if len(req.Decklists) == 0 {
		response.BadRequest(w, errors.New("decklists must not be empty"))
		return
	}

	if !h.provider.Current().HasFormat(req.Format) {
		response.UnprocessableEntity(w, archetype.ErrUnknownFormat)
		return
	}

	classifier := h.provider.Classifier()
	items := make([]BatchItem, 0, len(req.Decklists))
	for _, text := range req.Decklists {
		item := BatchItem{ID: uuid.NewString()}

		list, err := deck.Parse(text)
		if err != nil {
			item.Error = err.Error()
			h.logger.Warn("skipping unparsable decklist in batch", "id", item.ID, "error", err)
			items = append(items, item)
			continue
		}

		result, err := classifier.Classify(list.Mainboard, req.Format)
		if err != nil {
			item.Error = err.Error()
			items = append(items, item)
			continue
		}

		item.Result = result
		item.Warnings = list.Warnings
		items = append(items, item)
	}

	response.Success(w, items)
}

// GetFormats handles GET /api/v1/formats.
func (h *ClassifyHandler) GetFormats(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.provider.Current().Formats())
}

// ArchetypeInfo describes one catalog entry for listing purposes.
type ArchetypeInfo struct {
	Name   string `json:"name"`
	Method string `json:"method"`
}

// GetArchetypes handles GET /api/v1/archetypes?format=modern.
func (h *ClassifyHandler) GetArchetypes(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		response.BadRequest(w, errors.New("format query parameter is required"))
		return
	}

	current := h.provider.Current()
	if !current.HasFormat(format) {
		response.UnprocessableEntity(w, archetype.ErrUnknownFormat)
		return
	}

	var infos []ArchetypeInfo
	for _, rule := range current.Rules(format) {
		infos = append(infos, ArchetypeInfo{
			Name:   archetype.DisplayName(rule.Name),
			Method: string(archetype.MethodRule),
		})
	}
	for _, fb := range current.Fallbacks(format) {
		infos = append(infos, ArchetypeInfo{
			Name:   archetype.DisplayName(fb.Name),
			Method: string(archetype.MethodFallback),
		})
	}

	response.Success(w, infos)
}
