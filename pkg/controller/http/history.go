package http

import (
	"net/http"
	"strconv"

	"github.com/argus-lab/argus/pkg/domain/types"
	"github.com/argus-lab/argus/pkg/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
)

// HistoryHandler handles stored review endpoints
type HistoryHandler struct {
	historyUC usecase.HistoryUseCase
}

// NewHistoryHandler creates a history handler
func NewHistoryHandler(historyUC usecase.HistoryUseCase) *HistoryHandler {
	return &HistoryHandler{historyUC: historyUC}
}

// HandleList returns one page of stored reviews, newest first
func (h *HistoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	perPage := queryInt(r, "per_page", 10)

	result, err := h.historyUC.List(r.Context(), page, perPage)
	if err != nil {
		writeError(w, err, statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HandleGet returns a stored review including the full report body
func (h *HistoryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "reviewID")
	if id == "" {
		writeError(w, goerr.New("review ID is required"), http.StatusBadRequest)
		return
	}

	detail, err := h.historyUC.Get(r.Context(), types.ReviewID(id))
	if err != nil {
		writeError(w, err, statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

// HandleDelete removes a stored review
func (h *HistoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "reviewID")
	if id == "" {
		writeError(w, goerr.New("review ID is required"), http.StatusBadRequest)
		return
	}

	record, err := h.historyUC.Delete(r.Context(), types.ReviewID(id))
	if err != nil {
		writeError(w, err, statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Review " + id + " deleted successfully",
		"deleted_review": map[string]any{
			"id":            record.ID,
			"filename":      record.Filename,
			"overall_score": record.OverallScore,
		},
	})
}

// HandleStats summarizes all stored reviews
func (h *HistoryHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.historyUC.Stats(r.Context())
	if err != nil {
		writeError(w, err, statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
