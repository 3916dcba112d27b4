package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/argus-lab/argus/pkg/service/lang"
	"github.com/argus-lab/argus/pkg/service/pdf"
	"github.com/argus-lab/argus/pkg/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
)

// Server wraps the HTTP server with routing configured
type Server struct {
	*http.Server
	router         *chi.Mux
	reviewHandler  *ReviewHandler
	historyHandler *HistoryHandler
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	addr string,
	classifier *lang.Classifier,
	reviewUC usecase.ReviewUseCase,
	historyUC usecase.HistoryUseCase,
	renderer *pdf.Renderer,
	allowedOrigins []string,
) (*Server, error) {
	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(CORSMiddleware(allowedOrigins))
	router.Use(middleware.Recoverer)

	reviewHandler := NewReviewHandler(reviewUC, renderer)
	historyHandler := NewHistoryHandler(historyUC)

	// Health check
	router.Get("/health", handleHealth(classifier))

	// API routes
	router.Route("/api", func(r chi.Router) {
		r.Post("/upload", reviewHandler.HandleUpload)
		r.Post("/upload-multiple", reviewHandler.HandleUploadMultiple)
		r.Get("/supported-formats", reviewHandler.HandleSupportedFormats)
		r.Get("/download-pdf/{filename}", reviewHandler.HandleDownloadPDF)

		r.Route("/history", func(r chi.Router) {
			r.Get("/", historyHandler.HandleList)
			r.Get("/stats/summary", historyHandler.HandleStats)
			r.Get("/{reviewID}", historyHandler.HandleGet)
			r.Delete("/{reviewID}", historyHandler.HandleDelete)
		})
	})

	// Root endpoint with service information
	router.Get("/", handleRoot)

	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:         router,
		reviewHandler:  reviewHandler,
		historyHandler: historyHandler,
	}

	return server, nil
}

// Router returns the underlying router, mainly for tests
func (s *Server) Router() *chi.Mux {
	return s.router
}

// handleHealth handles health check requests
func handleHealth(classifier *lang.Classifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(map[string]any{
			"status":              "healthy",
			"service":             "argus",
			"supported_languages": classifier.Languages(),
		}); err != nil {
			ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
		}
	}
}

// handleRoot describes the API at the root path
func handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "argus",
		"message": "AI-powered code review service",
		"endpoints": map[string]string{
			"upload":            "POST /api/upload",
			"upload_multiple":   "POST /api/upload-multiple",
			"supported_formats": "GET /api/supported-formats",
			"download_pdf":      "GET /api/download-pdf/{filename}",
			"history":           "GET /api/history",
			"history_detail":    "GET /api/history/{reviewID}",
			"history_delete":    "DELETE /api/history/{reviewID}",
			"history_stats":     "GET /api/history/stats/summary",
			"health":            "GET /health",
		},
	})
}
