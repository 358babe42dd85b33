// Package server exposes the extraction and comparison pipeline over HTTP.
package server

import (
	"context"
	"net/http"

	"github.com/hybridpdf/comparator/internal/config"
	"github.com/hybridpdf/comparator/internal/extractor"
	"github.com/hybridpdf/comparator/internal/logging"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "pdf-comparator-api"

// Version of the API.
const Version = "1.0.0"

// DocumentExtractor extracts one PDF file into a Document.
type DocumentExtractor interface {
	ExtractFile(ctx context.Context, path, filename string) (*extractor.Document, error)
}

// Server holds the HTTP handlers and their dependencies.
type Server struct {
	cfg       *config.Config
	extractor DocumentExtractor
	cleaner   *extractor.Cleaner
	logger    *logging.Logger
}

// New creates a Server.
func New(cfg *config.Config, ext DocumentExtractor) *Server {
	return &Server{
		cfg:       cfg,
		extractor: ext,
		cleaner:   extractor.NewCleaner(),
		logger:    logging.NewLogger("Server"),
	}
}

// Handler returns the routed HTTP handler, CORS included.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/extract", s.handleExtract)
	mux.HandleFunc("/api/compare", s.handleCompare)
	mux.HandleFunc("/api/compare-html", s.handleCompareHTML)
	return s.cors(mux)
}

// cors allows the configured frontend origin on every response and answers
// preflight requests.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.cfg.AllowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
