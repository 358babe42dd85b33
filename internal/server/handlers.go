package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/hybridpdf/comparator/internal/diff"
	apperrors "github.com/hybridpdf/comparator/internal/errors"
	"github.com/hybridpdf/comparator/internal/extractor"
)

// fileResult is the per-document payload shared by the extract and compare
// responses.
type fileResult struct {
	Filename string                 `json:"filename"`
	Text     string                 `json:"text"`
	Pages    []extractor.PageRecord `json:"pages"`
	Stats    extractor.Stats        `json:"stats"`
}

type extractResponse struct {
	Success  bool                   `json:"success"`
	Filename string                 `json:"filename"`
	Text     string                 `json:"text"`
	Pages    []extractor.PageRecord `json:"pages"`
	Stats    extractor.Stats        `json:"stats"`
}

type compareResponse struct {
	Success bool       `json:"success"`
	File1   fileResult `json:"file1"`
	File2   fileResult `json:"file2"`
}

type compareStats struct {
	File1         extractor.Stats `json:"file1"`
	File2         extractor.Stats `json:"file2"`
	TotalPages    int             `json:"total_pages"`
	TotalOCRPages int             `json:"total_ocr_pages"`
	EstimatedCost string          `json:"estimated_cost"`
}

type compareHTMLResponse struct {
	Success     bool         `json:"success"`
	HTML        string       `json:"html"`
	IsIdentical bool         `json:"is_identical"`
	Text1       string       `json:"text1"`
	Text2       string       `json:"text2"`
	Stats       compareStats `json:"stats"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "PDF Comparator API",
		"version": Version,
		"endpoints": map[string]string{
			"/api/extract":      "POST - Extract text from a single PDF",
			"/api/compare":      "POST - Compare two PDFs and return differences",
			"/api/compare-html": "POST - Compare two PDFs and return an HTML diff",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": ServiceName,
	})
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	path, filename, err := s.saveUpload(r, "file")
	if err != nil {
		s.writeFailure(w, err)
		return
	}
	defer os.Remove(path)

	doc, err := s.extractor.ExtractFile(r.Context(), path, filename)
	if err != nil {
		s.writeFailure(w, fmt.Errorf("Error processing PDF: %w", err))
		return
	}

	writeJSON(w, http.StatusOK, extractResponse{
		Success:  true,
		Filename: doc.Filename,
		Text:     doc.Text,
		Pages:    doc.Pages,
		Stats:    doc.Stats,
	})
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	doc1, doc2, cleanup, err := s.extractPair(r)
	if cleanup != nil {
		defer cleanup()
	}
	if err != nil {
		s.writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, compareResponse{
		Success: true,
		File1: fileResult{
			Filename: doc1.Filename,
			Text:     s.cleaner.Clean(doc1.Text),
			Pages:    doc1.Pages,
			Stats:    doc1.Stats,
		},
		File2: fileResult{
			Filename: doc2.Filename,
			Text:     s.cleaner.Clean(doc2.Text),
			Pages:    doc2.Pages,
			Stats:    doc2.Stats,
		},
	})
}

func (s *Server) handleCompareHTML(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	doc1, doc2, cleanup, err := s.extractPair(r)
	if cleanup != nil {
		defer cleanup()
	}
	if err != nil {
		s.writeFailure(w, err)
		return
	}

	text1 := s.cleaner.Clean(doc1.Text)
	text2 := s.cleaner.Clean(doc2.Text)

	totalOCRPages := doc1.Stats.OCRPages() + doc2.Stats.OCRPages()

	writeJSON(w, http.StatusOK, compareHTMLResponse{
		Success:     true,
		HTML:        diff.SideBySide(doc1.Filename, doc2.Filename, text1, text2),
		IsIdentical: diff.IsIdentical(text1, text2),
		Text1:       text1,
		Text2:       text2,
		Stats: compareStats{
			File1:         doc1.Stats,
			File2:         doc2.Stats,
			TotalPages:    doc1.Stats.TotalPages + doc2.Stats.TotalPages,
			TotalOCRPages: totalOCRPages,
			EstimatedCost: diff.EstimatedCost(totalOCRPages, s.cfg.OCRPagePrice),
		},
	})
}

// extractPair saves both uploads, extracts them sequentially and returns a
// cleanup that removes the temp files. cleanup is non-nil whenever any file
// was written, on failure included.
func (s *Server) extractPair(r *http.Request) (doc1, doc2 *extractor.Document, cleanup func(), err error) {
	var paths []string
	cleanup = func() {
		for _, p := range paths {
			os.Remove(p)
		}
	}

	path1, filename1, err := s.saveUpload(r, "file1")
	if err != nil {
		return nil, nil, cleanup, err
	}
	paths = append(paths, path1)

	path2, filename2, err := s.saveUpload(r, "file2")
	if err != nil {
		return nil, nil, cleanup, err
	}
	paths = append(paths, path2)

	doc1, err = s.extractor.ExtractFile(r.Context(), path1, filename1)
	if err != nil {
		return nil, nil, cleanup, fmt.Errorf("Error comparing PDFs: %w", err)
	}

	doc2, err = s.extractor.ExtractFile(r.Context(), path2, filename2)
	if err != nil {
		return nil, nil, cleanup, fmt.Errorf("Error comparing PDFs: %w", err)
	}

	return doc1, doc2, cleanup, nil
}

// saveUpload validates the multipart file under field and writes it to a
// request-unique temp path. The caller removes the file.
func (s *Server) saveUpload(r *http.Request, field string) (path, filename string, err error) {
	if err := r.ParseMultipartForm(s.cfg.MaxFileSize); err != nil {
		return "", "", apperrors.NewInvalidInputError(fmt.Sprintf("Invalid multipart form: %v", err))
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		return "", "", apperrors.NewInvalidInputError(fmt.Sprintf("Missing file field %q", field))
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		return "", "", apperrors.NewInvalidInputError("Only PDF files are allowed")
	}

	path, err = s.writeTemp(file)
	if err != nil {
		return "", "", err
	}
	return path, header.Filename, nil
}

func (s *Server) writeTemp(file multipart.File) (string, error) {
	path := filepath.Join(s.cfg.TempDir, fmt.Sprintf("upload-%s.pdf", uuid.NewString()))

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	return path, nil
}

// writeFailure maps an error to the HTTP status dictated by its kind:
// input validation is a 400, everything else a 500.
func (s *Server) writeFailure(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	detail := err.Error()

	if apperrors.IsInvalidInput(err) {
		status = http.StatusBadRequest
		var pe *apperrors.ProcessingError
		if errors.As(err, &pe) {
			detail = pe.Message
		}
	}

	s.logger.Error("request failed", "status", status, "error", err)
	writeError(w, status, detail)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
