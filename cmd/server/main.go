// PDF Comparator API server.
//
// Extracts text from PDF documents with a hybrid strategy (direct text
// layer + OCR for image content) and compares two documents with a
// line-based diff.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hybridpdf/comparator/internal/config"
	"github.com/hybridpdf/comparator/internal/extractor"
	"github.com/hybridpdf/comparator/internal/ocr"
	"github.com/hybridpdf/comparator/internal/pdf"
	"github.com/hybridpdf/comparator/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env not found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("PDF Comparator API starting...")
	log.Printf("Configuration loaded: Port=%d, OCRProvider=%s, Workers=%d, RasterDPI=%d",
		cfg.Port, cfg.OCRProvider, cfg.ExtractWorkers, cfg.RasterDPI)

	engine := buildOCREngine(cfg)
	if engine == nil {
		log.Printf("WARNING: No OCR backend configured. Pages requiring OCR will receive placeholders.")
	}

	ext := extractor.New(engine, pdf.NewRasterizer(cfg.RasterDPI), cfg.ExtractWorkers)
	srv := server.New(cfg, ext)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      srv.Handler(),
		ReadTimeout:  time.Duration(cfg.RequestTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
	}

	go func() {
		log.Printf("Listening on :%d", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal %v, initiating graceful shutdown...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Printf("Shutdown complete")
}

// buildOCREngine wires the configured OCR backend. A nil return means no
// backend; extraction degrades to placeholders for OCR-requiring pages.
func buildOCREngine(cfg *config.Config) ocr.Engine {
	switch cfg.OCRProvider {
	case config.ProviderTesseract:
		log.Printf("OCR backend: Tesseract (langs=%q)", cfg.TesseractLangs)
		return ocr.NewTesseract(cfg.TesseractLangs)

	case config.ProviderRemote:
		engine := ocr.NewRemoteEngine(cfg.OCRServiceURL)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := engine.HealthCheck(ctx); err != nil {
			log.Printf("WARNING: OCR service health check failed: %v. Pages may fall back to placeholders.", err)
		} else {
			log.Printf("OCR backend: remote service at %s", cfg.OCRServiceURL)
		}
		return engine

	default:
		return nil
	}
}
