// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// OCR provider names accepted in OCR_PROVIDER.
const (
	ProviderTesseract = "tesseract"
	ProviderRemote    = "remote"
	ProviderNone      = "none"
)

// Config holds API server configuration
type Config struct {
	// HTTP server
	Port           int
	AllowedOrigin  string
	RequestTimeout int // seconds

	// Upload handling
	TempDir     string
	MaxFileSize int64

	// OCR backend
	OCRProvider    string // "tesseract", "remote" or "none"
	OCRServiceURL  string
	TesseractLangs string
	RasterDPI      int
	OCRPagePrice   float64 // estimated price per OCR'd page, USD

	// Extraction
	ExtractWorkers int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnvAsIntOrDefault("PORT", 8000),
		AllowedOrigin:  getEnvOrDefault("ALLOWED_ORIGIN", "http://localhost:3000"),
		RequestTimeout: getEnvAsIntOrDefault("REQUEST_TIMEOUT", 300),
		TempDir:        getEnvOrDefault("TEMP_DIR", os.TempDir()),
		MaxFileSize:    getEnvAsInt64OrDefault("MAX_FILE_SIZE", 52428800), // 50MB
		OCRProvider:    getEnvOrDefault("OCR_PROVIDER", ProviderTesseract),
		OCRServiceURL:  getEnvOrDefault("OCR_SERVICE_URL", ""),
		TesseractLangs: getEnvOrDefault("TESSERACT_LANGS", ""),
		RasterDPI:      getEnvAsIntOrDefault("RASTER_DPI", 300),
		OCRPagePrice:   getEnvAsFloatOrDefault("OCR_PAGE_PRICE", 0.0015),
		ExtractWorkers: getEnvAsIntOrDefault("EXTRACT_WORKERS", 1),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}

	switch c.OCRProvider {
	case ProviderTesseract, ProviderRemote, ProviderNone:
	default:
		return fmt.Errorf("OCR_PROVIDER must be %q, %q or %q, got %q",
			ProviderTesseract, ProviderRemote, ProviderNone, c.OCRProvider)
	}

	if c.OCRProvider == ProviderRemote && c.OCRServiceURL == "" {
		return fmt.Errorf("OCR_SERVICE_URL is required when OCR_PROVIDER=remote")
	}

	if c.MaxFileSize < 1024 || c.MaxFileSize > 1073741824 { // 1KB to 1GB
		return fmt.Errorf("MAX_FILE_SIZE must be between 1KB and 1GB, got %d", c.MaxFileSize)
	}

	if c.RasterDPI < 72 || c.RasterDPI > 600 {
		return fmt.Errorf("RASTER_DPI must be between 72 and 600, got %d", c.RasterDPI)
	}

	if c.OCRPagePrice < 0 {
		return fmt.Errorf("OCR_PAGE_PRICE must not be negative, got %f", c.OCRPagePrice)
	}

	if c.ExtractWorkers < 1 || c.ExtractWorkers > 32 {
		return fmt.Errorf("EXTRACT_WORKERS must be between 1 and 32, got %d", c.ExtractWorkers)
	}

	return nil
}

// getEnvOrDefault gets environment variable or returns default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault gets environment variable as int or returns default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

// getEnvAsInt64OrDefault gets environment variable as int64 or returns default
func getEnvAsInt64OrDefault(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

// getEnvAsFloatOrDefault gets environment variable as float64 or returns default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}
