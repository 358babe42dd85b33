package config

import (
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ALLOWED_ORIGIN", "REQUEST_TIMEOUT", "TEMP_DIR",
		"MAX_FILE_SIZE", "OCR_PROVIDER", "OCR_SERVICE_URL",
		"TESSERACT_LANGS", "RASTER_DPI", "OCR_PAGE_PRICE", "EXTRACT_WORKERS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != 8000 {
		t.Errorf("Port = %d, want 8000", cfg.Port)
	}
	if cfg.AllowedOrigin != "http://localhost:3000" {
		t.Errorf("AllowedOrigin = %q", cfg.AllowedOrigin)
	}
	if cfg.MaxFileSize != 52428800 {
		t.Errorf("MaxFileSize = %d, want 50MB", cfg.MaxFileSize)
	}
	if cfg.OCRProvider != ProviderTesseract {
		t.Errorf("OCRProvider = %q, want %q", cfg.OCRProvider, ProviderTesseract)
	}
	if cfg.RasterDPI != 300 {
		t.Errorf("RasterDPI = %d, want 300", cfg.RasterDPI)
	}
	if cfg.OCRPagePrice != 0.0015 {
		t.Errorf("OCRPagePrice = %v, want 0.0015", cfg.OCRPagePrice)
	}
	if cfg.ExtractWorkers != 1 {
		t.Errorf("ExtractWorkers = %d, want 1", cfg.ExtractWorkers)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("OCR_PROVIDER", "remote")
	t.Setenv("OCR_SERVICE_URL", "http://ocr.internal:5000")
	t.Setenv("EXTRACT_WORKERS", "4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.OCRProvider != ProviderRemote {
		t.Errorf("OCRProvider = %q, want remote", cfg.OCRProvider)
	}
	if cfg.OCRServiceURL != "http://ocr.internal:5000" {
		t.Errorf("OCRServiceURL = %q", cfg.OCRServiceURL)
	}
	if cfg.ExtractWorkers != 4 {
		t.Errorf("ExtractWorkers = %d, want 4", cfg.ExtractWorkers)
	}
}

func TestLoadInvalidIntFallsBackToDefault(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8000 {
		t.Errorf("Port = %d, want default 8000", cfg.Port)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:           8000,
			MaxFileSize:    52428800,
			OCRProvider:    ProviderTesseract,
			RasterDPI:      300,
			OCRPagePrice:   0.0015,
			ExtractWorkers: 1,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"port too low", func(c *Config) { c.Port = 0 }, "PORT"},
		{"port too high", func(c *Config) { c.Port = 70000 }, "PORT"},
		{"unknown provider", func(c *Config) { c.OCRProvider = "vision" }, "OCR_PROVIDER"},
		{"remote without URL", func(c *Config) { c.OCRProvider = ProviderRemote }, "OCR_SERVICE_URL"},
		{"file size too small", func(c *Config) { c.MaxFileSize = 512 }, "MAX_FILE_SIZE"},
		{"dpi too low", func(c *Config) { c.RasterDPI = 50 }, "RASTER_DPI"},
		{"negative price", func(c *Config) { c.OCRPagePrice = -1 }, "OCR_PAGE_PRICE"},
		{"too many workers", func(c *Config) { c.ExtractWorkers = 64 }, "EXTRACT_WORKERS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate: expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %s", err, tt.wantErr)
			}
		})
	}
}

func TestLoadRejectsInvalidConfiguration(t *testing.T) {
	clearEnv(t)
	t.Setenv("OCR_PROVIDER", "vision")

	if _, err := Load(); err == nil {
		t.Fatal("Load should reject an unknown OCR provider")
	}
}
