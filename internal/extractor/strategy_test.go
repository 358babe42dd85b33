package extractor

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		hasText   bool
		hasImages bool
		want      Strategy
	}{
		{"text only", true, false, StrategyDirectText},
		{"images only", false, true, StrategyOCROnly},
		{"text and images", true, true, StrategyHybrid},
		{"neither", false, false, StrategyEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.hasText, tt.hasImages); got != tt.want {
				t.Errorf("classify(%v, %v) = %q, want %q", tt.hasText, tt.hasImages, got, tt.want)
			}
		})
	}
}

func TestHasExtractableText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", false},
		{"whitespace only", "   \n\t  ", false},
		{"short fragment", "Page header", false},
		{"exactly 50 chars", strings.Repeat("x", 50), false},
		{"51 chars", strings.Repeat("x", 51), true},
		{"padded 51 chars", "  " + strings.Repeat("x", 51) + "\n", true},
		{"long paragraph", "This page carries a full paragraph of body text that is clearly usable.", true},
		{"40 accented chars", strings.Repeat("é", 40), false},
		{"exactly 50 accented chars", strings.Repeat("é", 50), false},
		{"51 accented chars", strings.Repeat("é", 51), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasExtractableText(tt.text); got != tt.want {
				t.Errorf("hasExtractableText(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
