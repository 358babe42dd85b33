// Package extractor implements hybrid text extraction from PDF documents:
// per-page strategy selection between direct text extraction and OCR,
// merging of the two sources, document assembly and cleaning.
package extractor

// Strategy identifies how a page's text was obtained.
type Strategy string

const (
	StrategyDirectText Strategy = "direct_text"
	StrategyOCROnly    Strategy = "ocr_only"
	StrategyHybrid     Strategy = "hybrid"
	StrategyEmpty      Strategy = "empty"
)

// PageRecord is the extraction result for a single page.
type PageRecord struct {
	PageNumber int      `json:"page_number"`
	Text       string   `json:"text"`
	Method     Strategy `json:"method"`
	HasImages  bool     `json:"has_images"`
}

// Stats aggregates per-document extraction counters. The four method
// counters always sum to TotalPages.
type Stats struct {
	TotalPages    int `json:"total_pages"`
	TextExtracted int `json:"text_extracted"`
	OCRUsed       int `json:"ocr_used"`
	Hybrid        int `json:"hybrid"`
	Empty         int `json:"empty"`
}

func (s *Stats) record(method Strategy) {
	switch method {
	case StrategyDirectText:
		s.TextExtracted++
	case StrategyOCROnly:
		s.OCRUsed++
	case StrategyHybrid:
		s.Hybrid++
	case StrategyEmpty:
		s.Empty++
	}
}

// OCRPages returns the number of pages that required an OCR round trip.
func (s Stats) OCRPages() int {
	return s.OCRUsed + s.Hybrid
}

// Document is the result of one extraction run: ordered page records, the
// assembled text and the aggregate counters. It is not modified after
// assembly.
type Document struct {
	Filename string
	Pages    []PageRecord
	Text     string
	Stats    Stats
}
