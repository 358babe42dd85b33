package extractor

import "strings"

// mergeTextAndOCR reconciles the direct text layer of a page with OCR output
// for the same page, avoiding duplication.
//
// An OCR line is considered redundant when it is a substring of some direct
// line, or a direct line is a substring of it (case-sensitive, trim-only).
// This containment check is a deliberate approximation: it tolerates
// divergent line-wrapping between the parser and the OCR engine, at the cost
// of occasionally keeping a wrapped duplicate or dropping a distinct line
// that happens to be contained in unrelated text. Consumers depend on this
// exact behavior; do not replace it with fuzzy matching.
func mergeTextAndOCR(directText, ocrText string) string {
	directLines := make(map[string]struct{})
	for _, line := range strings.Split(directText, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			directLines[line] = struct{}{}
		}
	}

	var additional []string
	for _, line := range strings.Split(ocrText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		redundant := false
		for direct := range directLines {
			if strings.Contains(direct, line) || strings.Contains(line, direct) {
				redundant = true
				break
			}
		}
		if !redundant {
			additional = append(additional, line)
		}
	}

	if len(additional) == 0 {
		return directText
	}
	return directText + "\n\n" + strings.Join(additional, "\n")
}
