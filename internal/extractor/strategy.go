package extractor

import (
	"strings"
	"unicode/utf8"
)

// minDirectTextLength is the threshold below which a page's text layer is
// treated as unusable. Short fragments (headers, stray digits) do not count
// as extractable text.
const minDirectTextLength = 50

// hasExtractableText reports whether the page text layer is usable on its
// own. The threshold counts characters, not bytes, so accented text is
// measured the same as plain ASCII.
func hasExtractableText(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) > minDirectTextLength
}

// classify selects the extraction strategy for a page. The four outcomes are
// mutually exclusive and exhaustive over the two flags.
func classify(hasText, hasImages bool) Strategy {
	switch {
	case hasText && !hasImages:
		return StrategyDirectText
	case hasImages && !hasText:
		return StrategyOCROnly
	case hasText && hasImages:
		return StrategyHybrid
	default:
		return StrategyEmpty
	}
}
