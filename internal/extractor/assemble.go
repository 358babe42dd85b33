package extractor

import (
	"fmt"
	"strings"
)

// AssembleOptions controls document assembly.
type AssembleOptions struct {
	// PageBanners inserts a rule line and page index before each included
	// page. The default (false) omits banners so that page boundaries do not
	// show up as spurious diff lines; all comparison paths use the default.
	PageBanners bool
}

const bannerRule = "============================================================"

// Assemble combines page records into one document string, in ascending page
// order. Pages whose trimmed text is empty are skipped entirely: no
// separator, no placeholder.
func Assemble(pages []PageRecord, opts AssembleOptions) string {
	var parts []string

	for _, page := range pages {
		text := strings.TrimSpace(page.Text)
		if text == "" {
			continue
		}

		if opts.PageBanners {
			banner := fmt.Sprintf("\n\n%s\n[PAGE %d]\n%s\n\n", bannerRule, page.PageNumber, bannerRule)
			parts = append(parts, banner+text)
		} else {
			parts = append(parts, text)
		}
	}

	if opts.PageBanners {
		return strings.Join(parts, "\n")
	}
	return strings.Join(parts, "\n\n")
}
