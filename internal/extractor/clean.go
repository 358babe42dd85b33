package extractor

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Cleaner normalizes an assembled document for reliable comparison.
type Cleaner struct {
	reDigitsOnly *regexp.Regexp
}

// NewCleaner creates a cleaner with precompiled patterns.
func NewCleaner() *Cleaner {
	return &Cleaner{
		// Bare page numbers: one or more digits and nothing else.
		reDigitsOnly: regexp.MustCompile(`^\d+$`),
	}
}

// Clean removes noise lines and collapses whitespace. A line is dropped when
// its trimmed form is only digits or is at most 2 characters long; surviving
// lines get whitespace runs collapsed to single spaces. Clean is idempotent.
func (c *Cleaner) Clean(text string) string {
	var kept []string

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		// Character count, not byte count: "éà" is a 2-character noise line.
		if utf8.RuneCountInString(trimmed) <= 2 {
			continue
		}
		if c.reDigitsOnly.MatchString(trimmed) {
			continue
		}
		kept = append(kept, strings.Join(strings.Fields(trimmed), " "))
	}

	return strings.Join(kept, "\n")
}
