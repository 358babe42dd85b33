// Package diff compares two cleaned documents: a longest-common-subsequence
// line diff, a side-by-side HTML rendering and combined cost statistics.
package diff

import (
	"fmt"
	"strings"
)

// Op is the kind of an edit operation.
type Op string

const (
	OpEqual   Op = "equal"
	OpInsert  Op = "insert"
	OpDelete  Op = "delete"
	OpReplace Op = "replace"
)

// Opcode describes one edit operation: a[I1:I2] relates to b[J1:J2].
type Opcode struct {
	Op Op
	I1 int
	I2 int
	J1 int
	J2 int
}

// Opcodes computes the line-level edit script transforming a into b, based
// on a longest common subsequence. Runs of unmatched lines on both sides
// collapse into a single replace.
func Opcodes(a, b []string) []Opcode {
	n, m := len(a), len(b)

	// lcs[i][j] is the LCS length of a[i:] and b[j:].
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	var ops []Opcode
	pi, pj := 0, 0

	flush := func(i, j int) {
		switch {
		case pi < i && pj < j:
			ops = append(ops, Opcode{OpReplace, pi, i, pj, j})
		case pi < i:
			ops = append(ops, Opcode{OpDelete, pi, i, pj, j})
		case pj < j:
			ops = append(ops, Opcode{OpInsert, pi, i, pj, j})
		}
	}

	i, j := 0, 0
	for i < n && j < m {
		if a[i] == b[j] {
			flush(i, j)
			si, sj := i, j
			for i < n && j < m && a[i] == b[j] {
				i++
				j++
			}
			ops = append(ops, Opcode{OpEqual, si, i, sj, j})
			pi, pj = i, j
		} else if lcs[i+1][j] >= lcs[i][j+1] {
			i++
		} else {
			j++
		}
	}
	flush(n, m)

	return ops
}

// Changed reports whether the edit script contains any non-equal operation.
func Changed(ops []Opcode) bool {
	for _, op := range ops {
		if op.Op != OpEqual {
			return true
		}
	}
	return false
}

// IsIdentical reports exact equality of two documents after trimming
// leading and trailing whitespace from each as a whole.
func IsIdentical(text1, text2 string) bool {
	return strings.TrimSpace(text1) == strings.TrimSpace(text2)
}

// DefaultPagePrice is the estimated price per OCR'd page, USD.
const DefaultPagePrice = 0.0015

// EstimatedCost formats the estimated OCR cost for a number of OCR'd pages
// as a currency string with 4 decimal digits.
func EstimatedCost(ocrPages int, pricePerPage float64) string {
	return fmt.Sprintf("$%.4f", float64(ocrPages)*pricePerPage)
}
