package diff

import (
	"fmt"
	"html"
	"strings"
)

// row classes used by the side-by-side rendering.
const (
	classEqual   = "diff-equal"
	classAdded   = "diff-add"
	classRemoved = "diff-del"
	classChanged = "diff-chg"
)

const diffStyle = `<style>
table.diff { width: 100%; border-collapse: collapse; font-family: monospace; font-size: 13px; }
table.diff th { background: #f0f0f0; padding: 4px 8px; text-align: left; }
table.diff td { padding: 2px 8px; vertical-align: top; white-space: pre-wrap; }
table.diff td.lineno { color: #999; text-align: right; width: 3em; user-select: none; }
table.diff tr.diff-add td.content-right { background: #e6ffe6; }
table.diff tr.diff-del td.content-left { background: #ffe6e6; }
table.diff tr.diff-chg td.content-left, table.diff tr.diff-chg td.content-right { background: #fff3cd; }
</style>`

// SideBySide renders a line-aligned, two-column HTML comparison of two
// cleaned documents, labeled with each document's name.
func SideBySide(leftName, rightName, leftText, rightText string) string {
	left := splitLines(leftText)
	right := splitLines(rightText)
	ops := Opcodes(left, right)

	var b strings.Builder
	b.WriteString(diffStyle)
	b.WriteString(`<table class="diff">`)
	fmt.Fprintf(&b, `<tr><th colspan="2">%s</th><th colspan="2">%s</th></tr>`,
		html.EscapeString(leftName), html.EscapeString(rightName))

	for _, op := range ops {
		switch op.Op {
		case OpEqual:
			for k := 0; op.I1+k < op.I2; k++ {
				writeRow(&b, classEqual, op.I1+k+1, left[op.I1+k], op.J1+k+1, right[op.J1+k])
			}
		case OpDelete:
			for i := op.I1; i < op.I2; i++ {
				writeHalfRow(&b, classRemoved, i+1, left[i], true)
			}
		case OpInsert:
			for j := op.J1; j < op.J2; j++ {
				writeHalfRow(&b, classAdded, j+1, right[j], false)
			}
		case OpReplace:
			i, j := op.I1, op.J1
			for i < op.I2 && j < op.J2 {
				writeRow(&b, classChanged, i+1, left[i], j+1, right[j])
				i++
				j++
			}
			for ; i < op.I2; i++ {
				writeHalfRow(&b, classRemoved, i+1, left[i], true)
			}
			for ; j < op.J2; j++ {
				writeHalfRow(&b, classAdded, j+1, right[j], false)
			}
		}
	}

	b.WriteString(`</table>`)
	return b.String()
}

func writeRow(b *strings.Builder, class string, leftNo int, left string, rightNo int, right string) {
	fmt.Fprintf(b,
		`<tr class="%s"><td class="lineno">%d</td><td class="content-left">%s</td><td class="lineno">%d</td><td class="content-right">%s</td></tr>`,
		class, leftNo, html.EscapeString(left), rightNo, html.EscapeString(right))
}

func writeHalfRow(b *strings.Builder, class string, lineNo int, text string, isLeft bool) {
	escaped := html.EscapeString(text)
	if isLeft {
		fmt.Fprintf(b,
			`<tr class="%s"><td class="lineno">%d</td><td class="content-left">%s</td><td class="lineno"></td><td class="content-right"></td></tr>`,
			class, lineNo, escaped)
	} else {
		fmt.Fprintf(b,
			`<tr class="%s"><td class="lineno"></td><td class="content-left"></td><td class="lineno">%d</td><td class="content-right">%s</td></tr>`,
			class, lineNo, escaped)
	}
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
