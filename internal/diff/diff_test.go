package diff

import (
	"reflect"
	"strings"
	"testing"
)

func TestOpcodesIdentical(t *testing.T) {
	a := []string{"one", "two", "three"}
	ops := Opcodes(a, a)

	want := []Opcode{{OpEqual, 0, 3, 0, 3}}
	if !reflect.DeepEqual(ops, want) {
		t.Errorf("Opcodes() = %+v, want %+v", ops, want)
	}
	if Changed(ops) {
		t.Error("Changed() = true for identical inputs")
	}
}

func TestOpcodesInsert(t *testing.T) {
	a := []string{"a", "c"}
	b := []string{"a", "b", "c"}

	want := []Opcode{
		{OpEqual, 0, 1, 0, 1},
		{OpInsert, 1, 1, 1, 2},
		{OpEqual, 1, 2, 2, 3},
	}
	if got := Opcodes(a, b); !reflect.DeepEqual(got, want) {
		t.Errorf("Opcodes() = %+v, want %+v", got, want)
	}
}

func TestOpcodesDelete(t *testing.T) {
	a := []string{"a", "b", "c"}
	b := []string{"a", "c"}

	want := []Opcode{
		{OpEqual, 0, 1, 0, 1},
		{OpDelete, 1, 2, 1, 1},
		{OpEqual, 2, 3, 1, 2},
	}
	if got := Opcodes(a, b); !reflect.DeepEqual(got, want) {
		t.Errorf("Opcodes() = %+v, want %+v", got, want)
	}
}

func TestOpcodesReplace(t *testing.T) {
	a := []string{"a", "x", "c"}
	b := []string{"a", "y", "c"}

	want := []Opcode{
		{OpEqual, 0, 1, 0, 1},
		{OpReplace, 1, 2, 1, 2},
		{OpEqual, 2, 3, 2, 3},
	}
	got := Opcodes(a, b)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Opcodes() = %+v, want %+v", got, want)
	}
	if !Changed(got) {
		t.Error("Changed() = false for differing inputs")
	}
}

func TestOpcodesEmptyInputs(t *testing.T) {
	if ops := Opcodes(nil, nil); len(ops) != 0 {
		t.Errorf("Opcodes(nil, nil) = %+v, want empty", ops)
	}

	ops := Opcodes(nil, []string{"new"})
	want := []Opcode{{OpInsert, 0, 0, 0, 1}}
	if !reflect.DeepEqual(ops, want) {
		t.Errorf("Opcodes(nil, b) = %+v, want %+v", ops, want)
	}
}

func TestIsIdentical(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{"exact match", "hello\nworld", "hello\nworld", true},
		{"surrounding whitespace ignored", "  hello\nworld\n\n", "hello\nworld", true},
		{"interior whitespace matters", "hello world", "hello  world", false},
		{"different text", "hello", "goodbye", false},
		{"both blank", "   ", "\n\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsIdentical(tt.a, tt.b); got != tt.want {
				t.Errorf("IsIdentical(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEstimatedCost(t *testing.T) {
	tests := []struct {
		pages int
		price float64
		want  string
	}{
		{0, DefaultPagePrice, "$0.0000"},
		{1, DefaultPagePrice, "$0.0015"},
		{3, DefaultPagePrice, "$0.0045"},
		{100, DefaultPagePrice, "$0.1500"},
		{2, 0.01, "$0.0200"},
	}

	for _, tt := range tests {
		if got := EstimatedCost(tt.pages, tt.price); got != tt.want {
			t.Errorf("EstimatedCost(%d, %v) = %q, want %q", tt.pages, tt.price, got, tt.want)
		}
	}
}

func TestSideBySide(t *testing.T) {
	got := SideBySide("left.pdf", "right.pdf", "same line\nold value", "same line\nnew value")

	if !strings.Contains(got, "left.pdf") || !strings.Contains(got, "right.pdf") {
		t.Error("rendered diff should carry both document names")
	}
	if !strings.Contains(got, `class="diff-equal"`) {
		t.Error("matching lines should render as diff-equal rows")
	}
	if !strings.Contains(got, `class="diff-chg"`) {
		t.Error("replaced lines should render as diff-chg rows")
	}
	if !strings.Contains(got, "old value") || !strings.Contains(got, "new value") {
		t.Error("rendered diff should include both line contents")
	}
}

func TestSideBySideEscapesHTML(t *testing.T) {
	got := SideBySide("a.pdf", "b.pdf", "<script>alert(1)</script>", "safe text")

	if strings.Contains(got, "<script>") {
		t.Error("document content must be HTML-escaped")
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Error("escaped content should appear in the output")
	}
}

func TestSideBySideInsertAndDelete(t *testing.T) {
	got := SideBySide("a.pdf", "b.pdf", "kept\nremoved", "kept")

	if !strings.Contains(got, `class="diff-del"`) {
		t.Error("removed lines should render as diff-del rows")
	}

	got = SideBySide("a.pdf", "b.pdf", "kept", "kept\nadded")
	if !strings.Contains(got, `class="diff-add"`) {
		t.Error("added lines should render as diff-add rows")
	}
}
