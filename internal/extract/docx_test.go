package extract

import (
	"strings"
	"testing"
)

func TestHeadingStyleDepth(t *testing.T) {
	tests := []struct {
		style string
		want  int
	}{
		{"Heading1", 1},
		{"heading1", 1},
		{"Heading2", 2},
		{"heading 3", 3},
		{"Heading4", 4},
		{"Heading6", 6},
		{"Title", 0},
		{"Normal", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := headingStyleDepth(tt.style); got != tt.want {
			t.Errorf("headingStyleDepth(%q) = %d, want %d", tt.style, got, tt.want)
		}
	}
}

func TestDOCXOutlinerRejectsGarbage(t *testing.T) {
	p := &DOCXOutliner{}
	_, err := p.Outline(strings.NewReader("not a zip archive"), "broken.docx")
	if err == nil {
		t.Fatal("expected an error for a non-DOCX payload")
	}
}
