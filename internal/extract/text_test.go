package extract

import (
	"strings"
	"testing"

	"github.com/krishnasree5/outliner/internal/outline"
)

func TestTextOutline(t *testing.T) {
	src := strings.Join([]string{
		"INTRODUCTION",
		"Some body text that is long enough to read as a paragraph line.",
		"1. Scope",
		"1.1 Definitions",
		"1.1.1 Terms of Art",
		"more body text",
		"\fAPPENDIX",
	}, "\n")

	p := &TextOutliner{}
	out, err := p.Outline(strings.NewReader(src), "rfc-draft.txt")
	if err != nil {
		t.Fatalf("outline: %v", err)
	}

	if out.Title != "rfc-draft" {
		t.Errorf("expected filename stem title, got %q", out.Title)
	}
	checkEntries(t, out.Entries, []outline.Entry{
		{Level: outline.H1, Text: "INTRODUCTION", Page: 1},
		{Level: outline.H1, Text: "1. Scope", Page: 1},
		{Level: outline.H2, Text: "1.1 Definitions", Page: 1},
		{Level: outline.H3, Text: "1.1.1 Terms of Art", Page: 1},
		{Level: outline.H1, Text: "APPENDIX", Page: 2},
	})
}

func TestTextHeadingDepth(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"INTRODUCTION", 1},
		{"2 Background", 1},
		{"2. Background", 1},
		{"2.3 Methods", 2},
		{"2.3.1 Sampling", 3},
		{"2.3.1. Sampling", 3},
		{"ordinary sentence of body text", 0},
		{"3", 0},
		{"ALL CAPS BUT FAR TOO LONG TO BE A HEADING BECAUSE IT KEEPS GOING AND GOING WELL PAST THE LENGTH CUTOFF", 0},
		{"1.2.x Not A Number", 0},
		{"OK", 0},
		{"404", 0},
	}
	for _, tt := range tests {
		if got := textHeadingDepth(tt.line); got != tt.want {
			t.Errorf("textHeadingDepth(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestIsSectionNumber(t *testing.T) {
	valid := []string{"1", "1.", "1.2", "1.2.3", "1.2.3."}
	for _, s := range valid {
		if !isSectionNumber(s) {
			t.Errorf("isSectionNumber(%q) = false, want true", s)
		}
	}
	invalid := []string{"", ".", "1..2", "a", "1.a", "1-2"}
	for _, s := range invalid {
		if isSectionNumber(s) {
			t.Errorf("isSectionNumber(%q) = true, want false", s)
		}
	}
}
