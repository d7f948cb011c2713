package layout

import "testing"

func frag(text string, page int, size, left, top, width float64) Fragment {
	return Fragment{
		Text:   text,
		Page:   page,
		Size:   size,
		Font:   "Helvetica",
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + size,
	}
}

func TestAssembleLines_GroupsRowAndInsertsWordSpaces(t *testing.T) {
	frags := []Fragment{
		frag("Hello", 1, 12, 10, 100, 30),
		frag("World", 1, 12, 45, 100, 30), // 5pt gap, well above 0.15*12
	}
	lines := AssembleLines(frags, DefaultConfig())

	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "Hello World" {
		t.Errorf("expected %q, got %q", "Hello World", lines[0].Text)
	}
	if lines[0].Page != 1 {
		t.Errorf("expected page 1, got %d", lines[0].Page)
	}
}

func TestAssembleLines_NoSpacesBetweenKernedGlyphs(t *testing.T) {
	// Character-level extraction: one fragment per glyph, sub-point gaps.
	frags := []Fragment{
		frag("H", 1, 12, 10.0, 100, 7),
		frag("e", 1, 12, 17.2, 100, 6),
		frag("y", 1, 12, 23.5, 100, 6),
	}
	lines := AssembleLines(frags, DefaultConfig())

	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "Hey" {
		t.Errorf("expected %q, got %q", "Hey", lines[0].Text)
	}
}

func TestAssembleLines_SortsFragmentsIntoReadingOrder(t *testing.T) {
	// Extraction order is not visual order.
	frags := []Fragment{
		frag("second row", 1, 12, 10, 130, 60),
		frag("first row", 1, 12, 10, 100, 55),
	}
	lines := AssembleLines(frags, DefaultConfig())

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Text != "first row" || lines[1].Text != "second row" {
		t.Errorf("unexpected order: %q, %q", lines[0].Text, lines[1].Text)
	}
}

func TestAssembleLines_MergesHyphenWrappedLine(t *testing.T) {
	frags := []Fragment{
		frag("Introduc-", 2, 12, 10, 100, 55),
		frag("tion to Systems", 2, 12, 10, 114, 90), // 2pt below the first row's bottom
	}
	lines := AssembleLines(frags, DefaultConfig())

	if len(lines) != 1 {
		t.Fatalf("expected merged line, got %d lines", len(lines))
	}
	if lines[0].Text != "Introduction to Systems" {
		t.Errorf("expected %q, got %q", "Introduction to Systems", lines[0].Text)
	}
}

func TestAssembleLines_MergesWrappedHeadingWithSpace(t *testing.T) {
	frags := []Fragment{
		frag("Annual Report", 1, 24, 10, 72, 160),
		frag("2024", 1, 24, 10, 100, 55), // 4pt gap below bottom at 96
	}
	lines := AssembleLines(frags, DefaultConfig())

	if len(lines) != 1 {
		t.Fatalf("expected merged line, got %d lines", len(lines))
	}
	if lines[0].Text != "Annual Report 2024" {
		t.Errorf("expected %q, got %q", "Annual Report 2024", lines[0].Text)
	}
}

func TestAssembleLines_NoMergeCases(t *testing.T) {
	tests := []struct {
		name string
		a, b Fragment
	}{
		{
			name: "paragraph gap",
			a:    frag("some body text", 1, 12, 10, 100, 80),
			b:    frag("more body text", 1, 12, 10, 130, 80),
		},
		{
			name: "font size differs",
			a:    frag("Heading", 1, 18, 10, 100, 60),
			b:    frag("body text", 1, 12, 10, 120, 55),
		},
		{
			name: "terminal punctuation ends first line",
			a:    frag("Sentence ends here.", 1, 12, 10, 100, 100),
			b:    frag("next line continues", 1, 12, 10, 114, 100),
		},
		{
			name: "second line starts a list item",
			a:    frag("Topics covered", 1, 12, 10, 100, 80),
			b:    frag("1. First topic", 1, 12, 10, 114, 80),
		},
		{
			name: "page boundary",
			a:    frag("end of page", 1, 12, 10, 100, 60),
			b:    frag("start of page", 2, 12, 10, 101, 70),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := AssembleLines([]Fragment{tt.a, tt.b}, DefaultConfig())
			if len(lines) != 2 {
				t.Fatalf("expected 2 separate lines, got %d", len(lines))
			}
		})
	}
}

func TestAssembleLines_DropsBlankFragments(t *testing.T) {
	frags := []Fragment{
		frag("   ", 1, 12, 10, 100, 20),
		frag("kept", 1, 12, 40, 100, 25),
		frag("", 1, 12, 70, 100, 0),
	}
	lines := AssembleLines(frags, DefaultConfig())

	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "kept" {
		t.Errorf("expected %q, got %q", "kept", lines[0].Text)
	}
}

func TestAssembleLines_EmptyInput(t *testing.T) {
	if lines := AssembleLines(nil, DefaultConfig()); len(lines) != 0 {
		t.Errorf("expected no lines, got %d", len(lines))
	}
}

func TestAssembleLines_DominantSizeByCharacterWeight(t *testing.T) {
	// A heading with a small superscript glyph keeps the heading size.
	frags := []Fragment{
		frag("Chapter One", 1, 18, 10, 100, 110),
		frag("*", 1, 10, 122, 102, 5),
	}
	lines := AssembleLines(frags, DefaultConfig())

	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Size != 18 {
		t.Errorf("expected dominant size 18, got %v", lines[0].Size)
	}
}
