package layout

import "testing"

func line(text string, page int, size, top float64) Line {
	return Line{Text: text, Page: page, Size: size, Font: "Helvetica", Top: top, Bottom: top + size}
}

func TestFontProfile_BaselineIsHeaviestSize(t *testing.T) {
	lines := []Line{
		line("a heading", 1, 18, 72),
		line("plenty of ordinary body text on the first page", 1, 12, 100),
		line("and a second paragraph of body text below it", 1, 12, 130),
	}
	p := BuildFontProfile(lines, DefaultConfig())

	if got := p.Baseline(); got != 12 {
		t.Errorf("expected baseline 12, got %v", got)
	}
}

func TestFontProfile_ToleranceAbsorbsJitter(t *testing.T) {
	// 11.9 and 12.2 land in the same half-point bucket.
	lines := []Line{
		line("body text rendered with slight jitter", 1, 11.9, 100),
		line("more body text rendered with slight jitter", 1, 12.2, 130),
		line("one large heading", 1, 18, 72),
	}
	p := BuildFontProfile(lines, DefaultConfig())

	if !p.Same(11.9, 12.2) {
		t.Error("expected 11.9 and 12.2 to compare equal within tolerance")
	}
	if got := p.Baseline(); got != 12 {
		t.Errorf("expected baseline 12, got %v", got)
	}
}

func TestFontProfile_BaselineTieBreaksToSmallerSize(t *testing.T) {
	lines := []Line{
		line("ten chars.", 1, 10, 100),
		line("ten chars.", 1, 14, 130),
	}
	p := BuildFontProfile(lines, DefaultConfig())

	if got := p.Baseline(); got != 10 {
		t.Errorf("expected tie to break to smaller size 10, got %v", got)
	}
}

func TestFontProfile_CandidatesDescendAboveBaseline(t *testing.T) {
	lines := []Line{
		line("a long run of body text establishing the baseline size", 1, 12, 200),
		line("mid heading", 2, 16, 72),
		line("big heading", 3, 24, 72),
		line("small print", 2, 9, 500),
	}
	p := BuildFontProfile(lines, DefaultConfig())

	got := p.Candidates()
	want := []float64{24, 16}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if p.AboveBaseline(9) {
		t.Error("size below baseline reported as candidate")
	}
	if !p.AboveBaseline(16) {
		t.Error("size above baseline not reported as candidate")
	}
}

func TestFontProfile_SingleSizeHasNoCandidates(t *testing.T) {
	lines := []Line{
		line("everything is the same size", 1, 12, 100),
		line("including this line", 2, 12, 100),
	}
	p := BuildFontProfile(lines, DefaultConfig())

	if got := p.Candidates(); len(got) != 0 {
		t.Errorf("expected no candidates, got %v", got)
	}
}

func TestFontProfile_EmptyDocument(t *testing.T) {
	p := BuildFontProfile(nil, DefaultConfig())
	if got := p.Baseline(); got != 0 {
		t.Errorf("expected zero baseline for empty document, got %v", got)
	}
	if got := p.Candidates(); len(got) != 0 {
		t.Errorf("expected no candidates, got %v", got)
	}
}
