package extract

import (
	"fmt"
	"io"
	"os"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/krishnasree5/outliner/internal/layout"
	"github.com/krishnasree5/outliner/internal/outline"
)

// letterHeight is the fallback page height when no MediaBox is found.
const letterHeight = 792.0

// PDFOutliner extracts positioned text fragments with ledongthuc/pdf
// and runs the layout pipeline over them.
type PDFOutliner struct {
	Layout layout.Config
}

func (p *PDFOutliner) Outline(r io.Reader, filename string) (outline.Outline, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "outliner-pdf-*.pdf")
	if err != nil {
		return outline.Empty(), fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return outline.Empty(), fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	frags, err := extractFragments(tmpPath)
	if err != nil {
		return outline.Empty(), fmt.Errorf("extract pdf fragments: %w", err)
	}

	return layout.BuildOutline(frags, p.Layout), nil
}

// extractFragments reads every page's positioned text runs. Pages that
// fail to decode are skipped; a document with no extractable text is a
// valid empty input.
func extractFragments(path string) ([]layout.Fragment, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var frags []layout.Fragment
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		frags = append(frags, pageFragments(page, i)...)
	}
	return frags, nil
}

// pageFragments converts one page's text runs into top-down fragments.
// ledongthuc/pdf panics on some malformed content streams and font
// programs; a bad page must not take down the rest of the document.
func pageFragments(page pdflib.Page, pageNum int) (frags []layout.Fragment) {
	defer func() {
		if r := recover(); r != nil {
			frags = nil
		}
	}()

	height := mediaBoxHeight(page)
	content := page.Content()
	frags = make([]layout.Fragment, 0, len(content.Text))
	for _, t := range content.Text {
		if t.S == "" || t.FontSize <= 0 {
			continue
		}
		// t.Y is the baseline in bottom-up PDF user space.
		frags = append(frags, layout.Fragment{
			Text:   t.S,
			Page:   pageNum,
			Size:   t.FontSize,
			Font:   t.Font,
			Left:   t.X,
			Top:    height - t.Y - t.FontSize,
			Right:  t.X + t.W,
			Bottom: height - t.Y,
		})
	}
	return frags
}

// mediaBoxHeight resolves the page height, walking up the page tree for
// inherited MediaBox entries.
func mediaBoxHeight(page pdflib.Page) float64 {
	v := page.V
	for !v.IsNull() {
		if mb := v.Key("MediaBox"); !mb.IsNull() {
			if h := mb.Index(3).Float64() - mb.Index(1).Float64(); h > 0 {
				return h
			}
		}
		v = v.Key("Parent")
	}
	return letterHeight
}
