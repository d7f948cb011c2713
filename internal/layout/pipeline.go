// Package layout infers a document's logical outline from the visual
// layout of extracted text fragments: it reconstructs lines, finds the
// body text size statistically, picks the title off the first page and
// ranks the remaining above-baseline sizes into heading levels.
package layout

import "github.com/krishnasree5/outliner/internal/outline"

// BuildOutline runs the full analysis pipeline over a document's
// fragments. Every stage is pure in-memory computation; zero fragments
// is valid empty input and yields an empty outline, never an error.
func BuildOutline(frags []Fragment, cfg Config) outline.Outline {
	cfg = cfg.withDefaults()

	lines := AssembleLines(frags, cfg)
	if len(lines) == 0 {
		return outline.Empty()
	}

	profile := BuildFontProfile(lines, cfg)
	title, titleIdx := DetectTitle(lines, profile)
	entries := ClassifyHeadings(lines, profile, titleIdx, cfg)

	return outline.Outline{Title: title, Entries: entries}
}
