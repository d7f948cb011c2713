package layout

import "strings"

// DetectTitle finds the largest font size on page 1 and joins every
// page-1 line at that size, in document order, into the title string.
// The returned set holds the indexes of the consumed lines so the
// heading classifier can exclude them: a title is never also a heading.
func DetectTitle(lines []Line, profile FontProfile) (string, map[int]bool) {
	titleIdx := make(map[int]bool)

	maxSize := 0.0
	for _, ln := range lines {
		if ln.Page == 1 && ln.Size > maxSize {
			maxSize = ln.Size
		}
	}
	if maxSize == 0 {
		return "", titleIdx
	}

	var parts []string
	for i, ln := range lines {
		if ln.Page != 1 {
			continue
		}
		if profile.Same(ln.Size, maxSize) {
			parts = append(parts, ln.Text)
			titleIdx[i] = true
		}
	}
	return strings.Join(parts, " "), titleIdx
}
