package extract

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/krishnasree5/outliner/internal/outline"
)

// TextOutliner infers structure from plain text with line heuristics:
// short all-caps lines and numbered "1.2.3" section prefixes are
// headings, everything else is body. Form feeds advance the page
// counter.
type TextOutliner struct{}

func (p *TextOutliner) Outline(r io.Reader, filename string) (outline.Outline, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	out := outline.Empty()
	out.Title = fileStem(filename)
	page := 1

	for scanner.Scan() {
		line := scanner.Text()
		page += strings.Count(line, "\f")
		line = strings.TrimSpace(strings.ReplaceAll(line, "\f", " "))
		if line == "" {
			continue
		}

		depth := textHeadingDepth(line)
		if depth == 0 {
			continue
		}
		level, ok := outline.ForDepth(depth)
		if !ok {
			continue
		}
		out.Entries = append(out.Entries, outline.Entry{
			Level: level,
			Text:  line,
			Page:  page,
		})
	}
	if err := scanner.Err(); err != nil {
		return outline.Empty(), err
	}
	return out, nil
}

// textHeadingDepth classifies a line: 0 means body text, otherwise a
// 1-based heading depth.
func textHeadingDepth(line string) int {
	if len(line) > 100 {
		return 0
	}

	// Numbered sections: depth follows the dot count of the prefix, so
	// "3" is depth 1, "3.2" depth 2, "3.2.1" depth 3.
	fields := strings.Fields(line)
	if len(fields) >= 2 && isSectionNumber(fields[0]) {
		return strings.Count(strings.TrimSuffix(fields[0], "."), ".") + 1
	}

	// Short all-caps lines are top-level headings.
	if len(line) > 2 && line == strings.ToUpper(line) && hasLetter(line) {
		return 1
	}
	return 0
}

// isSectionNumber matches "1", "1.", "1.2", "1.2.3." style prefixes.
func isSectionNumber(s string) bool {
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, ".") {
		if part == "" {
			return false
		}
		for _, r := range part {
			if !unicode.IsDigit(r) {
				return false
			}
		}
	}
	return true
}

func hasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}
