package layout

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/krishnasree5/outliner/internal/outline"
)

// listItemStartRe matches punctuated list-item markers at the start of
// a line: "1.", "2)", "1.2.3", "(a)", "iv.", bullets and dashes. A bare
// number is not a marker here; wrapped lines legitimately continue with
// one ("Annual Report" / "2024").
var listItemStartRe = regexp.MustCompile(`^\s*(?:\d+(?:\.\d+)*\s*[.)]|\(?[a-zA-Z]\s*[.)]|[-–—•▪◦*])\s`)

// listMarkerOnlyRe matches text that is nothing but a marker: "1.",
// "(a)", "•", or a bare number with no substantive trailing content.
var listMarkerOnlyRe = regexp.MustCompile(`^\s*(?:\d+(?:\.\d+)*\s*[.)]?|\(?[a-zA-Z]\s*[.)]|[ivxlcdmIVXLCDM]+\s*[.)]|[-–—•▪◦*])\s*$`)

func startsListItem(s string) bool {
	return listItemStartRe.MatchString(s)
}

func listMarkerOnly(s string) bool {
	return strings.TrimSpace(s) != "" && listMarkerOnlyRe.MatchString(s)
}

// hasSubstance reports whether the text contains at least one letter or
// digit after trimming; punctuation-only rows are extraction artifacts.
func hasSubstance(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsNumber(r)
	}) >= 0
}

// ClassifyHeadings ranks the candidate sizes into levels H1..H4 and
// emits every surviving line at one of those sizes as an outline entry,
// ordered by (page, vertical position). Lines in titleIdx are the
// detected title and take no part in classification, so a size that
// appears only in the title claims no level. Sizes beyond the fourth
// tier carry no level and are dropped entirely.
func ClassifyHeadings(lines []Line, profile FontProfile, titleIdx map[int]bool, cfg Config) []outline.Entry {
	cfg = cfg.withDefaults()

	// Candidate lines: above body size and short enough to be a heading.
	var candidates []int
	seen := make(map[int]bool)
	var buckets []int
	for i, ln := range lines {
		if titleIdx[i] {
			continue
		}
		if !profile.AboveBaseline(ln.Size) {
			continue
		}
		if len(strings.Fields(ln.Text)) >= cfg.MaxHeadingWords {
			continue
		}
		candidates = append(candidates, i)
		b := profile.Bucket(ln.Size)
		if !seen[b] {
			seen[b] = true
			buckets = append(buckets, b)
		}
	}

	// Rank distinct candidate sizes descending; the top four become
	// H1..H4 by relative rank alone.
	sort.Sort(sort.Reverse(sort.IntSlice(buckets)))
	levelBySize := make(map[int]outline.Level, outline.MaxDepth)
	for rank, b := range buckets {
		level, ok := outline.ForRank(rank)
		if !ok {
			break
		}
		levelBySize[b] = level
	}

	type placed struct {
		entry outline.Entry
		top   float64
	}
	var found []placed

	for _, i := range candidates {
		ln := lines[i]
		level, ok := levelBySize[profile.Bucket(ln.Size)]
		if !ok {
			continue
		}
		if !hasSubstance(ln.Text) || listMarkerOnly(ln.Text) {
			continue
		}
		found = append(found, placed{
			entry: outline.Entry{Level: level, Text: ln.Text, Page: ln.Page},
			top:   ln.Top,
		})
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].entry.Page != found[j].entry.Page {
			return found[i].entry.Page < found[j].entry.Page
		}
		return found[i].top < found[j].top
	})

	entries := make([]outline.Entry, 0, len(found))
	for _, p := range found {
		// Overlapping extraction can yield the same heading twice in a row.
		if n := len(entries); n > 0 && entries[n-1] == p.entry {
			continue
		}
		entries = append(entries, p.entry)
	}
	return entries
}
