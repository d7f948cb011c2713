package layout

import (
	"math"
	"sort"
	"strings"
)

// AssembleLines turns the flat fragment sequence of a document into
// ordered logical lines. Fragments are first grouped into visual rows,
// then adjacent rows that look like a single wrapped line (small
// vertical gap, matching font and size, no sentence boundary between
// them) are merged.
func AssembleLines(frags []Fragment, cfg Config) []Line {
	cfg = cfg.withDefaults()

	kept := make([]Fragment, 0, len(frags))
	for _, f := range frags {
		if strings.TrimSpace(f.Text) == "" {
			continue
		}
		kept = append(kept, f)
	}
	if len(kept) == 0 {
		return nil
	}

	sort.SliceStable(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		if a.Top != b.Top {
			return a.Top < b.Top
		}
		return a.Left < b.Left
	})

	rows := groupRows(kept, cfg)

	lines := make([]Line, 0, len(rows))
	for _, row := range rows {
		line := buildLine(row, cfg)
		if line.Text == "" {
			continue
		}
		lines = append(lines, line)
	}

	return mergeWrapped(lines, cfg)
}

// groupRows splits the sorted fragment sequence into visual rows. A
// fragment joins the current row when its top edge is within
// RowTolerance of the row's anchor, measured against the taller of the
// two heights.
func groupRows(frags []Fragment, cfg Config) [][]Fragment {
	var rows [][]Fragment
	current := []Fragment{frags[0]}

	for _, f := range frags[1:] {
		anchor := current[0]
		h := math.Max(anchor.Height(), f.Height())
		if f.Page == anchor.Page && math.Abs(f.Top-anchor.Top) <= cfg.RowTolerance*h {
			current = append(current, f)
			continue
		}
		rows = append(rows, current)
		current = []Fragment{f}
	}
	rows = append(rows, current)
	return rows
}

// buildLine concatenates a row's fragments left-to-right, inserting a
// space only across gaps wide enough to be a word boundary, and picks
// the dominant font size by character weight.
func buildLine(row []Fragment, cfg Config) Line {
	sort.SliceStable(row, func(i, j int) bool { return row[i].Left < row[j].Left })

	var sb strings.Builder
	for i, f := range row {
		if i > 0 {
			prev := row[i-1]
			gap := f.Left - prev.Right
			if gap >= cfg.SpaceGapFraction*prev.Size &&
				!strings.HasSuffix(prev.Text, " ") && !strings.HasPrefix(f.Text, " ") {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(f.Text)
	}

	line := Line{
		Text: strings.Join(strings.Fields(sb.String()), " "),
		Page: row[0].Page,
		Left: row[0].Left,
		Top:  row[0].Top,
	}

	// Dominant size by character count; ties go to the larger size so a
	// heading prefixed by a small glyph keeps its heading size.
	weights := make(map[int]float64)
	for _, f := range row {
		weights[sizeBucket(f.Size, cfg.SizeTolerance)] += float64(len([]rune(f.Text)))
		if f.Bottom > line.Bottom {
			line.Bottom = f.Bottom
		}
	}
	best := sizeBucket(row[0].Size, cfg.SizeTolerance)
	for b, w := range weights {
		if w > weights[best] || (w == weights[best] && b > best) {
			best = b
		}
	}
	for _, f := range row {
		if sizeBucket(f.Size, cfg.SizeTolerance) == best {
			line.Size = f.Size
			line.Font = f.Font
			break
		}
	}
	return line
}

// mergeWrapped repairs logical lines broken across a vertical gap. A
// merged line keeps absorbing its next neighbor while the conditions
// hold; earlier pairs are never revisited, so unrelated rows cannot be
// chained together through a single accidental match.
func mergeWrapped(lines []Line, cfg Config) []Line {
	if len(lines) == 0 {
		return nil
	}

	merged := make([]Line, 0, len(lines))
	cur := lines[0]
	for _, next := range lines[1:] {
		if canMerge(cur, next, cfg) {
			cur.Text = joinWrapped(cur.Text, next.Text)
			if next.Bottom > cur.Bottom {
				cur.Bottom = next.Bottom
			}
			if next.Left < cur.Left {
				cur.Left = next.Left
			}
			continue
		}
		merged = append(merged, cur)
		cur = next
	}
	merged = append(merged, cur)
	return merged
}

func canMerge(cur, next Line, cfg Config) bool {
	if cur.Page != next.Page {
		return false
	}
	if math.Abs(next.Top-cur.Bottom) >= cfg.MergeGap {
		return false
	}
	if math.Abs(next.Size-cur.Size) > cfg.SizeTolerance {
		return false
	}
	if cur.Font != next.Font {
		return false
	}
	// A completed sentence followed by a fresh semantic unit is a
	// paragraph boundary, not a wrap.
	if endsTerminal(cur.Text) {
		return false
	}
	if startsListItem(next.Text) {
		return false
	}
	return true
}

// joinWrapped concatenates the two halves of a wrapped line. A trailing
// hyphen on the first half marks a word split by the wrap.
func joinWrapped(a, b string) string {
	if strings.HasSuffix(a, "-") && !strings.HasSuffix(a, " -") {
		return strings.TrimSuffix(a, "-") + b
	}
	return a + " " + b
}

func endsTerminal(s string) bool {
	s = strings.TrimRight(s, " ")
	if s == "" {
		return false
	}
	switch s[len(s)-1] {
	case '.', '!', '?', ';':
		return true
	}
	return false
}
