package outline

// Level is a heading depth, H1 (largest) through H4.
type Level string

const (
	H1 Level = "H1"
	H2 Level = "H2"
	H3 Level = "H3"
	H4 Level = "H4"
)

// MaxDepth is the deepest heading level reported in an outline.
const MaxDepth = 4

var levels = [MaxDepth]Level{H1, H2, H3, H4}

// ForRank maps a 0-based size rank to a level. Ranks beyond MaxDepth-1
// have no level and are excluded from the outline.
func ForRank(rank int) (Level, bool) {
	if rank < 0 || rank >= MaxDepth {
		return "", false
	}
	return levels[rank], true
}

// ForDepth maps a 1-based structural depth (markdown/HTML/DOCX heading
// level) to an outline level.
func ForDepth(depth int) (Level, bool) {
	return ForRank(depth - 1)
}

// Entry is a single heading in document reading order.
type Entry struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Outline is the inferred document structure. The JSON key names and
// their order are part of the output contract.
type Outline struct {
	Title   string  `json:"title"`
	Entries []Entry `json:"outline"`
}

// Empty returns a well-formed outline with no title and no entries.
// Entries is non-nil so it serializes as [] rather than null.
func Empty() Outline {
	return Outline{Entries: []Entry{}}
}
