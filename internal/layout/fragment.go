package layout

// Fragment is a positioned run of text as laid out on a page, the
// smallest unit an extractor yields. Coordinates are top-down: Top is
// the distance from the top edge of the page, so reading order is
// ascending (Page, Top, Left).
type Fragment struct {
	Text   string
	Page   int // 1-based
	Size   float64
	Font   string
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Height returns the bounding box height of the fragment.
func (f Fragment) Height() float64 {
	return f.Bottom - f.Top
}

// Line is one or more fragments assembled into a single visual text
// row (or a wrapped run of rows repaired by the assembler). Size is
// the dominant font size among its fragments, weighted by character
// count.
type Line struct {
	Text   string
	Page   int
	Size   float64
	Font   string
	Left   float64
	Top    float64
	Bottom float64
}
