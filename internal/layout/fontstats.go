package layout

import (
	"math"
	"sort"
)

// sizeBucket maps a font size to its tolerance bucket. Sizes in the
// same bucket are considered equal, absorbing rendering jitter.
func sizeBucket(size, tolerance float64) int {
	return int(math.Round(size / tolerance))
}

// FontProfile is the document-wide distribution of line font sizes,
// weighted by character count. It is an immutable value computed once
// and threaded into the title detector and heading classifier.
type FontProfile struct {
	tolerance float64
	weights   map[int]float64
	baseline  int // bucket of the body text size; 0 if no lines
}

// BuildFontProfile computes the size distribution over all lines and
// fixes the baseline: the heaviest bucket, ties broken toward the
// smaller size since body text is the smallest common size.
func BuildFontProfile(lines []Line, cfg Config) FontProfile {
	cfg = cfg.withDefaults()
	p := FontProfile{
		tolerance: cfg.SizeTolerance,
		weights:   make(map[int]float64, 8),
	}
	for _, ln := range lines {
		p.weights[sizeBucket(ln.Size, p.tolerance)] += float64(len([]rune(ln.Text)))
	}
	for b, w := range p.weights {
		if p.baseline == 0 || w > p.weights[p.baseline] ||
			(w == p.weights[p.baseline] && b < p.baseline) {
			p.baseline = b
		}
	}
	return p
}

// Baseline returns the body text size, or 0 for an empty document.
func (p FontProfile) Baseline() float64 {
	return float64(p.baseline) * p.tolerance
}

// Candidates returns every distinct size strictly above the baseline,
// largest first. Empty when the document is degenerate (no lines, or a
// single size throughout).
func (p FontProfile) Candidates() []float64 {
	var buckets []int
	for b := range p.weights {
		if b > p.baseline {
			buckets = append(buckets, b)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(buckets)))

	sizes := make([]float64, len(buckets))
	for i, b := range buckets {
		sizes[i] = float64(b) * p.tolerance
	}
	return sizes
}

// AboveBaseline reports whether a size exceeds the body text size by
// more than the tolerance.
func (p FontProfile) AboveBaseline(size float64) bool {
	return sizeBucket(size, p.tolerance) > p.baseline
}

// Same reports whether two sizes fall in the same tolerance bucket.
func (p FontProfile) Same(a, b float64) bool {
	return sizeBucket(a, p.tolerance) == sizeBucket(b, p.tolerance)
}

// Bucket returns the tolerance bucket of a size under this profile.
func (p FontProfile) Bucket(size float64) int {
	return sizeBucket(size, p.tolerance)
}
