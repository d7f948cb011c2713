package layout

// Config holds the layout analysis tunables. The defaults were chosen
// against a set of report-style sample documents; per-style tuning goes
// through environment configuration rather than code changes.
type Config struct {
	// SizeTolerance is the font size delta (in points) within which two
	// sizes are considered equal. It is also the bucket width of the
	// font profile.
	SizeTolerance float64

	// RowTolerance is the fraction of the taller fragment's height by
	// which two fragments' top edges may differ while still sitting on
	// the same visual row.
	RowTolerance float64

	// SpaceGapFraction is the fraction of the font size a horizontal
	// gap between row-adjacent fragments must reach before a space is
	// inserted between them. Character-level extractors emit one
	// fragment per glyph; anything below this gap is kerning.
	SpaceGapFraction float64

	// MergeGap is the maximum vertical distance (in points) between two
	// lines for them to be treated as one wrapped logical line rather
	// than separate rows.
	MergeGap float64

	// MaxHeadingWords rejects heading candidates at or above this word
	// count; long lines at a large size are body text with a stray font
	// run, not headings.
	MaxHeadingWords int
}

// DefaultConfig returns the documented default tunables.
func DefaultConfig() Config {
	return Config{
		SizeTolerance:    0.5,
		RowTolerance:     0.3,
		SpaceGapFraction: 0.15,
		MergeGap:         5.0,
		MaxHeadingWords:  20,
	}
}

// withDefaults fills zero-valued fields so a zero Config behaves like
// DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.SizeTolerance <= 0 {
		c.SizeTolerance = d.SizeTolerance
	}
	if c.RowTolerance <= 0 {
		c.RowTolerance = d.RowTolerance
	}
	if c.SpaceGapFraction <= 0 {
		c.SpaceGapFraction = d.SpaceGapFraction
	}
	if c.MergeGap <= 0 {
		c.MergeGap = d.MergeGap
	}
	if c.MaxHeadingWords <= 0 {
		c.MaxHeadingWords = d.MaxHeadingWords
	}
	return c
}
