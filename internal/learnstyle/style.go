package learnstyle

// Style is one of the four learning modalities.
type Style string

const (
	StyleVisual         Style = "visual"
	StyleAuditory       Style = "auditory"
	StyleKinesthetic    Style = "kinesthetic"
	StyleReadingWriting Style = "reading_writing"
)

// AllStyles returns the styles in enumeration order. This order is also the
// tie-break order when ranking scores.
func AllStyles() []Style {
	return []Style{StyleVisual, StyleAuditory, StyleKinesthetic, StyleReadingWriting}
}

// Valid reports whether s is one of the four modalities.
func (s Style) Valid() bool {
	switch s {
	case StyleVisual, StyleAuditory, StyleKinesthetic, StyleReadingWriting:
		return true
	}
	return false
}

// Confidence values for style results inferred from behavior rather than
// derived from direct quiz answers.
const (
	InferredPrimaryConfidence   = 0.6
	InferredSecondaryConfidence = 0.4
)

// Result is a per-call learning style assessment. It is recomputed on every
// planning call and never persisted.
type Result struct {
	Primary   Style
	Secondary Style

	// Scores holds the per-style accumulator values. Quiz-based results
	// carry integral counts; inferred results may carry fractional
	// preference weights.
	Scores map[Style]float64

	PrimaryConfidence   float64
	SecondaryConfidence float64

	// Inferred is true when the result came from behavioral signals rather
	// than quiz answers.
	Inferred bool

	// Catalog bundle for the primary style.
	Description string
	Preferences []string
	Strengths   []string
	Challenges  []string
}
