package pathplan

// Objective is one unit of a learning path: a wrapper around one or more
// content items with a target study duration. Immutable after creation.
type Objective struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Subject     string `json:"subject"`
	Difficulty  string `json:"difficulty_level"`

	// Prerequisites is declared but not populated by any planning path;
	// sequencing currently relies on difficulty order alone.
	Prerequisites []string `json:"prerequisites"`

	// EstimatedDuration is in minutes, clamped to
	// [MinObjectiveDuration, MaxObjectiveDuration].
	EstimatedDuration int `json:"estimated_duration"`

	ContentIDs []string `json:"content_ids"`
}

// Planning bounds.
const (
	MinObjectivesPerPath = 3
	MaxObjectivesPerPath = 10

	// Objective duration bounds, in minutes.
	MinObjectiveDuration = 15
	MaxObjectiveDuration = 60

	// AvgObjectiveDuration converts a target path duration into an
	// objective count.
	AvgObjectiveDuration = 30

	// FillerObjectiveDuration is the fixed duration of synthesized
	// "Introduction" objectives.
	FillerObjectiveDuration = 30

	// WordsPerMinute drives duration estimation from content length.
	WordsPerMinute = 50
)

// clampDuration bounds a duration estimate to the per-objective range.
func clampDuration(minutes int) int {
	if minutes < MinObjectiveDuration {
		return MinObjectiveDuration
	}
	if minutes > MaxObjectiveDuration {
		return MaxObjectiveDuration
	}
	return minutes
}
