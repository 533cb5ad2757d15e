package profile

// Level is a coarse skill tier.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Pace describes how quickly a student moves through material.
type Pace string

const (
	PaceSlow   Pace = "slow"
	PaceNormal Pace = "normal"
	PaceFast   Pace = "fast"
)

// Availability describes how much study time a student has.
type Availability string

const (
	AvailabilityLow    Availability = "low"
	AvailabilityMedium Availability = "medium"
	AvailabilityHigh   Availability = "high"
)

// StudentProfile is the student record the planning core consumes. It is
// created and mutated by the external student-management collaborator; the
// core treats it as a read-only snapshot. Zero values fall back to documented
// defaults via the accessor methods, so a sparse profile never fails a
// planning call.
type StudentProfile struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name,omitempty"`

	CurrentLevel     Level        `json:"current_level,omitempty"`
	LearningPace     Pace         `json:"learning_pace,omitempty"`
	TimeAvailability Availability `json:"time_availability,omitempty"`

	// AveragePerformance is in [0,1].
	AveragePerformance *float64 `json:"average_performance,omitempty"`

	// StyleAssessment maps quiz question id -> chosen modality tag.
	// Present only when the student completed the learning-style quiz.
	StyleAssessment map[string]string `json:"learning_style_assessment,omitempty"`

	// ContentPreferences maps modality-tag -> preference weight.
	ContentPreferences map[string]float64 `json:"content_preferences,omitempty"`

	// LearningBehavior maps activity-tag -> minutes spent.
	LearningBehavior map[string]float64 `json:"learning_behavior,omitempty"`

	// PerformancePatterns maps task-tag -> score.
	PerformancePatterns map[string]float64 `json:"performance_patterns,omitempty"`

	// CompletedContent holds ids of content items already finished.
	CompletedContent []string `json:"completed_content,omitempty"`
}

// Default profile field values, used whenever a field is unset.
const (
	DefaultLevel        = LevelBeginner
	DefaultPace         = PaceNormal
	DefaultAvailability = AvailabilityMedium
	DefaultPerformance  = 0.5
)

// EffectiveLevel returns the profile's level, defaulting to beginner.
func (p *StudentProfile) EffectiveLevel() Level {
	switch p.CurrentLevel {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return p.CurrentLevel
	}
	return DefaultLevel
}

// EffectivePace returns the profile's pace, defaulting to normal.
func (p *StudentProfile) EffectivePace() Pace {
	switch p.LearningPace {
	case PaceSlow, PaceNormal, PaceFast:
		return p.LearningPace
	}
	return DefaultPace
}

// EffectiveAvailability returns the time availability, defaulting to medium.
func (p *StudentProfile) EffectiveAvailability() Availability {
	switch p.TimeAvailability {
	case AvailabilityLow, AvailabilityMedium, AvailabilityHigh:
		return p.TimeAvailability
	}
	return DefaultAvailability
}

// EffectivePerformance returns the average performance, defaulting to 0.5.
func (p *StudentProfile) EffectivePerformance() float64 {
	if p.AveragePerformance == nil {
		return DefaultPerformance
	}
	return *p.AveragePerformance
}

// CompletedSet returns the completed content ids as a set.
func (p *StudentProfile) CompletedSet() map[string]bool {
	set := make(map[string]bool, len(p.CompletedContent))
	for _, id := range p.CompletedContent {
		set[id] = true
	}
	return set
}

// Progress is the external progress tracker's feedback record, consumed by
// path adaptation.
type Progress struct {
	StudentID string `json:"student_id"`

	// CompletionRate is in [0,1].
	CompletionRate *float64 `json:"completion_rate,omitempty"`

	// AveragePerformance is in [0,1].
	AveragePerformance *float64 `json:"average_performance,omitempty"`

	CompletedContent []string `json:"completed_content,omitempty"`
}

// Default progress values, used whenever a field is unset.
const (
	DefaultCompletionRate      = 0.5
	DefaultProgressPerformance = 0.5
)

// EffectiveCompletionRate returns the completion rate, defaulting to 0.5.
func (pr *Progress) EffectiveCompletionRate() float64 {
	if pr.CompletionRate == nil {
		return DefaultCompletionRate
	}
	return *pr.CompletionRate
}

// EffectivePerformance returns the average performance, defaulting to 0.5.
func (pr *Progress) EffectivePerformance() float64 {
	if pr.AveragePerformance == nil {
		return DefaultProgressPerformance
	}
	return *pr.AveragePerformance
}
