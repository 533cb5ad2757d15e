package pathgen

import (
	"time"

	"github.com/sowmya1811d/edupath/internal/pathplan"
)

// Status is the lifecycle state of a learning path.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusPaused    Status = "paused"
)

// Valid reports whether s is a known lifecycle state.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusPaused:
		return true
	}
	return false
}

// LearningPath is a personalized, ordered objective sequence for one
// student. Objective order is the pedagogical sequence. Adaptation replaces
// Objectives in place and refreshes TotalDuration and UpdatedAt; everything
// else is fixed at generation time.
type LearningPath struct {
	StudentID   string
	PathID      string
	Title       string
	Description string

	Objectives []pathplan.Objective

	// TotalDuration is the sum of objective durations, in minutes. Always
	// recomputed from Objectives, never carried independently.
	TotalDuration int

	// DifficultyProgression is the level's template, independent of the
	// realized objective count.
	DifficultyProgression []string

	// Subjects are the unique subjects of the chosen objectives, sorted.
	Subjects []string

	CreatedAt time.Time
	UpdatedAt time.Time
	Status    Status
}

// RecomputeDuration refreshes TotalDuration from the live objective list.
func (p *LearningPath) RecomputeDuration() {
	total := 0
	for _, obj := range p.Objectives {
		total += obj.EstimatedDuration
	}
	p.TotalDuration = total
}
