package store

import (
	"context"
	"errors"

	"github.com/sowmya1811d/edupath/internal/content"
	"github.com/sowmya1811d/edupath/internal/pathgen"
	"github.com/sowmya1811d/edupath/internal/profile"
)

// ErrNotFound is returned when a lookup by identifier matches nothing.
var ErrNotFound = errors.New("not found")

// ContentRepo manages the content pool. It doubles as the path generator's
// retrieval and statistics collaborator.
type ContentRepo interface {
	content.Retriever
	content.StatsProvider

	// Add stores one item. An empty item ID gets a generated one,
	// written back to the item.
	Add(ctx context.Context, item *content.Item) error

	// Import bulk-loads items, generating IDs where missing, and
	// returns how many were stored. An item whose ID already exists
	// is replaced.
	Import(ctx context.Context, items []content.Item) (int, error)

	// Export returns the whole pool.
	Export(ctx context.Context) ([]content.Item, error)
}

// StudentRepo manages learner profiles.
type StudentRepo interface {
	// Save stores a profile, replacing any existing one for the same
	// student.
	Save(ctx context.Context, p *profile.StudentProfile) error

	// Get returns the profile for a student, or ErrNotFound.
	Get(ctx context.Context, studentID string) (*profile.StudentProfile, error)

	// List returns every stored profile.
	List(ctx context.Context) ([]*profile.StudentProfile, error)

	// Delete removes a student's profile, or returns ErrNotFound.
	Delete(ctx context.Context, studentID string) error
}

// PathRepo manages persisted learning paths.
type PathRepo interface {
	// Save stores a path in its record form, replacing any existing
	// record with the same path ID.
	Save(ctx context.Context, p *pathgen.LearningPath) error

	// Get loads and validates one path, or returns ErrNotFound. A
	// stored record that fails validation surfaces as a
	// CorruptRecordError.
	Get(ctx context.Context, pathID string) (*pathgen.LearningPath, error)

	// ListByStudent returns a student's paths, newest first. Records
	// that fail validation are skipped.
	ListByStudent(ctx context.Context, studentID string) ([]*pathgen.LearningPath, error)

	// SetStatus transitions a path to the given status.
	SetStatus(ctx context.Context, pathID string, status pathgen.Status) error
}
