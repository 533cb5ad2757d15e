package pathgen

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/sowmya1811d/edupath/internal/pathplan"
)

// ObjectiveRecord is the persisted form of a learning objective.
type ObjectiveRecord struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Subject           string   `json:"subject"`
	Difficulty        string   `json:"difficulty_level"`
	Prerequisites     []string `json:"prerequisites"`
	EstimatedDuration int      `json:"estimated_duration"`
	ContentIDs        []string `json:"content_ids"`
}

// Record is the persisted form of a learning path, the shape handed to the
// external path store. Timestamps serialize as RFC 3339.
type Record struct {
	StudentID             string            `json:"student_id"`
	PathID                string            `json:"path_id"`
	Title                 string            `json:"title"`
	Description           string            `json:"description"`
	Objectives            []ObjectiveRecord `json:"objectives"`
	TotalDuration         int               `json:"estimated_total_duration"`
	DifficultyProgression []string          `json:"difficulty_progression"`
	Subjects              []string          `json:"subjects"`
	CreatedAt             string            `json:"created_at"`
	UpdatedAt             string            `json:"updated_at"`
	Status                string            `json:"status"`
}

// CorruptRecordError marks a path record that failed schema validation or
// reconstruction. The failure is fatal for that record only.
type CorruptRecordError struct {
	PathID string
	Err    error
}

func (e *CorruptRecordError) Error() string {
	if e.PathID != "" {
		return fmt.Sprintf("corrupt path record %s: %v", e.PathID, e.Err)
	}
	return fmt.Sprintf("corrupt path record: %v", e.Err)
}

func (e *CorruptRecordError) Unwrap() error { return e.Err }

// ToRecord converts a path to its persisted form.
func ToRecord(p *LearningPath) *Record {
	objectives := make([]ObjectiveRecord, len(p.Objectives))
	for i, obj := range p.Objectives {
		objectives[i] = ObjectiveRecord{
			ID:                obj.ID,
			Title:             obj.Title,
			Description:       obj.Description,
			Subject:           obj.Subject,
			Difficulty:        obj.Difficulty,
			Prerequisites:     obj.Prerequisites,
			EstimatedDuration: obj.EstimatedDuration,
			ContentIDs:        obj.ContentIDs,
		}
	}
	return &Record{
		StudentID:             p.StudentID,
		PathID:                p.PathID,
		Title:                 p.Title,
		Description:           p.Description,
		Objectives:            objectives,
		TotalDuration:         p.TotalDuration,
		DifficultyProgression: p.DifficultyProgression,
		Subjects:              p.Subjects,
		CreatedAt:             p.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:             p.UpdatedAt.Format(time.RFC3339Nano),
		Status:                string(p.Status),
	}
}

// FromRecord reconstructs a path from its persisted form. The total
// duration comes from the live objective sum, never the stored field.
func FromRecord(r *Record) (*LearningPath, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return nil, &CorruptRecordError{PathID: r.PathID, Err: fmt.Errorf("parse created_at: %w", err)}
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, r.UpdatedAt)
	if err != nil {
		return nil, &CorruptRecordError{PathID: r.PathID, Err: fmt.Errorf("parse updated_at: %w", err)}
	}
	status := Status(r.Status)
	if !status.Valid() {
		return nil, &CorruptRecordError{PathID: r.PathID, Err: fmt.Errorf("unknown status %q", r.Status)}
	}

	objectives := make([]pathplan.Objective, len(r.Objectives))
	for i, or := range r.Objectives {
		objectives[i] = pathplan.Objective{
			ID:                or.ID,
			Title:             or.Title,
			Description:       or.Description,
			Subject:           or.Subject,
			Difficulty:        or.Difficulty,
			Prerequisites:     or.Prerequisites,
			EstimatedDuration: or.EstimatedDuration,
			ContentIDs:        or.ContentIDs,
		}
	}

	p := &LearningPath{
		StudentID:             r.StudentID,
		PathID:                r.PathID,
		Title:                 r.Title,
		Description:           r.Description,
		Objectives:            objectives,
		DifficultyProgression: r.DifficultyProgression,
		Subjects:              r.Subjects,
		CreatedAt:             createdAt,
		UpdatedAt:             updatedAt,
		Status:                status,
	}
	p.RecomputeDuration()
	return p, nil
}

// EncodeRecord serializes a path to its JSON record form.
func EncodeRecord(p *LearningPath) ([]byte, error) {
	data, err := json.MarshalIndent(ToRecord(p), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal path record: %w", err)
	}
	return data, nil
}

// DecodeRecord validates raw JSON against the record schema and
// reconstructs the path. Any failure is a CorruptRecordError.
func DecodeRecord(data []byte) (*LearningPath, error) {
	if err := validateRecord(data); err != nil {
		return nil, err
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, &CorruptRecordError{Err: fmt.Errorf("unmarshal: %w", err)}
	}
	return FromRecord(&r)
}

// uniqueSubjects returns the sorted distinct subjects of an objective list.
func uniqueSubjects(objectives []pathplan.Objective) []string {
	seen := make(map[string]bool)
	var subjects []string
	for _, obj := range objectives {
		if !seen[obj.Subject] {
			seen[obj.Subject] = true
			subjects = append(subjects, obj.Subject)
		}
	}
	sort.Strings(subjects)
	return subjects
}
