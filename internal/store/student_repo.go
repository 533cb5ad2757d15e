package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sowmya1811d/edupath/ent"
	"github.com/sowmya1811d/edupath/ent/student"
	"github.com/sowmya1811d/edupath/internal/profile"
)

// studentRepo implements StudentRepo using the ent client.
type studentRepo struct {
	client *ent.Client
}

func (r *studentRepo) Save(ctx context.Context, p *profile.StudentProfile) error {
	if p.StudentID == "" {
		return fmt.Errorf("save profile: empty student id")
	}
	data, err := profileToMap(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	existing, err := r.client.Student.Query().
		Where(student.StudentID(p.StudentID)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().SetProfile(data).Save(ctx)
	case ent.IsNotFound(err):
		_, err = r.client.Student.Create().
			SetStudentID(p.StudentID).
			SetProfile(data).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *studentRepo) Get(ctx context.Context, studentID string) (*profile.StudentProfile, error) {
	row, err := r.client.Student.Query().
		Where(student.StudentID(studentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("student %s: %w", studentID, ErrNotFound)
		}
		return nil, fmt.Errorf("query student: %w", err)
	}
	return mapToProfile(row.Profile)
}

func (r *studentRepo) List(ctx context.Context) ([]*profile.StudentProfile, error) {
	rows, err := r.client.Student.Query().
		Order(ent.Asc(student.FieldStudentID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	profiles := make([]*profile.StudentProfile, 0, len(rows))
	for _, row := range rows {
		p, err := mapToProfile(row.Profile)
		if err != nil {
			return nil, fmt.Errorf("student %s: %w", row.StudentID, err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (r *studentRepo) Delete(ctx context.Context, studentID string) error {
	n, err := r.client.Student.Delete().
		Where(student.StudentID(studentID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("student %s: %w", studentID, ErrNotFound)
	}
	return nil
}

// profileToMap converts a profile to map[string]any for ent JSON storage.
func profileToMap(p *profile.StudentProfile) (map[string]any, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// mapToProfile converts stored JSON back into a profile.
func mapToProfile(m map[string]any) (*profile.StudentProfile, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal stored profile: %w", err)
	}
	var p profile.StudentProfile
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return &p, nil
}
