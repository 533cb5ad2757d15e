package store

import (
	"context"
	"fmt"
	"time"

	"github.com/sowmya1811d/edupath/ent"
	"github.com/sowmya1811d/edupath/ent/pathrecord"
	"github.com/sowmya1811d/edupath/internal/pathgen"
)

// pathRepo implements PathRepo using the ent client.
type pathRepo struct {
	client *ent.Client
}

func (r *pathRepo) Save(ctx context.Context, p *pathgen.LearningPath) error {
	if p.PathID == "" || p.StudentID == "" {
		return fmt.Errorf("save path: empty path or student id")
	}
	data, err := pathgen.EncodeRecord(p)
	if err != nil {
		return fmt.Errorf("encode path %s: %w", p.PathID, err)
	}

	existing, err := r.client.PathRecord.Query().
		Where(pathrecord.PathID(p.PathID)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetStudentID(p.StudentID).
			SetStatus(string(p.Status)).
			SetRecord(string(data)).
			Save(ctx)
	case ent.IsNotFound(err):
		_, err = r.client.PathRecord.Create().
			SetPathID(p.PathID).
			SetStudentID(p.StudentID).
			SetStatus(string(p.Status)).
			SetRecord(string(data)).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save path %s: %w", p.PathID, err)
	}
	return nil
}

func (r *pathRepo) Get(ctx context.Context, pathID string) (*pathgen.LearningPath, error) {
	row, err := r.client.PathRecord.Query().
		Where(pathrecord.PathID(pathID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("path %s: %w", pathID, ErrNotFound)
		}
		return nil, fmt.Errorf("query path: %w", err)
	}
	return pathgen.DecodeRecord([]byte(row.Record))
}

func (r *pathRepo) ListByStudent(ctx context.Context, studentID string) ([]*pathgen.LearningPath, error) {
	rows, err := r.client.PathRecord.Query().
		Where(pathrecord.StudentID(studentID)).
		Order(ent.Desc(pathrecord.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list paths: %w", err)
	}

	paths := make([]*pathgen.LearningPath, 0, len(rows))
	for _, row := range rows {
		p, err := pathgen.DecodeRecord([]byte(row.Record))
		if err != nil {
			// Corrupt records fail alone; the rest of the list
			// still loads.
			continue
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func (r *pathRepo) SetStatus(ctx context.Context, pathID string, status pathgen.Status) error {
	if !status.Valid() {
		return fmt.Errorf("set status: unknown status %q", status)
	}

	p, err := r.Get(ctx, pathID)
	if err != nil {
		return err
	}
	p.Status = status
	p.UpdatedAt = time.Now().UTC()
	return r.Save(ctx, p)
}
