package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sowmya1811d/edupath/ent"
	"github.com/sowmya1811d/edupath/ent/contentitem"
	"github.com/sowmya1811d/edupath/internal/content"
)

// contentRepo implements ContentRepo using the ent client.
type contentRepo struct {
	client *ent.Client
}

func (r *contentRepo) Add(ctx context.Context, item *content.Item) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	return r.upsert(ctx, *item)
}

func (r *contentRepo) Import(ctx context.Context, items []content.Item) (int, error) {
	stored := 0
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
		if err := r.upsert(ctx, items[i]); err != nil {
			return stored, fmt.Errorf("import item %s: %w", items[i].ID, err)
		}
		stored++
	}
	return stored, nil
}

func (r *contentRepo) Export(ctx context.Context) ([]content.Item, error) {
	rows, err := r.client.ContentItem.Query().
		Order(ent.Asc(contentitem.FieldItemID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("export content: %w", err)
	}
	items := make([]content.Item, len(rows))
	for i, row := range rows {
		items[i] = entItemToItem(row)
	}
	return items, nil
}

// QueryByMetadata pushes the well-known keys down to indexed columns and
// checks any remaining keys against the stored metadata map.
func (r *contentRepo) QueryByMetadata(ctx context.Context, f content.Filter, limit int) ([]content.Item, error) {
	q := r.client.ContentItem.Query()

	pushedAll := true
	for field, want := range f.Equals {
		switch field {
		case content.KeySubject:
			q = q.Where(contentitem.Subject(want))
		case content.KeyDifficulty:
			q = q.Where(contentitem.DifficultyLevel(want))
		case content.KeyContentType:
			q = q.Where(contentitem.ContentType(want))
		default:
			pushedAll = false
		}
	}
	for field, set := range f.In {
		switch field {
		case content.KeySubject:
			q = q.Where(contentitem.SubjectIn(set...))
		case content.KeyDifficulty:
			q = q.Where(contentitem.DifficultyLevelIn(set...))
		case content.KeyContentType:
			q = q.Where(contentitem.ContentTypeIn(set...))
		default:
			pushedAll = false
		}
	}
	if pushedAll && limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query content: %w", err)
	}

	var items []content.Item
	for _, row := range rows {
		item := entItemToItem(row)
		if !f.Matches(item.Metadata) {
			continue
		}
		items = append(items, item)
		if limit > 0 && len(items) == limit {
			break
		}
	}
	return items, nil
}

func (r *contentRepo) Statistics(ctx context.Context) (*content.Stats, error) {
	rows, err := r.client.ContentItem.Query().
		Select(contentitem.FieldSubject, contentitem.FieldDifficultyLevel, contentitem.FieldContentType).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query content for statistics: %w", err)
	}

	stats := &content.Stats{
		TotalItems:   len(rows),
		Subjects:     map[string]int{},
		ContentTypes: map[string]int{},
		Difficulties: map[string]int{},
	}
	for _, row := range rows {
		stats.Subjects[row.Subject]++
		stats.ContentTypes[row.ContentType]++
		stats.Difficulties[row.DifficultyLevel]++
	}
	return stats, nil
}

func (r *contentRepo) ListKnownSubjects(ctx context.Context) ([]string, error) {
	subjects, err := r.client.ContentItem.Query().
		Unique(true).
		Select(contentitem.FieldSubject).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}

// upsert replaces any existing row with the same item ID.
func (r *contentRepo) upsert(ctx context.Context, item content.Item) error {
	md := make(map[string]string, len(item.Metadata))
	for k, v := range item.Metadata {
		md[k] = v
	}

	existing, err := r.client.ContentItem.Query().
		Where(contentitem.ItemID(item.ID)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetText(item.Text).
			SetSubject(item.Subject()).
			SetDifficultyLevel(item.Difficulty()).
			SetContentType(item.ContentType()).
			SetMetadata(md).
			Save(ctx)
	case ent.IsNotFound(err):
		_, err = r.client.ContentItem.Create().
			SetItemID(item.ID).
			SetText(item.Text).
			SetSubject(item.Subject()).
			SetDifficultyLevel(item.Difficulty()).
			SetContentType(item.ContentType()).
			SetMetadata(md).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("store content item: %w", err)
	}
	return nil
}

// entItemToItem converts an ent ContentItem to a content Item.
func entItemToItem(row *ent.ContentItem) content.Item {
	return content.Item{
		ID:       row.ItemID,
		Text:     row.Text,
		Metadata: content.Metadata(row.Metadata),
	}
}
