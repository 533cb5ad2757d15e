package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContentItem is one piece of educational content in the pool. The three
// metadata keys the planner filters on are denormalized into indexed
// columns; the full metadata map is kept alongside.
type ContentItem struct {
	ent.Schema
}

func (ContentItem) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (ContentItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").
			Unique().
			NotEmpty().
			Comment("Caller-facing content identifier"),
		field.Text("text").
			NotEmpty().
			Comment("The content body"),
		field.String("subject").
			NotEmpty().
			Comment("e.g. mathematics, physics"),
		field.String("difficulty_level").
			NotEmpty().
			Comment("beginner, intermediate, advanced, or expert"),
		field.String("content_type").
			NotEmpty().
			Comment("lesson, tutorial, exercise, assessment, or concept"),
		field.JSON("metadata", map[string]string{}).
			Comment("Full metadata map, including the denormalized keys"),
	}
}

func (ContentItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject"),
		index.Fields("subject", "difficulty_level"),
		index.Fields("content_type"),
	}
}
