package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PathRecord stores one generated learning path in its serialized record
// form. The raw JSON is what gets schema-validated on load; student and
// status are denormalized for listing.
type PathRecord struct {
	ent.Schema
}

func (PathRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (PathRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("path_id").
			Unique().
			NotEmpty().
			Comment("Caller-facing path identifier"),
		field.String("student_id").
			NotEmpty().
			Comment("Owner of the path"),
		field.String("status").
			NotEmpty().
			Comment("active, completed, or paused"),
		field.Text("record").
			NotEmpty().
			Comment("Serialized path record JSON"),
	}
}

func (PathRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("student_id", "status"),
	}
}
