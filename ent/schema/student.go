package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Student holds one learner profile. The profile itself is a JSON
// document so that preference and behavior maps can grow without
// migrations.
type Student struct {
	ent.Schema
}

func (Student) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Student) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			Unique().
			NotEmpty().
			Comment("Caller-facing student identifier"),
		field.JSON("profile", map[string]any{}).
			Comment("Full student profile as JSON"),
	}
}
