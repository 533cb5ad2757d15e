package pathgen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// recordSchema describes the persisted path record shape. Loaded records
// must pass it before reconstruction.
var recordSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"student_id": map[string]any{"type": "string", "minLength": 1},
		"path_id":    map[string]any{"type": "string", "minLength": 1},
		"title":      map[string]any{"type": "string"},
		"description": map[string]any{
			"type": "string",
		},
		"objectives": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":                 map[string]any{"type": "string", "minLength": 1},
					"title":              map[string]any{"type": "string"},
					"description":        map[string]any{"type": "string"},
					"subject":            map[string]any{"type": "string"},
					"difficulty_level":   map[string]any{"type": "string"},
					"prerequisites":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"estimated_duration": map[string]any{"type": "integer", "minimum": 0},
					"content_ids":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
				"required": []any{"id", "title", "subject", "difficulty_level", "estimated_duration", "content_ids"},
			},
		},
		"estimated_total_duration": map[string]any{"type": "integer", "minimum": 0},
		"difficulty_progression":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"subjects":                 map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"created_at":               map[string]any{"type": "string"},
		"updated_at":               map[string]any{"type": "string"},
		"status":                   map[string]any{"type": "string", "enum": []any{"active", "completed", "paused"}},
	},
	"required": []any{
		"student_id", "path_id", "objectives", "estimated_total_duration",
		"created_at", "updated_at", "status",
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledRecordSchema compiles the record schema once and caches it.
func compiledRecordSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(recordSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://learning-path-record.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// validateRecord checks raw JSON against the record schema. Failures are
// CorruptRecordErrors.
func validateRecord(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return &CorruptRecordError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiledRecordSchema()
	if err != nil {
		return fmt.Errorf("compile record schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return &CorruptRecordError{Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}
