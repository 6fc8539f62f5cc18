package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://lesson-catalog.json"

// Schema is the JSON schema every catalog document must satisfy before it is
// decoded. Cross-field rules (unique ids, index ranges) live in Validate.
var Schema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":    "string",
			"pattern": `^v[0-9]+\.[0-9]+\.[0-9]+$`,
		},
		"title": map[string]any{"type": "string"},
		"sections": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":          map[string]any{"type": "string", "minLength": 1},
					"title":       map[string]any{"type": "string"},
					"icon":        map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
					"lessons": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items":    lessonSchema,
					},
				},
				"required":             []any{"id", "title", "lessons"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"version", "sections"},
	"additionalProperties": false,
}

var lessonSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":      map[string]any{"type": "string", "minLength": 1},
		"name":    map[string]any{"type": "string", "minLength": 1},
		"kind":    map[string]any{"type": "string", "enum": []any{"content", "question", "code-error"}},
		"content": map[string]any{"type": "string"},
		"question": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"prompt": map[string]any{"type": "string", "minLength": 1},
				"answers": map[string]any{
					"type":     "array",
					"minItems": 2,
					"items":    map[string]any{"type": "string"},
				},
				"correct_index": map[string]any{"type": "integer", "minimum": 0},
			},
			"required":             []any{"prompt", "answers", "correct_index"},
			"additionalProperties": false,
		},
		"code_error": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"prompt":  map[string]any{"type": "string", "minLength": 1},
				"snippet": map[string]any{"type": "string", "minLength": 1},
				"error_lines": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items":    map[string]any{"type": "integer", "minimum": 1},
				},
				"explanation": map[string]any{"type": "string"},
			},
			"required":             []any{"prompt", "snippet", "error_lines"},
			"additionalProperties": false,
		},
	},
	"required":             []any{"id", "name", "kind"},
	"additionalProperties": false,
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles Schema once per process.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a plain decoded JSON value, so round-trip the
		// Go map through encoding/json.
		raw, err := json.Marshal(Schema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateSchema checks a raw catalog document against Schema.
func validateSchema(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
