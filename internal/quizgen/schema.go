package quizgen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// quizSchemaDef is the JSON Schema the parsed payload must satisfy: a
// single object with a non-empty quiz array whose entries carry a
// question, exactly 4 options, and an answer.
var quizSchemaDef = map[string]any{
	"type":     "object",
	"required": []any{"quiz"},
	"properties": map[string]any{
		"quiz": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"question", "options", "answer"},
				"properties": map[string]any{
					"question": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"options": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "string"},
						"minItems": 4,
						"maxItems": 4,
					},
					"answer": map[string]any{
						"type": "string",
					},
					"explanation": map[string]any{
						"type": "string",
					},
				},
			},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validatePayload checks an already-parsed JSON value against the quiz
// schema. The schema compiles once per process.
func validatePayload(parsed any) error {
	compileOnce.Do(func() {
		// The compiler expects a parsed JSON value, not Go maps with typed
		// slices. Round-trip through encoding/json for a clean representation.
		defBytes, err := json.Marshal(quizSchemaDef)
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
		const schemaURL = "schema://quiz.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	if compileErr != nil {
		return fmt.Errorf("compile quiz schema: %w", compileErr)
	}

	return compiledSchema.Validate(parsed)
}
