package content

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// JSON Schemas for the catalog files. Load validates every file before
// decoding so a broken catalog fails at startup, not mid-session.

func strType() map[string]any { return map[string]any{"type": "string"} }
func intType() map[string]any { return map[string]any{"type": "integer"} }

var difficultySchema = map[string]any{
	"type": "string",
	"enum": []any{"easy", "medium", "hard"},
}

var questionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":         strType(),
		"difficulty": difficultySchema,
		"question":   strType(),
		"options": map[string]any{
			"type":     "array",
			"items":    strType(),
			"minItems": 2,
		},
		"correct_answer": map[string]any{
			"type":    "string",
			"pattern": "^[A-Z]$",
		},
		"explanation": strType(),
	},
	"required": []any{"id", "difficulty", "question", "options", "correct_answer", "explanation"},
}

var metadataSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"unit_number":    intType(),
		"unit_title":     strType(),
		"total_sections": intType(),
		"sections": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"section_id":     intType(),
					"title":          strType(),
					"subtitle":       strType(),
					"estimated_time": strType(),
					"difficulty":     strType(),
				},
				"required": []any{"section_id", "title"},
			},
		},
	},
	"required": []any{"unit_number", "total_sections", "sections"},
}

var practiceSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"sections": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"section_id": intType(),
					"questions": map[string]any{
						"type":     "array",
						"items":    questionSchema,
						"minItems": 1,
					},
				},
				"required": []any{"section_id", "questions"},
			},
		},
	},
	"required": []any{"sections"},
}

var lessonSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"sections": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"section_id": intType(),
					"title":      strType(),
				},
				"required": []any{"section_id", "title"},
			},
		},
	},
	"required": []any{"sections"},
}

var testSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"test_info": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"test_number":     intType(),
				"total_questions": intType(),
			},
			"required": []any{"test_number", "total_questions"},
		},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"question_number": intType(),
					"difficulty":      difficultySchema,
					"question":        strType(),
					"options": map[string]any{
						"type":     "array",
						"items":    strType(),
						"minItems": 2,
					},
					"correct_answer": map[string]any{
						"type":    "string",
						"pattern": "^[A-Z]$",
					},
					"explanation": strType(),
				},
				"required": []any{"question_number", "question", "options", "correct_answer"},
			},
		},
		"answer_key_summary": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"answers": map[string]any{
					"type":  "array",
					"items": strType(),
				},
				"score_guide": map[string]any{
					"type": "object",
					"additionalProperties": map[string]any{
						"type": "string",
					},
				},
			},
			"required": []any{"answers", "score_guide"},
		},
	},
	"required": []any{"test_info", "questions", "answer_key_summary"},
}

// validateJSON checks raw JSON against a schema definition and returns a
// wrapped error naming the offending file.
func validateJSON(name string, def map[string]any, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("%s: invalid JSON: %w", name, err)
	}

	// The jsonschema library expects a parsed JSON value, not raw bytes.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("%s: marshal schema: %w", name, err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return fmt.Errorf("%s: parse schema: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return fmt.Errorf("%s: add schema resource: %w", name, err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("%s: compile schema: %w", name, err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("%s: schema validation failed: %w", name, err)
	}
	return nil
}
