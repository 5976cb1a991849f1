package tutor

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// JSON Schemas for model output. Validation happens before unmarshalling so a
// structurally wrong response is rejected as unparsable instead of decoding
// into a half-empty struct.

const quizSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["question", "options", "correctAnswer"],
		"properties": {
			"question": {"type": "string", "minLength": 1},
			"options": {
				"type": "array",
				"items": {"type": "string"},
				"minItems": 2
			},
			"correctAnswer": {"type": "integer", "minimum": 0},
			"explanation": {"type": "string"},
			"type": {"type": "string", "enum": ["multiple-choice", "fill-in-blank"]}
		}
	}
}`

const lessonSchema = `{
	"type": "object",
	"required": ["title", "content"],
	"properties": {
		"title": {"type": "string", "minLength": 1},
		"content": {"type": "string", "minLength": 1},
		"exercises": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["question"],
				"properties": {
					"question": {"type": "string"},
					"answer": {"type": "string"},
					"type": {"type": "string"}
				}
			}
		},
		"vocabulary": {
			"type": "array",
			"items": {"type": "string"}
		}
	}
}`

const textAnalysisSchema = `{
	"type": "object",
	"required": ["vocabulary", "grammar", "culturalNotes", "difficulty"],
	"properties": {
		"vocabulary": {"type": "array", "items": {"type": "string"}},
		"grammar": {"type": "array", "items": {"type": "string"}},
		"culturalNotes": {"type": "array", "items": {"type": "string"}},
		"difficulty": {"type": "integer", "minimum": 1, "maximum": 6}
	}
}`

const contentAnalysisSchema = `{
	"type": "object",
	"required": ["vocabulary", "culturalInsights", "learningPoints"],
	"properties": {
		"vocabulary": {"type": "array", "items": {"type": "string"}},
		"culturalInsights": {"type": "array", "items": {"type": "string"}},
		"learningPoints": {"type": "array", "items": {"type": "string"}}
	}
}`

var (
	quizSchemaLoader            = gojsonschema.NewStringLoader(quizSchema)
	lessonSchemaLoader          = gojsonschema.NewStringLoader(lessonSchema)
	textAnalysisSchemaLoader    = gojsonschema.NewStringLoader(textAnalysisSchema)
	contentAnalysisSchemaLoader = gojsonschema.NewStringLoader(contentAnalysisSchema)
)

// validateJSON checks document against schema. Any failure, including invalid
// JSON in the document itself, is reported as an error.
func validateJSON(schema gojsonschema.JSONLoader, document string) error {
	result, err := gojsonschema.Validate(schema, gojsonschema.NewStringLoader(document))
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	if !result.Valid() {
		errs := result.Errors()
		if len(errs) > 0 {
			return fmt.Errorf("schema violation: %s", errs[0])
		}
		return fmt.Errorf("schema violation")
	}
	return nil
}
