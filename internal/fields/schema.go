package fields

import (
	"encoding/json"
	"fmt"
)

// Field is one named value the extraction worker should attempt to populate.
type Field struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"` // "string" | "number" | "date"
}

// Schema is the requested output shape carried on an extraction job:
// scalar fields plus an optional repeating line-item row shape.
type Schema struct {
	Fields      []Field `json:"fields"`
	TableFields []Field `json:"table_fields,omitempty"`
}

// ParseFields decodes and validates a project's stored field definitions.
func ParseFields(raw json.RawMessage) ([]Field, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	if err := ValidateJSONAgainstSchema(fieldListJSONSchema(), raw); err != nil {
		return nil, fmt.Errorf("field definitions: %w", err)
	}
	var out []Field
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode field definitions: %w", err)
	}
	return out, nil
}

// fieldListJSONSchema constrains a stored field-definition array.
func fieldListJSONSchema() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"name":        map[string]any{"type": "string", "minLength": 1},
				"description": map[string]any{"type": "string"},
				"type":        map[string]any{"type": "string", "enum": []string{"string", "number", "date"}},
			},
			"required": []string{"name", "type"},
		},
	}
}

// BuildMetadataJSONSchema returns the JSON-Schema the worker's extracted
// metadata is expected to satisfy for the given fields.
func BuildMetadataJSONSchema(fs []Field) map[string]any {
	props := map[string]any{}
	for _, f := range fs {
		switch f.Type {
		case "number":
			props[f.Name] = map[string]any{"type": "string", "pattern": `^-?\d+(\.\d+)?$`}
		case "date":
			props[f.Name] = map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`}
		default:
			props[f.Name] = map[string]any{"type": "string"}
		}
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": true,
		"properties":           props,
	}
}
