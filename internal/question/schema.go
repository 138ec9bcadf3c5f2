package question

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const setSchemaURL = "file:///interviewdocs/question-set.schema.json"

const setSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["version", "offset", "questions"],
  "additionalProperties": false,
  "properties": {
    "version": { "type": "integer", "const": 1 },
    "id": { "type": "string", "pattern": "^[a-z0-9][a-z0-9-]*$" },
    "title": { "type": "string" },
    "offset": { "type": "integer", "minimum": 1 },
    "questions": {
      "type": "array",
      "minItems": 1,
      "items": { "type": "string", "minLength": 1 }
    }
  }
}`

var (
	compiledSchema    *jsonschema.Schema
	compiledSchemaErr error
	compileSchemaOnce sync.Once
)

func loadSetSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		compiledSchema, compiledSchemaErr = jsonschema.CompileString(setSchemaURL, setSchema)
	})
	return compiledSchema, compiledSchemaErr
}

// ValidateSchema checks a raw document against the question set schema.
func ValidateSchema(data []byte, format string) error {
	schema, err := loadSetSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	doc, err := decodeGeneric(data, format)
	if err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}

// decodeGeneric yields JSON-shaped values the schema validator understands.
func decodeGeneric(data []byte, format string) (any, error) {
	raw := data
	if format != FormatJSON {
		var value any
		if err := yaml.Unmarshal(data, &value); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		converted, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("convert yaml: %w", err)
		}
		raw = converted
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return doc, nil
}
