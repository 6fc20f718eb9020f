package ner

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// entitySchema pins the shape of model responses. Keeping it embedded
// avoids schema-file path resolution in deployed binaries.
const entitySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["entities"],
  "properties": {
    "entities": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["text", "label"],
        "properties": {
          "text": {"type": "string", "minLength": 1},
          "label": {"type": "string", "enum": ["PERSON", "GPE", "LOC"]}
        }
      }
    }
  }
}`

// validateEntityJSON checks a model response against the entity schema.
func validateEntityJSON(jsonDoc string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(entitySchema),
		gojsonschema.NewStringLoader(jsonDoc),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed to run: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var details []string
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return fmt.Errorf("invalid entity payload: %s", strings.Join(details, "; "))
}
