// Package schemas provides JSON Schema validation for resume wire
// payloads fetched from the backend.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// resumePayloadSchema type-checks a saved or shared resume payload. No
// property is required: missing fields are the normalization layer's job.
// The schema only rejects structurally impossible shapes, e.g. education
// as a string or skills as a number. Skills accept both wire forms (list
// and joined string).
const resumePayloadSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "id": {"type": "string"},
    "title": {"type": "string"},
    "selectedTemplate": {"type": "string"},
    "color": {"type": "string"},
    "resumeData": {
      "type": "object",
      "properties": {
        "name": {"type": "string"},
        "email": {"type": "string"},
        "phone": {"type": "string"},
        "address": {"type": "string"},
        "profession": {"type": "string"},
        "skills": {
          "oneOf": [
            {"type": "array", "items": {"type": "string"}},
            {"type": "string"}
          ]
        },
        "education": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "degree": {"type": "string"},
              "institution": {"type": "string"},
              "year": {"type": "string"}
            }
          }
        },
        "experience": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "company": {"type": "string"},
              "role": {"type": "string"},
              "duration": {"type": "string"},
              "description": {"type": "string"}
            }
          }
        }
      }
    }
  }
}`

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates the schema violations found in a payload.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("payload validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

var compiledResumePayload *gojsonschema.Schema

func init() {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(resumePayloadSchema))
	if err != nil {
		panic(fmt.Sprintf("invalid embedded resume payload schema: %v", err))
	}
	compiledResumePayload = schema
}

// ValidateResumePayload checks raw JSON against the resume payload
// schema. Returns nil when valid, a *ValidationError when the payload
// violates the schema, or a wrapped error when the document is not JSON.
func ValidateResumePayload(raw []byte) error {
	result, err := compiledResumePayload.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("failed to validate payload: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
