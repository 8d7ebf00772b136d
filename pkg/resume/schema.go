package resume

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Canonical CV schema. The contact email must be empty or a valid address;
// name must be non-empty; experience and education entries carry all their
// required string fields.
const cvSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["contact", "name", "title", "summary", "skills", "experience", "education"],
  "properties": {
    "contact": {
      "type": "object",
      "properties": {
        "github": {"type": "string"},
        "mobile": {"type": "string"},
        "email": {"type": "string", "anyOf": [{"maxLength": 0}, {"format": "email"}]},
        "linkedin": {"type": "string"}
      }
    },
    "name": {"type": "string", "minLength": 1},
    "title": {"type": "string"},
    "location": {"type": "string"},
    "summary": {"type": "string"},
    "skills": {
      "type": "object",
      "required": ["mainSkills", "languages"],
      "properties": {
        "mainSkills": {"type": "array", "items": {"type": "string"}},
        "languages": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["name", "level"],
            "properties": {
              "name": {"type": "string"},
              "level": {"type": "string"}
            }
          }
        }
      }
    },
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["company", "position", "startDate", "endDate", "duration", "location"],
        "properties": {
          "company": {"type": "string"},
          "position": {"type": "string"},
          "startDate": {"type": "string"},
          "endDate": {"type": "string"},
          "duration": {"type": "string"},
          "location": {"type": "string"},
          "description": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["institution", "degree", "field", "period"],
        "properties": {
          "institution": {"type": "string"},
          "degree": {"type": "string"},
          "field": {"type": "string"},
          "period": {"type": "string"}
        }
      }
    }
  }
}`

var cvSchema *gojsonschema.Schema

func init() {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(cvSchemaJSON))
	if err != nil {
		panic("resume: invalid cv schema: " + err.Error())
	}
	cvSchema = s
}

// ParseCV parses jsonText and validates it against the CV schema before
// decoding. Validation is all-or-nothing: a JSON syntax error, any missing or
// wrong-typed field, or a malformed non-empty contact email rejects the whole
// document. This is the only path that produces a CV.
func ParseCV(jsonText string) (CV, error) {
	result, err := cvSchema.Validate(gojsonschema.NewStringLoader(jsonText))
	if err != nil {
		return CV{}, fmt.Errorf("parse cv json: %w", err)
	}
	if !result.Valid() {
		msgs := ""
		for _, e := range result.Errors() {
			msgs += fmt.Sprintf("%s; ", e.String())
		}
		return CV{}, fmt.Errorf("schema validation failed: %s", msgs)
	}
	var cv CV
	if err := json.Unmarshal([]byte(jsonText), &cv); err != nil {
		return CV{}, fmt.Errorf("decode cv: %w", err)
	}
	return cv, nil
}
