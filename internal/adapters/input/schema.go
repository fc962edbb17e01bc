package input

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const answerSchema = `{
  "type": "object",
  "required": ["question_id", "answer"],
  "properties": {
    "question_id": {"type": "integer", "minimum": 1},
    "answer": {"type": ["string", "integer"]},
    "submitted_at": {"type": "string"}
  }
}`

const answersSchema = `{
  "type": "array",
  "items": {"$ref": "answer.json"}
}`

const attemptsSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "product", "answers"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "product": {"type": "string", "minLength": 1},
      "answers": {"$ref": "answers.json"}
    }
  }
}`

const schemaBase = "schema://spikefactor/"

var schemas = sync.OnceValues(func() (map[string]*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	for name, doc := range map[string]string{
		"answer.json":   answerSchema,
		"answers.json":  answersSchema,
		"attempts.json": attemptsSchema,
	} {
		parsed, err := jsonschema.UnmarshalJSON(strings.NewReader(doc))
		if err != nil {
			return nil, fmt.Errorf("parse schema %s: %w", name, err)
		}
		if err := c.AddResource(schemaBase+name, parsed); err != nil {
			return nil, fmt.Errorf("add schema %s: %w", name, err)
		}
	}

	out := make(map[string]*jsonschema.Schema, 2)
	for _, name := range []string{"answers.json", "attempts.json"} {
		s, err := c.Compile(schemaBase + name)
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", name, err)
		}
		out[name] = s
	}
	return out, nil
})

// validate checks raw against the named schema.
func validate(name string, raw []byte) error {
	compiled, err := schemas()
	if err != nil {
		return err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := compiled[name].Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
