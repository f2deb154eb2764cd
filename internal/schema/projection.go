package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var ErrPayloadInvalid = errors.New("schema: payload validation failed")

// Projection converts a field schema into a JSON Schema document describing
// the NORMALIZED content shape: tags project as string arrays, array kinds as
// arrays of item objects, everything scalar as its JSON counterpart. The
// published payload is validated against this document before persistence.
func Projection(fields []FieldSpec) map[string]any {
	properties := make(map[string]any, len(fields)+1)
	properties[ConfigVersionKey] = map[string]any{"type": "string"}

	required := make([]string, 0)
	for _, field := range fields {
		properties[field.Name] = projectField(field)
		if field.Required {
			required = append(required, field.Name)
		}
	}

	doc := map[string]any{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		doc["required"] = required
	}
	return doc
}

func projectField(field FieldSpec) map[string]any {
	switch field.Kind {
	case KindNumber:
		node := map[string]any{"type": []any{"number", "string"}}
		if field.Min != nil {
			node["minimum"] = *field.Min
		}
		if field.Max != nil {
			node["maximum"] = *field.Max
		}
		return node
	case KindBoolean:
		return map[string]any{"type": []any{"boolean", "string"}}
	case KindSelect:
		options := make([]any, 0, len(field.Options)+1)
		// An untouched select submits as the empty string.
		options = append(options, "")
		for _, option := range field.Options {
			options = append(options, option)
		}
		return map[string]any{"enum": options}
	case KindTags:
		return map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		}
	case KindArray:
		node := map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"properties":           projectLevel(field.ItemFields),
				"additionalProperties": false,
			},
		}
		if field.MaxItems > 0 {
			node["maxItems"] = field.MaxItems
		}
		return node
	case KindObject:
		return map[string]any{
			"type":                 "object",
			"properties":           projectLevel(field.Fields),
			"additionalProperties": false,
		}
	default:
		node := map[string]any{"type": "string"}
		if field.MaxLength > 0 {
			node["maxLength"] = field.MaxLength
		}
		return node
	}
}

func projectLevel(fields []FieldSpec) map[string]any {
	properties := make(map[string]any, len(fields))
	for _, field := range fields {
		properties[field.Name] = projectField(field)
	}
	return properties
}

// Compile ensures the projected document is a valid JSON Schema. Registries
// call it once per theme at construction time.
func Compile(fields []FieldSpec) (*jsonschema.Schema, error) {
	return compileDocument(Projection(fields))
}

// ValidatePayload validates a normalized payload against the field schema's
// projection. Failures are reported as a *PayloadValidationError.
func ValidatePayload(fields []FieldSpec, payload map[string]any) error {
	compiled, err := Compile(fields)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPayloadInvalid, err)
	}
	if payload == nil {
		payload = map[string]any{}
	}
	if err := compiled.Validate(toJSONValue(payload)); err != nil {
		return &PayloadValidationError{Issues: Issues(err), Cause: err}
	}
	return nil
}

// ValidationIssue captures a single payload validation failure.
type ValidationIssue struct {
	Location string
	Message  string
}

// PayloadValidationError surfaces validation issues with schema-aware context.
type PayloadValidationError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *PayloadValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrPayloadInvalid.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *PayloadValidationError) Unwrap() error {
	return ErrPayloadInvalid
}

// Issues extracts validation issues from an error.
func Issues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}
	var payloadErr *PayloadValidationError
	if errors.As(err, &payloadErr) && payloadErr != nil {
		return payloadErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return collectValidationIssues(validationErr)
	}
	return []ValidationIssue{{Message: err.Error()}}
}

func compileDocument(doc map[string]any) (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	return compiler.Compile("schema.json")
}

// toJSONValue reroutes the payload through encoding/json semantics so the
// validator sees the same value shapes a wire payload would carry.
func toJSONValue(payload map[string]any) any {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return payload
	}
	var decoded any
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		return payload
	}
	return decoded
}

func collectValidationIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
