package gateway

import (
	"encoding/json"
	"errors"
	"testing"
)

func evalSchema() *Schema {
	return &Schema{
		Name:        "test-evaluation",
		Description: "An answer evaluation",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"score":    map[string]any{"type": "number", "minimum": 0, "maximum": 1},
				"correct":  map[string]any{"type": "boolean"},
				"feedback": map[string]any{"type": "string"},
			},
			"required":             []any{"score", "correct", "feedback"},
			"additionalProperties": false,
		},
	}
}

func TestValidate_NilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_ConformingPayload(t *testing.T) {
	raw := json.RawMessage(`{"score":0.75,"correct":true,"feedback":"close enough"}`)
	if err := validateResponse(evalSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	err := validateResponse(evalSchema(), json.RawMessage(`{"score":`))
	if err == nil {
		t.Fatal("expected error")
	}
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidate_MissingRequiredField(t *testing.T) {
	err := validateResponse(evalSchema(), json.RawMessage(`{"score":0.5,"correct":false}`))
	if err == nil {
		t.Fatal("expected error")
	}
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidate_OutOfRangeScore(t *testing.T) {
	err := validateResponse(evalSchema(), json.RawMessage(`{"score":1.5,"correct":true,"feedback":"x"}`))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestValidate_SchemaCompiledOnce(t *testing.T) {
	schema := evalSchema()
	raw := json.RawMessage(`{"score":1,"correct":true,"feedback":"ok"}`)

	if err := validateResponse(schema, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cached, ok := schemaCache.Load(schema.Name)
	if !ok {
		t.Fatal("expected schema to be cached")
	}

	if err := validateResponse(schema, raw); err != nil {
		t.Fatalf("unexpected error on cached path: %v", err)
	}

	again, _ := schemaCache.Load(schema.Name)
	if cached != again {
		t.Fatal("expected the same compiled schema instance")
	}
}
