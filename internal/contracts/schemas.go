package contracts

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/Dearie-de-cybek/PropTech/internal/constants"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas
var schemaFS embed.FS

var schemaFiles = map[string]string{
	constants.SchemaPreferencesV1:     "schemas/recommendation-preferences/v1.json",
	constants.SchemaPricePredictionV1: "schemas/price-prediction-input/v1.json",
}

// Validator checks payloads against the embedded schemas.
type Validator struct {
	compiled map[string]*jsonschema.Schema
}

// NewValidator compiles every embedded schema.
func NewValidator() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	v := &Validator{compiled: make(map[string]*jsonschema.Schema, len(schemaFiles))}
	for key, path := range schemaFiles {
		raw, err := schemaFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema %s: %w", path, err)
		}
		url := "mem://" + path
		if err := compiler.AddResource(url, bytes.NewReader(raw)); err != nil {
			return nil, fmt.Errorf("failed to add schema %s: %w", path, err)
		}
		schema, err := compiler.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema %s: %w", path, err)
		}
		v.compiled[key] = schema
	}
	return v, nil
}

// Validate parses body as JSON and checks it against the schema named by schemaKey.
func (v *Validator) Validate(schemaKey string, body []byte) error {
	schema, ok := v.compiled[schemaKey]
	if !ok {
		return fmt.Errorf("schema '%s' not found", schemaKey)
	}

	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("body is not a valid JSON: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}
