package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// GenerateSchema returns the JSON schema of the settings file.
func GenerateSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = "https://rvc11.is-a.dev/weaver/settings.schema.json"
	schema.Title = "Weaver Browser Settings"
	schema.Description = "Settings schema for Weaver"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes the settings schema next to the settings file under root.
func WriteSchemaFile(root string) error {
	data, err := GenerateSchema()
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(root, SchemaFileName), data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}
