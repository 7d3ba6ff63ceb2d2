// internal/catalog/loader.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of an external catalog.
type File struct {
	Models []Model `json:"models" yaml:"models"`
}

// Load returns the builtin catalog when path is empty, otherwise the catalog
// read from path. The file format follows the extension (.json, .yaml, .yml).
func Load(path string) ([]Model, error) {
	if strings.TrimSpace(path) == "" {
		return Builtin(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read catalog file %q: %w", path, err)
	}
	models, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("catalog file %q: %w", path, err)
	}
	return models, nil
}

// Parse decodes and validates a catalog document. ext selects the decoder;
// anything other than .yaml/.yml is treated as JSON.
func Parse(data []byte, ext string) ([]Model, error) {
	isYAML := false
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		isYAML = true
	}

	var generic any
	if isYAML {
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &generic); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	}
	if err := validateSchema(generic); err != nil {
		return nil, err
	}

	var file File
	if isYAML {
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	}
	if err := Validate(file.Models); err != nil {
		return nil, err
	}
	return file.Models, nil
}

// validateSchema checks a decoded document against fileSchema.
func validateSchema(doc any) error {
	schemaLoader := gojsonschema.NewGoLoader(fileSchema())
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}
	var details []string
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(details, "; "))
}
