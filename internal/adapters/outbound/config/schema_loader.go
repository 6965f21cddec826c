package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ece-platform/appforge/internal/domain"
)

// SchemaLoader implements domain.SchemaLoader by reading a YAML branding
// schema override.
type SchemaLoader struct{}

func NewSchemaLoader() *SchemaLoader { return &SchemaLoader{} }

// Load reads a branding schema from path. A missing file falls back to the
// built-in platform schema; overrides replace only the fields they set.
func (l *SchemaLoader) Load(path string) (domain.BrandingSchema, error) {
	schema := domain.DefaultBrandingSchema()
	if path == "" {
		return schema, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return schema, nil
		}
		return domain.BrandingSchema{}, err
	}

	if err := yaml.Unmarshal(data, &schema); err != nil {
		return domain.BrandingSchema{}, fmt.Errorf("parsing branding schema %s: %w", path, err)
	}

	if schema.Version == "" {
		return domain.BrandingSchema{}, fmt.Errorf("branding schema %s: version is required", path)
	}
	return schema, nil
}
