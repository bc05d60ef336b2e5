package loading

import (
	"fmt"

	"github.com/jonathan/scholar-homepage/internal/schemas"
	"github.com/jonathan/scholar-homepage/internal/types"
	"gopkg.in/yaml.v3"
)

// LoadSiteConfig loads and validates the site configuration YAML file.
func LoadSiteConfig(path string) (*types.SiteConfig, error) {
	content, err := readRequired(path)
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateYAML(schemas.SiteConfig, content); err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("schema validation failed for %s", path),
			Cause:   err,
		}
	}

	var cfg types.SiteConfig
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to unmarshal YAML %s", path),
			Cause:   err,
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("invalid site config %s", path),
			Cause:   err,
		}
	}

	return &cfg, nil
}
